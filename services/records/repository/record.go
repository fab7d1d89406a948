package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fichaescolar/domain"
)

type recordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(database *gorm.DB) domain.RecordRepo {
	return &recordRepository{
		db: database,
	}
}

// CreateRecord inserts the student first and only then the dependent
// sections, so every dependent row carries the id the student insert
// returned. The whole save runs in one transaction: a rejected insert leaves
// no partial student behind.
func (rr *recordRepository) CreateRecord(ctx context.Context, rec *domain.FamilyRecord) (string, error) {
	if err := rec.Student.Validate(); err != nil {
		return "", err
	}

	tx := rr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return "", fmt.Errorf("could not begin transaction: %v", err)
	}

	student := rec.Student
	if err := tx.Omit(clause.Associations).Create(&student).Error; err != nil {
		tx.Rollback()
		return "", fmt.Errorf("could not insert student: %v", err)
	}

	if err := insertDependents(tx, student.ID, rec); err != nil {
		tx.Rollback()
		return "", err
	}

	if err := tx.Commit().Error; err != nil {
		return "", fmt.Errorf("could not commit transaction: %v", err)
	}

	return student.ID, nil
}

// ReplaceRecord updates the student row, deletes all dependent rows for that
// student and re-inserts the current draft's filtered sections. Running the
// delete-then-insert inside the transaction keeps a failed save from leaving
// the dependent tables half-written.
func (rr *recordRepository) ReplaceRecord(ctx context.Context, studentID string, rec *domain.FamilyRecord) error {
	if err := rec.Student.Validate(); err != nil {
		return err
	}

	tx := rr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return fmt.Errorf("could not begin transaction: %v", err)
	}

	var existing domain.Student
	if err := tx.Where("id = ?", studentID).First(&existing).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("student with ID %s: %w", studentID, domain.ErrRecordNotFound)
		}
		return fmt.Errorf("error retrieving student: %v", err)
	}

	student := rec.Student
	student.ID = studentID
	student.UserID = existing.UserID
	student.CreatedAt = existing.CreatedAt
	if err := tx.Omit(clause.Associations).Save(&student).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not update student: %v", err)
	}

	if err := deleteDependents(tx, studentID); err != nil {
		tx.Rollback()
		return err
	}

	if err := insertDependents(tx, studentID, rec); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit transaction: %v", err)
	}

	return nil
}

func deleteDependents(tx *gorm.DB, studentID string) error {
	deletes := []struct {
		name  string
		model interface{}
	}{
		{"parents", &domain.Parent{}},
		{"family members", &domain.FamilyMember{}},
		{"housing", &domain.Housing{}},
		{"family health", &domain.FamilyHealth{}},
		{"student health", &domain.StudentHealth{}},
	}

	for _, d := range deletes {
		if err := tx.Where("student_id = ?", studentID).Delete(d.model).Error; err != nil {
			return fmt.Errorf("could not delete %s: %v", d.name, err)
		}
	}
	return nil
}

// insertDependents filters each section by its presence rule, tags the rows
// with the student id and batch inserts them. Empty placeholder rows the
// wizard added and never filled are silently dropped.
func insertDependents(tx *gorm.DB, studentID string, rec *domain.FamilyRecord) error {
	var parents []domain.Parent
	for _, p := range rec.Parents {
		if !p.HasData() {
			continue
		}
		if !p.Tipo.Valid() {
			return fmt.Errorf("invalid parent tipo: %s", p.Tipo)
		}
		p.StudentID = studentID
		parents = append(parents, p)
	}
	if len(parents) > 0 {
		if err := tx.Create(&parents).Error; err != nil {
			return fmt.Errorf("could not insert parents: %v", err)
		}
	}

	var members []domain.FamilyMember
	for _, m := range rec.FamilyMembers {
		if !m.HasData() {
			continue
		}
		m.StudentID = studentID
		members = append(members, m)
	}
	if len(members) > 0 {
		if err := tx.Create(&members).Error; err != nil {
			return fmt.Errorf("could not insert family members: %v", err)
		}
	}

	if rec.Housing != nil && rec.Housing.HasData() {
		if err := rec.Housing.Validate(); err != nil {
			return err
		}
		housing := *rec.Housing
		housing.StudentID = studentID
		housing.Student = nil
		if err := tx.Create(&housing).Error; err != nil {
			return fmt.Errorf("could not insert housing: %v", err)
		}
	}

	var famHealth []domain.FamilyHealth
	for _, f := range rec.FamilyHealth {
		if !f.HasData() {
			continue
		}
		f.StudentID = studentID
		famHealth = append(famHealth, f)
	}
	if len(famHealth) > 0 {
		if err := tx.Create(&famHealth).Error; err != nil {
			return fmt.Errorf("could not insert family health: %v", err)
		}
	}

	var stuHealth []domain.StudentHealth
	for _, s := range rec.StudentHealth {
		if !s.HasData() {
			continue
		}
		s.StudentID = studentID
		stuHealth = append(stuHealth, s)
	}
	if len(stuHealth) > 0 {
		if err := tx.Create(&stuHealth).Error; err != nil {
			return fmt.Errorf("could not insert student health: %v", err)
		}
	}

	return nil
}

func (rr *recordRepository) GetRecordByStudentID(ctx context.Context, studentID string) (*domain.FamilyRecord, error) {
	var rec domain.FamilyRecord

	err := rr.db.WithContext(ctx).Where("id = ?", studentID).First(&rec.Student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("student with ID %s: %w", studentID, domain.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("could not fetch student: %v", err)
	}

	if err := rr.db.WithContext(ctx).Where("student_id = ?", studentID).Order("tipo").Find(&rec.Parents).Error; err != nil {
		return nil, fmt.Errorf("could not fetch parents: %v", err)
	}
	if err := rr.db.WithContext(ctx).Where("student_id = ?", studentID).Order("numero").Find(&rec.FamilyMembers).Error; err != nil {
		return nil, fmt.Errorf("could not fetch family members: %v", err)
	}

	// Single-row expectation: at most one housing row per student.
	var housing domain.Housing
	err = rr.db.WithContext(ctx).Where("student_id = ?", studentID).First(&housing).Error
	if err == nil {
		rec.Housing = &housing
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("could not fetch housing: %v", err)
	}

	if err := rr.db.WithContext(ctx).Where("student_id = ?", studentID).Find(&rec.FamilyHealth).Error; err != nil {
		return nil, fmt.Errorf("could not fetch family health: %v", err)
	}
	if err := rr.db.WithContext(ctx).Where("student_id = ?", studentID).Find(&rec.StudentHealth).Error; err != nil {
		return nil, fmt.Errorf("could not fetch student health: %v", err)
	}

	return &rec, nil
}

func (rr *recordRepository) DeleteRecord(ctx context.Context, studentID string) error {
	tx := rr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		return fmt.Errorf("could not begin transaction: %v", err)
	}

	var student domain.Student
	if err := tx.Select("id").Where("id = ?", studentID).First(&student).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("student with ID %s: %w", studentID, domain.ErrRecordNotFound)
		}
		return fmt.Errorf("error retrieving student: %v", err)
	}

	if err := deleteDependents(tx, studentID); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Where("id = ?", studentID).Delete(&domain.Student{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not delete student: %v", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit transaction: %v", err)
	}

	return nil
}
