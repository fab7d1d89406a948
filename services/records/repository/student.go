package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"fichaescolar/domain"
)

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(database *gorm.DB) domain.StudentRepo {
	return &studentRepository{
		db: database,
	}
}

// GetAllStudent lists students for the list view, newest-created first.
// Nivel applies as equality; the free-text term substring-matches name,
// surnames and DNI, case-insensitively.
func (sr *studentRepository) GetAllStudent(ctx context.Context, filter domain.StudentFilter) (*[]domain.Student, error) {
	q := sr.db.WithContext(ctx).Model(&domain.Student{})

	if filter.Nivel != "" {
		if !filter.Nivel.Valid() {
			return nil, fmt.Errorf("invalid nivel filter: %s", filter.Nivel)
		}
		q = q.Where("nivel = ?", filter.Nivel)
	}

	if filter.Search != "" {
		pat := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			"lower(nombres) LIKE ? OR lower(apellido_paterno) LIKE ? OR lower(apellido_materno) LIKE ? OR lower(dni) LIKE ?",
			pat, pat, pat, pat,
		)
	}

	var students []domain.Student
	if err := q.Order("created_at DESC").Find(&students).Error; err != nil {
		return nil, fmt.Errorf("could not get all students: %v", err)
	}

	return &students, nil
}

func (sr *studentRepository) GetStudentByID(ctx context.Context, id string) (*domain.Student, error) {
	var student domain.Student

	err := sr.db.WithContext(ctx).Where("id = ?", id).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("student with ID %s: %w", id, domain.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("could not fetch student: %v", err)
	}

	return &student, nil
}
