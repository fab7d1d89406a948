package domain

import (
	"context"
	"errors"
)

// ErrRecordNotFound marks reads for an id that does not exist; the delivery
// layer turns it into a 404.
var ErrRecordNotFound = errors.New("record not found")

// ErrSaveInProgress rejects a second submit while one is outstanding for the
// same draft.
var ErrSaveInProgress = errors.New("save already in progress")

// FamilyRecord is the full ficha familiar: one student plus the five
// dependent sections keyed by the student id.
type FamilyRecord struct {
	Student       Student         `json:"student"`
	Parents       []Parent        `json:"parents"`
	FamilyMembers []FamilyMember  `json:"family_members"`
	Housing       *Housing        `json:"housing,omitempty"`
	FamilyHealth  []FamilyHealth  `json:"family_health"`
	StudentHealth []StudentHealth `json:"student_health"`
}

type RecordRepo interface {
	// CreateRecord inserts the student first, then the filtered dependent
	// sections tagged with the generated student id. Returns that id.
	CreateRecord(ctx context.Context, rec *FamilyRecord) (string, error)
	// ReplaceRecord updates the student row and fully replaces the five
	// dependent sets with the filtered sections of rec.
	ReplaceRecord(ctx context.Context, studentID string, rec *FamilyRecord) error
	GetRecordByStudentID(ctx context.Context, studentID string) (*FamilyRecord, error)
	DeleteRecord(ctx context.Context, studentID string) error
}

type RecordUseCase interface {
	GetRecordByStudentID(ctx context.Context, studentID string) (*FamilyRecord, error)
	DeleteRecord(ctx context.Context, studentID string) error
}
