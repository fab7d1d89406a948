package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FamilyHealth records a medical condition of someone in the student's
// family. Zero or more rows per student.
type FamilyHealth struct {
	ID               string    `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID        string    `gorm:"type:uuid;not null;index" json:"student_id"`
	NombresApellidos *string   `gorm:"type:varchar(200)" json:"nombres_apellidos,omitempty"`
	Edad             *int      `json:"edad,omitempty"`
	Parentesco       *string   `gorm:"type:varchar(50)" json:"parentesco,omitempty"`
	Enfermedad       *string   `gorm:"type:varchar(200)" json:"enfermedad,omitempty"`
	SituacionActual  *string   `gorm:"type:varchar(200)" json:"situacion_actual,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (FamilyHealth) TableName() string { return "family_health" }

func (f *FamilyHealth) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

func (f *FamilyHealth) HasData() bool {
	return strSet(f.NombresApellidos) || strSet(f.Enfermedad)
}

// StudentHealth records a condition of the student, with the date it was
// suffered.
type StudentHealth struct {
	ID                   string     `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID            string     `gorm:"type:uuid;not null;index" json:"student_id"`
	EnfermedadTranstorno *string    `gorm:"type:varchar(200)" json:"enfermedad_transtorno,omitempty"`
	FechaPadecimiento    *time.Time `json:"fecha_padecimiento,omitempty"`
	SituacionActual      *string    `gorm:"type:varchar(200)" json:"situacion_actual,omitempty"`
	CreatedAt            time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StudentHealth) TableName() string { return "student_health" }

func (s *StudentHealth) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (s *StudentHealth) HasData() bool {
	return strSet(s.EnfermedadTranstorno)
}
