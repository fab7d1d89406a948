package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FamilyMember is a person living in the student's household. Numero is a
// 1-based display position recomputed whenever the draft list changes; it is
// not a stable identifier.
type FamilyMember struct {
	ID                 string    `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID          string    `gorm:"type:uuid;not null;index" json:"student_id"`
	Numero             int       `json:"numero,omitempty"`
	Parentesco         *string   `gorm:"type:varchar(50)" json:"parentesco,omitempty"`
	ApellidosNombres   *string   `gorm:"type:varchar(200)" json:"apellidos_nombres,omitempty"`
	Edad               *int      `json:"edad,omitempty"`
	GradoNivelEstudios *string   `gorm:"type:varchar(100)" json:"grado_nivel_estudios,omitempty"`
	IEEmpresa          *string   `gorm:"type:varchar(150)" json:"ie_empresa,omitempty"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (FamilyMember) TableName() string { return "family_members" }

func (m *FamilyMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *FamilyMember) HasData() bool {
	return strSet(m.ApellidosNombres)
}
