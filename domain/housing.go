package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Housing describes the family dwelling. Current usage keeps at most one row
// per student; the detail and edit views read it with a single-row
// expectation.
type Housing struct {
	ID                string             `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID         string             `gorm:"type:uuid;not null;index" json:"student_id"`
	CondicionVivienda *CondicionVivienda `gorm:"type:varchar(60)" json:"condicion_vivienda,omitempty"`
	CalidadVivienda   *CalidadVivienda   `gorm:"type:varchar(20)" json:"calidad_vivienda,omitempty"`
	NumeroPisos       *NumeroPisos       `gorm:"type:varchar(20)" json:"numero_pisos,omitempty"`
	CreatedAt         time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

func (Housing) TableName() string { return "housing" }

func (h *Housing) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

// HasData reports whether at least one field was filled; an untouched housing
// section is not persisted at all.
func (h *Housing) HasData() bool {
	return h.CondicionVivienda != nil || h.CalidadVivienda != nil || h.NumeroPisos != nil
}

func (h *Housing) Validate() error {
	if h.CondicionVivienda != nil && !h.CondicionVivienda.Valid() {
		return fmt.Errorf("invalid condicion_vivienda: %s", *h.CondicionVivienda)
	}
	if h.CalidadVivienda != nil && !h.CalidadVivienda.Valid() {
		return fmt.Errorf("invalid calidad_vivienda: %s", *h.CalidadVivienda)
	}
	if h.NumeroPisos != nil && !h.NumeroPisos.Valid() {
		return fmt.Errorf("invalid numero_pisos: %s", *h.NumeroPisos)
	}
	return nil
}
