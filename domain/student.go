package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	ID                 string      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             int         `gorm:"not null;index" json:"user_id"`
	DNI                *string     `gorm:"type:varchar(8)" json:"dni,omitempty"`
	ApellidoPaterno    string      `gorm:"type:varchar(100);not null" json:"apellido_paterno" valid:"required~Apellido paterno is required"`
	ApellidoMaterno    string      `gorm:"type:varchar(100);not null" json:"apellido_materno" valid:"required~Apellido materno is required"`
	Nombres            string      `gorm:"type:varchar(150);not null" json:"nombres" valid:"required~Nombres is required"`
	Edad               *int        `json:"edad,omitempty"`
	Nivel              Nivel       `gorm:"type:varchar(20);not null" json:"nivel" valid:"required~Nivel is required"`
	Grado              *string     `gorm:"type:varchar(20)" json:"grado,omitempty"`
	Seccion            *string     `gorm:"type:varchar(10)" json:"seccion,omitempty"`
	FechaNacimiento    *time.Time  `json:"fecha_nacimiento,omitempty"`
	LugarNacimiento    *string     `gorm:"type:varchar(150)" json:"lugar_nacimiento,omitempty"`
	Domicilio          *string     `gorm:"type:varchar(255)" json:"domicilio,omitempty"`
	IEProcedencia      *string     `gorm:"type:varchar(150)" json:"ie_procedencia,omitempty"`
	TipoIE             *TipoIE     `gorm:"type:varchar(20)" json:"tipo_ie,omitempty"`
	CodigoModular      *string     `gorm:"type:varchar(20)" json:"codigo_modular,omitempty"`
	CodigoEstudiante   *string     `gorm:"type:varchar(20)" json:"codigo_estudiante,omitempty"`
	TipoSeguro         *TipoSeguro `gorm:"type:varchar(20)" json:"tipo_seguro,omitempty"`
	ContactoEmergencia *string     `gorm:"type:varchar(150)" json:"contacto_emergencia,omitempty"`
	ViveCon            *string     `gorm:"type:varchar(150)" json:"vive_con,omitempty"`
	ApoderadoIE        *string     `gorm:"type:varchar(150)" json:"apoderado_ie,omitempty"`
	PersonasEnCasa     *int        `json:"personas_en_casa,omitempty"`
	CreatedAt          time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time   `gorm:"autoUpdateTime" json:"updated_at"`

	Parents       []Parent        `gorm:"foreignKey:StudentID" json:"parents,omitempty"`
	Housing       []Housing       `gorm:"foreignKey:StudentID" json:"housing,omitempty"`
	StudentHealth []StudentHealth `gorm:"foreignKey:StudentID" json:"student_health,omitempty"`
}

func (Student) TableName() string { return "students" }

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Validate rejects enum literals the input widgets should never produce and
// the out-of-range ages the form coerces away.
func (s *Student) Validate() error {
	if !s.Nivel.Valid() {
		return fmt.Errorf("invalid nivel: %s", s.Nivel)
	}
	if s.TipoIE != nil && !s.TipoIE.Valid() {
		return fmt.Errorf("invalid tipo_ie: %s", *s.TipoIE)
	}
	if s.TipoSeguro != nil && !s.TipoSeguro.Valid() {
		return fmt.Errorf("invalid tipo_seguro: %s", *s.TipoSeguro)
	}
	if s.Edad != nil && (*s.Edad < 3 || *s.Edad > 18) {
		return fmt.Errorf("edad %d out of range 3-18", *s.Edad)
	}
	if s.DNI != nil && len(*s.DNI) > 8 {
		return fmt.Errorf("dni longer than 8 characters")
	}
	return nil
}

// StudentFilter narrows the student list view.
type StudentFilter struct {
	Nivel  Nivel
	Search string
}

type StudentRepo interface {
	GetAllStudent(ctx context.Context, filter StudentFilter) (*[]Student, error)
	GetStudentByID(ctx context.Context, id string) (*Student, error)
}

type StudentUseCase interface {
	GetAllStudentUC(ctx context.Context, filter StudentFilter) (*[]Student, error)
	GetStudentByID(ctx context.Context, id string) (*Student, error)
}
