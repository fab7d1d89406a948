package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Parent covers the PAPA, MAMA and APODERADO slots of a ficha. The schema
// accepts more than one row per tipo for a student; the draft seeds exactly
// one slot per tipo but uniqueness is not enforced.
type Parent struct {
	ID               string            `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID        string            `gorm:"type:uuid;not null;index" json:"student_id"`
	Tipo             ParentTipo        `gorm:"type:varchar(12);not null" json:"tipo" valid:"required~Tipo is required"`
	Apellidos        *string           `gorm:"type:varchar(150)" json:"apellidos,omitempty"`
	Nombres          *string           `gorm:"type:varchar(150)" json:"nombres,omitempty"`
	Religion         *string           `gorm:"type:varchar(50)" json:"religion,omitempty"`
	DNI              *string           `gorm:"type:varchar(8)" json:"dni,omitempty"`
	Edad             *int              `json:"edad,omitempty"`
	FechaNacimiento  *time.Time        `json:"fecha_nacimiento,omitempty"`
	GradoInstruccion *string           `gorm:"type:varchar(100)" json:"grado_instruccion,omitempty"`
	EstadoCivil      *string           `gorm:"type:varchar(50)" json:"estado_civil,omitempty"`
	NumeroHijos      *int              `json:"numero_hijos,omitempty"`
	OficioProfesion  *string           `gorm:"type:varchar(150)" json:"oficio_profesion,omitempty"`
	Ocupacion        *string           `gorm:"type:varchar(150)" json:"ocupacion,omitempty"`
	CentroTrabajo    *string           `gorm:"type:varchar(150)" json:"centro_trabajo,omitempty"`
	LugarTrabajo     *string           `gorm:"type:varchar(150)" json:"lugar_trabajo,omitempty"`
	SituacionLaboral *SituacionLaboral `gorm:"type:varchar(20)" json:"situacion_laboral,omitempty"`
	IngresoPersonal  *float64          `json:"ingreso_personal,omitempty"`
	IngresoFamiliar  *float64          `json:"ingreso_familiar,omitempty"`
	Celular          *string           `gorm:"type:varchar(9)" json:"celular,omitempty"`
	Email            *string           `gorm:"type:varchar(150)" json:"email,omitempty" valid:"email~Invalid email format,optional"`
	CreatedAt        time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Parent) TableName() string { return "parents" }

func (p *Parent) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// HasData reports whether the slot was actually filled in. Empty placeholder
// slots are dropped on save.
func (p *Parent) HasData() bool {
	return strSet(p.Nombres) || strSet(p.Apellidos)
}

func strSet(p *string) bool {
	return p != nil && *p != ""
}
