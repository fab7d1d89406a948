package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresenceRules(t *testing.T) {
	cond := ViviendaAlquilada

	tests := []struct {
		name string
		has  bool
		got  bool
	}{
		{"empty parent slot", false, (&Parent{Tipo: TipoPapa}).HasData()},
		{"parent with only nombres", true, (&Parent{Tipo: TipoMama, Nombres: strp("Maria")}).HasData()},
		{"parent with only apellidos", true, (&Parent{Tipo: TipoPapa, Apellidos: strp("Garcia")}).HasData()},
		{"parent with empty strings", false, (&Parent{Tipo: TipoPapa, Nombres: strp(""), Apellidos: strp("")}).HasData()},
		{"member without name", false, (&FamilyMember{Edad: intp(10)}).HasData()},
		{"member with name", true, (&FamilyMember{ApellidosNombres: strp("Pedro Garcia")}).HasData()},
		{"empty housing", false, (&Housing{}).HasData()},
		{"housing with condition", true, (&Housing{CondicionVivienda: &cond}).HasData()},
		{"family health empty", false, (&FamilyHealth{Edad: intp(40)}).HasData()},
		{"family health with enfermedad", true, (&FamilyHealth{Enfermedad: strp("asma")}).HasData()},
		{"family health with name", true, (&FamilyHealth{NombresApellidos: strp("Rosa Lopez")}).HasData()},
		{"student health empty", false, (&StudentHealth{SituacionActual: strp("estable")}).HasData()},
		{"student health with condition", true, (&StudentHealth{EnfermedadTranstorno: strp("alergia")}).HasData()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.has, tt.got)
		})
	}
}

func TestStudentValidate(t *testing.T) {
	base := func() Student {
		return Student{
			ApellidoPaterno: "Garcia",
			ApellidoMaterno: "Lopez",
			Nombres:         "Juan",
			Nivel:           NivelPrimaria,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Student)
		wantErr bool
	}{
		{"valid minimal", func(s *Student) {}, false},
		{"invalid nivel", func(s *Student) { s.Nivel = "Kinder" }, true},
		{"edad below range", func(s *Student) { s.Edad = intp(2) }, true},
		{"edad at lower bound", func(s *Student) { s.Edad = intp(3) }, false},
		{"edad at upper bound", func(s *Student) { s.Edad = intp(18) }, false},
		{"edad above range", func(s *Student) { s.Edad = intp(19) }, true},
		{"dni too long", func(s *Student) { s.DNI = strp("123456789") }, true},
		{"dni at limit", func(s *Student) { s.DNI = strp("12345678") }, false},
		{"invalid tipo seguro", func(s *Student) { t := TipoSeguro("OTRO"); s.TipoSeguro = &t }, true},
		{"valid tipo seguro", func(s *Student) { t := SeguroSIS; s.TipoSeguro = &t }, false},
		{"invalid tipo ie", func(s *Student) { t := TipoIE("COMUNAL"); s.TipoIE = &t }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHousingValidate(t *testing.T) {
	bad := CondicionVivienda("PRESTADA")
	h := Housing{CondicionVivienda: &bad}
	assert.Error(t, h.Validate())

	good := ViviendaDePosada
	cal := CalidadNoble
	pisos := DosPisos
	h = Housing{CondicionVivienda: &good, CalidadVivienda: &cal, NumeroPisos: &pisos}
	assert.NoError(t, h.Validate())
}
