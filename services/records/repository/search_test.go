package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fichaescolar/domain"
)

func seedStudent(t *testing.T, db *gorm.DB, s domain.Student) string {
	t.Helper()
	if s.UserID == 0 {
		s.UserID = 1
	}
	require.NoError(t, db.Create(&s).Error)
	return s.ID
}

func TestSearchStudentsFreeText(t *testing.T) {
	db := testDB(t)
	repo := NewSearchRepository(db)
	ctx := context.Background()

	seedStudent(t, db, domain.Student{Nombres: "Juan Carlos", ApellidoPaterno: "Garcia", ApellidoMaterno: "Lopez", Nivel: domain.NivelPrimaria, DNI: strp("12345678")})
	seedStudent(t, db, domain.Student{Nombres: "Maria", ApellidoPaterno: "Quispe", ApellidoMaterno: "Huaman", Nivel: domain.NivelInicial, Domicilio: strp("Jr. Garcilaso 44")})
	seedStudent(t, db, domain.Student{Nombres: "Pedro", ApellidoPaterno: "Flores", ApellidoMaterno: "Rojas", Nivel: domain.NivelSecundaria})

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"matches name case-insensitively", "juan", 1},
		{"matches surname and address", "garci", 2},
		{"matches dni", "1234", 1},
		{"no match", "zzz", 0},
		{"empty query matches all", "", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.SearchStudents(ctx, domain.SearchFilter{Query: tt.query})
			require.NoError(t, err)
			assert.Len(t, *got, tt.want)
		})
	}
}

func TestSearchStudentsAgeBoundsInclusive(t *testing.T) {
	db := testDB(t)
	repo := NewSearchRepository(db)
	ctx := context.Background()

	for _, edad := range []int{9, 10, 12, 13} {
		seedStudent(t, db, domain.Student{
			Nombres: "E", ApellidoPaterno: "A", ApellidoMaterno: "B",
			Nivel: domain.NivelPrimaria, Edad: intp(edad),
		})
	}

	got, err := repo.SearchStudents(ctx, domain.SearchFilter{EdadMin: intp(10)})
	require.NoError(t, err)
	assert.Len(t, *got, 3)

	got, err = repo.SearchStudents(ctx, domain.SearchFilter{EdadMin: intp(10), EdadMax: intp(12)})
	require.NoError(t, err)
	require.Len(t, *got, 2)
	for _, s := range *got {
		assert.GreaterOrEqual(t, *s.Edad, 10)
		assert.LessOrEqual(t, *s.Edad, 12)
	}
}

func TestSearchStudentsCriteriaCompose(t *testing.T) {
	db := testDB(t)
	repo := NewSearchRepository(db)
	ctx := context.Background()

	sis := domain.SeguroSIS
	seedStudent(t, db, domain.Student{Nombres: "Juan", ApellidoPaterno: "Garcia", ApellidoMaterno: "Lopez", Nivel: domain.NivelPrimaria, Grado: strp("3"), TipoSeguro: &sis})
	seedStudent(t, db, domain.Student{Nombres: "Juan", ApellidoPaterno: "Perez", ApellidoMaterno: "Soto", Nivel: domain.NivelPrimaria, Grado: strp("4"), TipoSeguro: &sis})
	seedStudent(t, db, domain.Student{Nombres: "Juan", ApellidoPaterno: "Cruz", ApellidoMaterno: "Vega", Nivel: domain.NivelSecundaria, Grado: strp("3")})

	got, err := repo.SearchStudents(ctx, domain.SearchFilter{
		Query: "juan", Nivel: domain.NivelPrimaria, Grado: "3", TipoSeguro: domain.SeguroSIS,
	})
	require.NoError(t, err)
	require.Len(t, *got, 1)
	assert.Equal(t, "Garcia", (*got)[0].ApellidoPaterno)
}

func TestSearchStudentsHousingCondition(t *testing.T) {
	db := testDB(t)
	repo := NewSearchRepository(db)
	ctx := context.Background()

	propia := domain.ViviendaPropia
	alquilada := domain.ViviendaAlquilada

	withPropia := seedStudent(t, db, domain.Student{Nombres: "A", ApellidoPaterno: "A", ApellidoMaterno: "A", Nivel: domain.NivelPrimaria})
	require.NoError(t, db.Create(&domain.Housing{StudentID: withPropia, CondicionVivienda: &propia}).Error)

	withAlquilada := seedStudent(t, db, domain.Student{Nombres: "B", ApellidoPaterno: "B", ApellidoMaterno: "B", Nivel: domain.NivelPrimaria})
	require.NoError(t, db.Create(&domain.Housing{StudentID: withAlquilada, CondicionVivienda: &alquilada}).Error)

	// no housing row at all
	seedStudent(t, db, domain.Student{Nombres: "C", ApellidoPaterno: "C", ApellidoMaterno: "C", Nivel: domain.NivelPrimaria})

	got, err := repo.SearchStudents(ctx, domain.SearchFilter{CondicionVivienda: domain.ViviendaPropia})
	require.NoError(t, err)
	require.Len(t, *got, 1)
	assert.Equal(t, withPropia, (*got)[0].ID)
}

func TestSearchStudentsRejectsUnknownEnumFilters(t *testing.T) {
	repo := NewSearchRepository(testDB(t))
	ctx := context.Background()

	_, err := repo.SearchStudents(ctx, domain.SearchFilter{Nivel: "Kinder"})
	assert.Error(t, err)

	_, err = repo.SearchStudents(ctx, domain.SearchFilter{TipoSeguro: "OTRO"})
	assert.Error(t, err)

	_, err = repo.SearchStudents(ctx, domain.SearchFilter{CondicionVivienda: "PRESTADA"})
	assert.Error(t, err)
}

func TestSearchStudentsEmbedsParentsAndHousing(t *testing.T) {
	db := testDB(t)
	repo := NewSearchRepository(db)
	ctx := context.Background()

	propia := domain.ViviendaPropia
	id := seedStudent(t, db, domain.Student{Nombres: "Juan", ApellidoPaterno: "Garcia", ApellidoMaterno: "Lopez", Nivel: domain.NivelPrimaria})
	require.NoError(t, db.Create(&domain.Parent{StudentID: id, Tipo: domain.TipoMama, Nombres: strp("Maria")}).Error)
	require.NoError(t, db.Create(&domain.Housing{StudentID: id, CondicionVivienda: &propia}).Error)

	got, err := repo.SearchStudents(ctx, domain.SearchFilter{})
	require.NoError(t, err)
	require.Len(t, *got, 1)
	require.Len(t, (*got)[0].Parents, 1)
	require.Len(t, (*got)[0].Housing, 1)
}
