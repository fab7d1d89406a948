package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fichaescolar/domain"
)

func TestDashboardStats(t *testing.T) {
	db := testDB(t)
	repo := NewStatsRepository(db)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		seedStudent(t, db, domain.Student{Nombres: "E", ApellidoPaterno: "A", ApellidoMaterno: "B", Nivel: domain.NivelPrimaria})
	}
	for i := 0; i < 3; i++ {
		seedStudent(t, db, domain.Student{Nombres: "E", ApellidoPaterno: "A", ApellidoMaterno: "B", Nivel: domain.NivelInicial})
	}

	stats, err := repo.DashboardStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 7, stats.TotalStudents)
	assert.Equal(t, 4, stats.ByNivel["Primaria"])
	assert.Equal(t, 3, stats.ByNivel["Inicial"])
	assert.Len(t, stats.Recent, 5)
}

func TestDashboardStatsEmpty(t *testing.T) {
	repo := NewStatsRepository(testDB(t))

	stats, err := repo.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalStudents)
	assert.Empty(t, stats.Recent)
}

func TestReportStatsFromStore(t *testing.T) {
	db := testDB(t)
	repo := NewStatsRepository(db)

	sis := domain.SeguroSIS
	seedStudent(t, db, domain.Student{Nombres: "E", ApellidoPaterno: "A", ApellidoMaterno: "B", Nivel: domain.NivelPrimaria, TipoSeguro: &sis})
	seedStudent(t, db, domain.Student{Nombres: "E", ApellidoPaterno: "A", ApellidoMaterno: "B", Nivel: domain.NivelSecundaria})

	stats, err := repo.ReportStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Total)
	// just seeded, so both land in the current month
	assert.Equal(t, 2, stats.ThisMonth)
	assert.Equal(t, 1, stats.ByTipoSeguro["SIS"])
	assert.Equal(t, 1, stats.ByTipoSeguro[domain.NoRegistrado])
}

func TestHousingOverviewFromStore(t *testing.T) {
	db := testDB(t)
	repo := NewStatsRepository(db)

	propia := domain.ViviendaPropia
	id := seedStudent(t, db, domain.Student{Nombres: "Juan", ApellidoPaterno: "Garcia", ApellidoMaterno: "Lopez", Nivel: domain.NivelPrimaria})
	require.NoError(t, db.Create(&domain.Housing{StudentID: id, CondicionVivienda: &propia}).Error)

	ov, err := repo.HousingOverview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, ov.Total)
	assert.Equal(t, 1, ov.ByCondicion["PROPIA"])
	require.Len(t, ov.Entries, 1)
	// the owning student rides along for the table view
	require.NotNil(t, ov.Entries[0].Student)
	assert.Equal(t, "Juan", ov.Entries[0].Student.Nombres)
}

func TestHealthOverviewFromStore(t *testing.T) {
	db := testDB(t)
	repo := NewStatsRepository(db)

	sis := domain.SeguroSIS
	enfermedad := "asma"
	id := seedStudent(t, db, domain.Student{Nombres: "Juan", ApellidoPaterno: "Garcia", ApellidoMaterno: "Lopez", Nivel: domain.NivelPrimaria, TipoSeguro: &sis})
	require.NoError(t, db.Create(&domain.StudentHealth{StudentID: id, EnfermedadTranstorno: &enfermedad}).Error)
	seedStudent(t, db, domain.Student{Nombres: "Maria", ApellidoPaterno: "Quispe", ApellidoMaterno: "Huaman", Nivel: domain.NivelInicial})

	ov, err := repo.HealthOverview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, ov.TotalStudents)
	assert.Equal(t, 1, ov.WithSeguro)
	assert.Equal(t, 1, ov.WithHealthRecords)
	require.Len(t, ov.Students, 2)
	// ordered by paternal surname
	assert.Equal(t, "Garcia", ov.Students[0].ApellidoPaterno)
}
