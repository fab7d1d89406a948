package domain

import (
	"context"
	"math"
	"time"
)

type DashboardStats struct {
	TotalStudents int            `json:"total_students"`
	ByNivel       map[string]int `json:"by_nivel"`
	Recent        []Student      `json:"recent"`
}

type ReportStats struct {
	Total           int            `json:"total"`
	ThisMonth       int            `json:"this_month"`
	ByNivel         map[string]int `json:"by_nivel"`
	ByNivelPct      map[string]int `json:"by_nivel_pct"`
	ByTipoSeguro    map[string]int `json:"by_tipo_seguro"`
	ByTipoSeguroPct map[string]int `json:"by_tipo_seguro_pct"`
}

type HousingOverview struct {
	Total          int            `json:"total"`
	ByCondicion    map[string]int `json:"by_condicion"`
	ByCondicionPct map[string]int `json:"by_condicion_pct"`
	ByCalidad      map[string]int `json:"by_calidad"`
	Entries        []Housing      `json:"entries"`
}

type HealthOverview struct {
	TotalStudents     int            `json:"total_students"`
	WithSeguro        int            `json:"with_seguro"`
	WithHealthRecords int            `json:"with_health_records"`
	ByTipoSeguro      map[string]int `json:"by_tipo_seguro"`
	ByTipoSeguroPct   map[string]int `json:"by_tipo_seguro_pct"`
	Students          []Student      `json:"students"`
}

type StatsRepo interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	ReportStats(ctx context.Context) (*ReportStats, error)
	HousingOverview(ctx context.Context) (*HousingOverview, error)
	HealthOverview(ctx context.Context) (*HealthOverview, error)
}

type StatsUseCase interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	ReportStats(ctx context.Context) (*ReportStats, error)
	HousingOverview(ctx context.Context) (*HousingOverview, error)
	HealthOverview(ctx context.Context) (*HealthOverview, error)
}

// Percent rounds count/total to the nearest whole percentage. A zero total
// reports 0 rather than dividing by zero.
func Percent(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

func pctOf(counts map[string]int, total int) map[string]int {
	pct := make(map[string]int, len(counts))
	for k, n := range counts {
		pct[k] = Percent(n, total)
	}
	return pct
}

// ComputeReportStats derives the report aggregates from an already-fetched
// student set. "This month" compares creation month and year against now.
func ComputeReportStats(students []Student, now time.Time) ReportStats {
	st := ReportStats{
		Total:        len(students),
		ByNivel:      map[string]int{},
		ByTipoSeguro: map[string]int{},
	}
	for _, s := range students {
		st.ByNivel[string(s.Nivel)]++
		seguro := NoRegistrado
		if s.TipoSeguro != nil {
			seguro = string(*s.TipoSeguro)
		}
		st.ByTipoSeguro[seguro]++
		if s.CreatedAt.Month() == now.Month() && s.CreatedAt.Year() == now.Year() {
			st.ThisMonth++
		}
	}
	st.ByNivelPct = pctOf(st.ByNivel, st.Total)
	st.ByTipoSeguroPct = pctOf(st.ByTipoSeguro, st.Total)
	return st
}

// ComputeHousingOverview groups fetched housing rows by condition and
// quality.
func ComputeHousingOverview(rows []Housing) HousingOverview {
	ov := HousingOverview{
		Total:       len(rows),
		ByCondicion: map[string]int{},
		ByCalidad:   map[string]int{},
		Entries:     rows,
	}
	for _, h := range rows {
		cond := NoRegistrado
		if h.CondicionVivienda != nil {
			cond = string(*h.CondicionVivienda)
		}
		ov.ByCondicion[cond]++

		cal := NoRegistrado
		if h.CalidadVivienda != nil {
			cal = string(*h.CalidadVivienda)
		}
		ov.ByCalidad[cal]++
	}
	ov.ByCondicionPct = pctOf(ov.ByCondicion, ov.Total)
	return ov
}

// ComputeHealthOverview derives insurance and health-record counts from
// students fetched with their student_health rows embedded.
func ComputeHealthOverview(students []Student) HealthOverview {
	ov := HealthOverview{
		TotalStudents: len(students),
		ByTipoSeguro:  map[string]int{},
		Students:      students,
	}
	for _, s := range students {
		seguro := NoRegistrado
		if s.TipoSeguro != nil {
			seguro = string(*s.TipoSeguro)
			if *s.TipoSeguro != SeguroNoTiene {
				ov.WithSeguro++
			}
		}
		ov.ByTipoSeguro[seguro]++
		if len(s.StudentHealth) > 0 {
			ov.WithHealthRecords++
		}
	}
	ov.ByTipoSeguroPct = pctOf(ov.ByTipoSeguro, ov.TotalStudents)
	return ov
}
