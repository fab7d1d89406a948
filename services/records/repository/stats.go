package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fichaescolar/domain"
)

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(database *gorm.DB) domain.StatsRepo {
	return &statsRepository{
		db: database,
	}
}

// Aggregates are computed in memory over the fetched set, the same way the
// pages render them; only the columns each page needs are selected.

func (str *statsRepository) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var students []domain.Student
	if err := str.db.WithContext(ctx).Select("id", "nivel").Find(&students).Error; err != nil {
		return nil, fmt.Errorf("could not fetch students: %v", err)
	}

	stats := domain.DashboardStats{
		TotalStudents: len(students),
		ByNivel:       map[string]int{},
	}
	for _, s := range students {
		stats.ByNivel[string(s.Nivel)]++
	}

	if err := str.db.WithContext(ctx).Order("created_at DESC").Limit(5).Find(&stats.Recent).Error; err != nil {
		return nil, fmt.Errorf("could not fetch recent students: %v", err)
	}

	return &stats, nil
}

func (str *statsRepository) ReportStats(ctx context.Context) (*domain.ReportStats, error) {
	var students []domain.Student
	err := str.db.WithContext(ctx).Select("id", "nivel", "tipo_seguro", "created_at").Find(&students).Error
	if err != nil {
		return nil, fmt.Errorf("could not fetch students: %v", err)
	}

	stats := domain.ComputeReportStats(students, time.Now())
	return &stats, nil
}

func (str *statsRepository) HousingOverview(ctx context.Context) (*domain.HousingOverview, error) {
	var rows []domain.Housing
	err := str.db.WithContext(ctx).Preload("Student").Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("could not fetch housing: %v", err)
	}

	ov := domain.ComputeHousingOverview(rows)
	return &ov, nil
}

func (str *statsRepository) HealthOverview(ctx context.Context) (*domain.HealthOverview, error) {
	var students []domain.Student
	err := str.db.WithContext(ctx).Preload("StudentHealth").Order("apellido_paterno").Find(&students).Error
	if err != nil {
		return nil, fmt.Errorf("could not fetch students: %v", err)
	}

	ov := domain.ComputeHealthOverview(students)
	return &ov, nil
}
