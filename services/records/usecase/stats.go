package usecase

import (
	"context"
	"time"

	"fichaescolar/domain"
)

type statsUseCase struct {
	repo    domain.StatsRepo
	TimeOut time.Duration
}

func NewStatsUseCase(repo domain.StatsRepo, to time.Duration) domain.StatsUseCase {
	return &statsUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (su *statsUseCase) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	ctx, cancel := context.WithTimeout(ctx, su.TimeOut)
	defer cancel()

	return su.repo.DashboardStats(ctx)
}

func (su *statsUseCase) ReportStats(ctx context.Context) (*domain.ReportStats, error) {
	ctx, cancel := context.WithTimeout(ctx, su.TimeOut)
	defer cancel()

	return su.repo.ReportStats(ctx)
}

func (su *statsUseCase) HousingOverview(ctx context.Context) (*domain.HousingOverview, error) {
	ctx, cancel := context.WithTimeout(ctx, su.TimeOut)
	defer cancel()

	return su.repo.HousingOverview(ctx)
}

func (su *statsUseCase) HealthOverview(ctx context.Context) (*domain.HealthOverview, error) {
	ctx, cancel := context.WithTimeout(ctx, su.TimeOut)
	defer cancel()

	return su.repo.HealthOverview(ctx)
}
