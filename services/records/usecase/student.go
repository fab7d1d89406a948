package usecase

import (
	"context"
	"time"

	"fichaescolar/domain"
)

type studentUseCase struct {
	repo    domain.StudentRepo
	TimeOut time.Duration
}

func NewStudentUseCase(repo domain.StudentRepo, to time.Duration) domain.StudentUseCase {
	return &studentUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (su *studentUseCase) GetAllStudentUC(ctx context.Context, filter domain.StudentFilter) (*[]domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, su.TimeOut)
	defer cancel()

	v, err := su.repo.GetAllStudent(ctx, filter)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (su *studentUseCase) GetStudentByID(ctx context.Context, id string) (*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, su.TimeOut)
	defer cancel()

	v, err := su.repo.GetStudentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return v, nil
}
