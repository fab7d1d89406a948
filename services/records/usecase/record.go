package usecase

import (
	"context"
	"time"

	"fichaescolar/domain"
)

type recordUseCase struct {
	repo    domain.RecordRepo
	TimeOut time.Duration
}

func NewRecordUseCase(repo domain.RecordRepo, to time.Duration) domain.RecordUseCase {
	return &recordUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (ru *recordUseCase) GetRecordByStudentID(ctx context.Context, studentID string) (*domain.FamilyRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	rec, err := ru.repo.GetRecordByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (ru *recordUseCase) DeleteRecord(ctx context.Context, studentID string) error {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	err := ru.repo.DeleteRecord(ctx, studentID)
	if err != nil {
		return err
	}
	return nil
}
