package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fichaescolar/domain"
)

type userUseCase struct {
	repo    domain.UserRepo
	TimeOut time.Duration
}

func NewUserUseCase(repo domain.UserRepo, to time.Duration) domain.UserUseCase {
	return &userUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (uu *userUseCase) FindUserByID(ctx context.Context, id int) (*domain.SafeUserData, error) {
	ctx, cancel := context.WithTimeout(ctx, uu.TimeOut)
	defer cancel()

	user, err := uu.repo.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.SafeUserData{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (uu *userUseCase) RegisterUser(ctx context.Context, username, password, role string) (*domain.SafeUserData, error) {
	ctx, cancel := context.WithTimeout(ctx, uu.TimeOut)
	defer cancel()

	if role == "" {
		role = "staff"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	user, err := uu.repo.CreateUser(ctx, &domain.User{
		Username: username,
		Password: string(hashed),
		Role:     role,
	})
	if err != nil {
		return nil, err
	}

	return &domain.SafeUserData{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}, nil
}
