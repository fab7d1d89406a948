package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"fichaescolar/domain"
)

type userRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(database *pgxpool.Pool) domain.UserRepo {
	return &userRepository{
		db: database,
	}
}

func (ur *userRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, password, role, created_at
		FROM users
		WHERE username = $1;
	`

	var user domain.User
	err := ur.db.QueryRow(ctx, query, username).Scan(&user.ID, &user.Username, &user.Password, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("could not find user: %v", err)
	}

	return &user, nil
}

func (ur *userRepository) FindUserByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
		SELECT id, username, password, role, created_at
		FROM users
		WHERE id = $1;
	`

	var user domain.User
	err := ur.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Username, &user.Password, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("could not find user: %v", err)
	}

	return &user, nil
}

func (ur *userRepository) CreateUser(ctx context.Context, payload *domain.User) (*domain.User, error) {
	duplicateCheckQuery := `
		SELECT id FROM users
		WHERE username = $1;
	`
	var existingID int
	err := ur.db.QueryRow(ctx, duplicateCheckQuery, payload.Username).Scan(&existingID)
	if err == nil {
		return nil, fmt.Errorf("user with username %s already exists", payload.Username)
	}

	insertQuery := `
		INSERT INTO users (username, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`

	now := time.Now()
	var id int
	err = ur.db.QueryRow(ctx, insertQuery, payload.Username, payload.Password, payload.Role, now, now).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("could not insert user: %v", err)
	}

	payload.ID = id
	payload.CreatedAt = now
	payload.UpdatedAt = now

	return payload, nil
}
