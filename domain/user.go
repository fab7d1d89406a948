package domain

import (
	"context"
	"time"
)

type User struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"type:varchar(100);not null;unique" json:"username"`
	Password  string    `gorm:"type:varchar(100);not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

type SafeUserData struct {
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type UserRepo interface {
	FindUserByUsername(ctx context.Context, username string) (*User, error)
	FindUserByID(ctx context.Context, id int) (*User, error)
	CreateUser(ctx context.Context, payload *User) (*User, error)
}

type UserUseCase interface {
	FindUserByID(ctx context.Context, id int) (*SafeUserData, error)
	RegisterUser(ctx context.Context, username, password, role string) (*SafeUserData, error)
}
