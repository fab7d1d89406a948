package config

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fichaescolar/domain"
)

var gormDB *gorm.DB

func GetDatabaseURL() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
	return dsn
}

// BootDB opens the GORM connection used by the record, search and statistics
// repositories, and migrates the six record tables plus users. The program
// fails at boot when the database is unreachable.
func BootDB() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	db, err := gorm.Open(postgres.Open(GetDatabaseURL()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return nil, err
	}

	gormDB = db
	return gormDB, nil
}

func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&domain.User{},
		&domain.Student{},
		&domain.Parent{},
		&domain.FamilyMember{},
		&domain.Housing{},
		&domain.FamilyHealth{},
		&domain.StudentHealth{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// BootUserPool opens the pgx pool backing the user account repositories.
func BootUserPool(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}
