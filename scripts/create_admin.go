// scripts/create_admin.go
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"fichaescolar/config"
)

const usersTable = `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	username VARCHAR(100) UNIQUE NOT NULL,
	password VARCHAR(100) NOT NULL,
	role VARCHAR(20) NOT NULL DEFAULT 'staff',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	db, err := sql.Open("postgres", config.GetDatabaseURL())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	if _, err := db.Exec(usersTable); err != nil {
		log.Fatalf("failed to ensure users table: %v", err)
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	var existing int
	err = db.QueryRow(`SELECT id FROM users WHERE username = $1`, username).Scan(&existing)
	if err == nil {
		fmt.Println("admin user already exists with username:", username)
		os.Exit(0)
	}
	if err != sql.ErrNoRows {
		log.Fatalf("failed to query users: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	_, err = db.Exec(
		`INSERT INTO users (username, password, role, created_at, updated_at) VALUES ($1, $2, 'admin', NOW(), NOW())`,
		username, string(hashed),
	)
	if err != nil {
		log.Fatalf("failed to insert admin: %v", err)
	}

	fmt.Println("admin user created successfully")
	fmt.Println("   username:", username)
	fmt.Println("   password:", password, "(change it after first login)")
}
