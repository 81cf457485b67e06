package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
)

var DB *sql.DB

var ErrNoDatabaseURL = errors.New("DATABASE_URL environment variable is not set")

func Connect() error {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		return ErrNoDatabaseURL
	}

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("opening postgres connection: %w", err)
	}

	// Sized for the API plus the three pipeline workers sharing one database.
	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(25)
	DB.SetConnMaxLifetime(5 * time.Minute)

	return DB.Ping()
}

func Close() {
	if DB != nil {
		DB.Close()
	}
}
