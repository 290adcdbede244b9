// Package database centralises sqlx connection helpers for the shared
// MySQL pool.  The DSN must carry parseTime=true so DATETIME columns
// scan into time.Time.
//
// Both helpers ping the database with a short deadline before
// returning, so a bad DSN fails at bootstrap instead of on the first
// query.  Callers own the returned *sqlx.DB and should Close() it.
package database

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

const pingTimeout = 5 * time.Second

// Open returns a *sqlx.DB with defaults sized for this service: 15 max
// open, 5 idle, 30-minute connection lifetime.
func Open(dsn string) (*sqlx.DB, error) {
	return OpenWithOptions(dsn, 15, 5)
}

// OpenWithOptions lets callers tune maxOpen and maxIdle per pool.
func OpenWithOptions(dsn string, maxOpen, maxIdle int) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}
