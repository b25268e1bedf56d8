// Package migrations applies the embedded SQL schema with goose.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	log "github.com/sirupsen/logrus"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

// Up runs all pending migrations on the database behind pool.
func Up(pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	return up(db)
}

func up(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(log.StandardLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, "sql"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied")
	return nil
}
