// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"dentman/internal/core/id"
	"dentman/internal/infrastructure/storage/postgres"
	"dentman/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	poolCfg := postgres.DefaultPoolConfig(dbURL)
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := seedDevUser(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed dev user", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedCatalogs(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed catalogs", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedDevUser(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	devEmail := os.Getenv("DEV_EMAIL")
	if devEmail == "" {
		devEmail = "dev@dentman.local"
	}

	devPassword := os.Getenv("DEV_PASSWORD")
	if devPassword == "" {
		devPassword = "Dev12345!"
	}

	var existingID id.ID
	err := pool.Pool.QueryRow(ctx,
		`SELECT id FROM users WHERE email = $1`,
		devEmail,
	).Scan(&existingID)
	if err == nil {
		log.Infow("dev user already exists", "email", devEmail, "user_id", existingID)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check dev user exists: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(devPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	userID := id.New()

	_, err = pool.Pool.Exec(ctx, `
		INSERT INTO users (
			id, email, password_hash, first_name, last_name,
			is_patient, is_worker, is_dev, is_active,
			created_at, updated_at, version
		)
		VALUES ($1, $2, $3, 'Dev', 'Account', false, false, true, true, now(), now(), 1)
	`, userID, devEmail, string(passwordHash))
	if err != nil {
		return fmt.Errorf("insert dev user: %w", err)
	}

	log.Infow("dev user created", "email", devEmail, "user_id", userID)
	return nil
}

func seedCatalogs(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	// Visit statuses covering every situation flag.
	statuses := []struct {
		code, name string
		column     string
	}{
		{"ST-BOOKED", "Booked", "is_booked"},
		{"ST-POSTPONED", "Postponed", "is_postponed"},
		{"ST-IN-PROGRESS", "In progress", "is_in_progress"},
		{"ST-FINISHED", "Finished", "is_finished"},
		{"ST-RESIGNED-PATIENT", "Resigned by patient", "is_resigned_by_patient"},
		{"ST-RESIGNED-DENTIST", "Resigned by dentist", "is_resigned_by_dentist"},
		{"ST-RESIGNED-OFFICE", "Resigned by office", "is_resigned_by_office"},
	}
	for _, s := range statuses {
		query := fmt.Sprintf(`
			INSERT INTO cat_visit_statuses (id, code, name, %s, deletion_mark, version)
			VALUES ($1, $2, $3, true, false, 1)
			ON CONFLICT (code) DO NOTHING
		`, s.column)
		if _, err := pool.Pool.Exec(ctx, query, id.New(), s.code, s.name); err != nil {
			return fmt.Errorf("insert visit status %s: %w", s.code, err)
		}
	}

	// Common metrics.
	metrics := []struct {
		code, name, symbol, kind string
	}{
		{"MET-MM", "Millimeter", "mm", "length"},
		{"MET-G", "Gram", "g", "weight"},
		{"MET-PCS", "Piece", "pcs", "amount"},
	}
	for _, m := range metrics {
		_, err := pool.Pool.Exec(ctx, `
			INSERT INTO cat_metrics (id, code, name, symbol, kind, deletion_mark, version)
			VALUES ($1, $2, $3, $4, $5, false, 1)
			ON CONFLICT (code) DO NOTHING
		`, id.New(), m.code, m.name, m.symbol, m.kind)
		if err != nil {
			return fmt.Errorf("insert metric %s: %w", m.code, err)
		}
	}

	log.Info("catalog seed data inserted")
	return nil
}
