package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"hackportal-backend/internal/logger"
	"hackportal-backend/internal/repository"

	_ "github.com/lib/pq"
)

//go:embed schema.sql
var schemaSQL string

type Store struct {
	db *sql.DB
	repository.ApplicationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		ApplicationRepository: NewApplicationRepository(db),
	}
}

// Migrate applies the bundled schema. Statements are idempotent.
func (s *Store) Migrate(ctx context.Context) error {
	logger.DatabaseCall("MIGRATE", "applications")
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		logger.DatabaseResult("MIGRATE", 0, err)
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	logger.DatabaseResult("MIGRATE", 0, nil)
	return nil
}
