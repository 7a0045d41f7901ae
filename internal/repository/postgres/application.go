package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hackportal-backend/internal/domain"
	"hackportal-backend/internal/logger"
	"hackportal-backend/internal/repository"

	"github.com/lib/pq"
)

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Upsert(ctx context.Context, app *domain.Application) error {
	logger.EnterMethod("applicationRepository.Upsert", "userID", app.UserID)

	fields := app.Fields
	if fields == nil {
		fields = map[string]any{}
	}
	payload, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to encode application fields: %w", err)
	}

	query := `INSERT INTO applications (user_id, status, fields, created_at, updated_at)
	          VALUES ($1, $2, $3::jsonb, $4, $4)
	          ON CONFLICT (user_id) DO UPDATE
	          SET fields = applications.fields || EXCLUDED.fields,
	              status = EXCLUDED.status,
	              updated_at = EXCLUDED.updated_at
	          RETURNING fields, created_at, updated_at`
	now := time.Now().UTC()
	logger.DatabaseCall("UPSERT", "applications", "userID", app.UserID)

	var stored []byte
	err = r.db.QueryRowContext(ctx, query, app.UserID, string(app.Status), string(payload), now).
		Scan(&stored, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		logger.DatabaseResult("UPSERT", 0, err, "userID", app.UserID)
		logger.ExitMethodWithError("applicationRepository.Upsert", err, "userID", app.UserID)
		return err
	}
	if app.Fields, err = decodeFields(stored); err != nil {
		return err
	}

	logger.DatabaseResult("UPSERT", 1, nil, "userID", app.UserID)
	logger.ExitMethod("applicationRepository.Upsert", "userID", app.UserID)
	return nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, userID string, status domain.ApplicationStatus) (*domain.Application, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown application status %q", status)
	}

	query := `UPDATE applications SET status = $1, updated_at = $2 WHERE user_id = $3
	          RETURNING user_id, status, fields, created_at, updated_at`
	logger.DatabaseCall("UPDATE", "applications", "userID", userID, "status", status)

	app, err := scanApplication(r.db.QueryRowContext(ctx, query, string(status), time.Now().UTC(), userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.DatabaseResult("UPDATE", 0, nil, "userID", userID)
			return nil, repository.ErrNotFound
		}
		logger.DatabaseResult("UPDATE", 0, err, "userID", userID)
		return nil, err
	}
	logger.DatabaseResult("UPDATE", 1, nil, "userID", userID)
	return app, nil
}

func (r *applicationRepository) GetByUserID(ctx context.Context, userID string) (*domain.Application, error) {
	query := `SELECT user_id, status, fields, created_at, updated_at FROM applications WHERE user_id = $1`
	app, err := scanApplication(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return app, nil
}

func (r *applicationRepository) ListProfiles(ctx context.Context, statuses []domain.ApplicationStatus, excludeUserID string) ([]domain.Profile, error) {
	logger.EnterMethod("applicationRepository.ListProfiles", "excludeUserID", excludeUserID)

	query := `SELECT user_id, status, fields, created_at, updated_at
	          FROM applications
	          WHERE status = ANY($1) AND user_id <> $2`

	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	logger.DatabaseCall("SELECT", "applications", "statuses", names)

	rows, err := r.db.QueryContext(ctx, query, pq.Array(names), excludeUserID)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		logger.ExitMethodWithError("applicationRepository.ListProfiles", err)
		return nil, err
	}
	defer rows.Close()

	profiles := []domain.Profile{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			logger.DatabaseResult("SELECT", int64(len(profiles)), err)
			return nil, err
		}
		profiles = append(profiles, domain.ProfileFromApplication(app))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.DatabaseResult("SELECT", int64(len(profiles)), nil)
	logger.ExitMethod("applicationRepository.ListProfiles", "count", len(profiles))
	return profiles, nil
}

func (r *applicationRepository) CountByStatus(ctx context.Context) (map[domain.ApplicationStatus]int, error) {
	query := `SELECT status, COUNT(*) FROM applications GROUP BY status`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.ApplicationStatus]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[domain.ApplicationStatus(status)] = n
	}
	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (*domain.Application, error) {
	var (
		app    domain.Application
		status string
		fields []byte
	)
	if err := row.Scan(&app.UserID, &status, &fields, &app.CreatedAt, &app.UpdatedAt); err != nil {
		return nil, err
	}
	app.Status = domain.ApplicationStatus(status)

	var err error
	if app.Fields, err = decodeFields(fields); err != nil {
		return nil, err
	}
	return &app, nil
}

func decodeFields(raw []byte) (map[string]any, error) {
	fields := map[string]any{}
	if len(raw) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode application fields: %w", err)
	}
	return fields, nil
}
