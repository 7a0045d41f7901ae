package repository

import (
	"context"
	"errors"

	"hackportal-backend/internal/domain"
)

// ErrNotFound is returned when no application row exists for the user.
var ErrNotFound = errors.New("application not found")

type ApplicationRepository interface {
	// Upsert creates the row for app.UserID or merges app.Fields over the
	// stored ones, always writing app.Status and a fresh updated timestamp.
	// The stored record is written back into app.
	Upsert(ctx context.Context, app *domain.Application) error
	UpdateStatus(ctx context.Context, userID string, status domain.ApplicationStatus) (*domain.Application, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Application, error)
	ListProfiles(ctx context.Context, statuses []domain.ApplicationStatus, excludeUserID string) ([]domain.Profile, error)
	CountByStatus(ctx context.Context) (map[domain.ApplicationStatus]int, error)
}
