package service

import (
	"context"
	"errors"

	"hackportal-backend/internal/domain"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrInvalidAction   = errors.New("invalid action")
	ErrNotFound        = errors.New("application not found")
)

type ApplicationService interface {
	// Submit normalizes the payload field names and upserts the caller's
	// application with status submitted.
	Submit(ctx context.Context, userID string, fields map[string]any) (*domain.Application, error)
	ConfirmAttendance(ctx context.Context, userID string) (*domain.Application, error)
	DeclineAttendance(ctx context.Context, userID string) (*domain.Application, error)
	// Get returns nil without error when the caller has no application.
	Get(ctx context.Context, userID string) (*domain.Application, error)
}

type ProfileService interface {
	ListEligibleProfiles(ctx context.Context, callerID string) ([]domain.Profile, error)
}
