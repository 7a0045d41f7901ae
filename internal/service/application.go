package service

import (
	"context"
	"errors"
	"fmt"

	"hackportal-backend/internal/domain"
	"hackportal-backend/internal/logger"
	"hackportal-backend/internal/metrics"
	"hackportal-backend/internal/repository"
)

type applicationService struct {
	appRepo repository.ApplicationRepository
}

func NewApplicationService(appRepo repository.ApplicationRepository) ApplicationService {
	return &applicationService{appRepo: appRepo}
}

func (s *applicationService) Submit(ctx context.Context, userID string, fields map[string]any) (*domain.Application, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	normalized := domain.NormalizeFieldNames(fields)
	logger.Debug("Normalized submission fields", "user_id", userID, "field_count", len(normalized))

	app := &domain.Application{
		UserID: userID,
		Status: domain.ApplicationStatusSubmitted,
		Fields: normalized,
	}
	if err := s.appRepo.Upsert(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to submit application: %w", err)
	}

	metrics.RecordStatusChange(domain.ApplicationStatusSubmitted)
	return app, nil
}

func (s *applicationService) ConfirmAttendance(ctx context.Context, userID string) (*domain.Application, error) {
	return s.setStatus(ctx, userID, domain.ApplicationStatusConfirmed)
}

func (s *applicationService) DeclineAttendance(ctx context.Context, userID string) (*domain.Application, error) {
	return s.setStatus(ctx, userID, domain.ApplicationStatusWaitlisted)
}

func (s *applicationService) setStatus(ctx context.Context, userID string, status domain.ApplicationStatus) (*domain.Application, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	app, err := s.appRepo.UpdateStatus(ctx, userID, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set application status to %s: %w", status, err)
	}

	metrics.RecordStatusChange(status)
	return app, nil
}

func (s *applicationService) Get(ctx context.Context, userID string) (*domain.Application, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	app, err := s.appRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}
