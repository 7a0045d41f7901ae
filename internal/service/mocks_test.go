package service

import (
	"context"

	"hackportal-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockApplicationRepo
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Upsert(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, userID string, status domain.ApplicationStatus) (*domain.Application, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) GetByUserID(ctx context.Context, userID string) (*domain.Application, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) ListProfiles(ctx context.Context, statuses []domain.ApplicationStatus, excludeUserID string) ([]domain.Profile, error) {
	args := m.Called(ctx, statuses, excludeUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockApplicationRepo) CountByStatus(ctx context.Context) (map[domain.ApplicationStatus]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.ApplicationStatus]int), args.Error(1)
}
