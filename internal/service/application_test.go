package service

import (
	"context"
	"testing"

	"hackportal-backend/internal/domain"
	"hackportal-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApplicationService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("NormalizesAndSubmits", func(t *testing.T) {
		repo := new(MockApplicationRepo)
		svc := NewApplicationService(repo)

		repo.On("Upsert", ctx, mock.MatchedBy(func(app *domain.Application) bool {
			return app.UserID == "u1" &&
				app.Status == domain.ApplicationStatusSubmitted &&
				app.Fields["funFact"] == "cats" &&
				app.Fields["fullName"] == "Ada"
		})).Return(nil)

		app, err := svc.Submit(ctx, "u1", map[string]any{"fun_fact": "cats", "full_name": "Ada"})
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusSubmitted, app.Status)
		repo.AssertExpectations(t)
	})

	t.Run("PayloadCannotOverrideStatusOrIdentity", func(t *testing.T) {
		repo := new(MockApplicationRepo)
		svc := NewApplicationService(repo)

		repo.On("Upsert", ctx, mock.MatchedBy(func(app *domain.Application) bool {
			_, hasStatus := app.Fields["status"]
			_, hasUser := app.Fields["userId"]
			return app.UserID == "u1" && app.Status == domain.ApplicationStatusSubmitted && !hasStatus && !hasUser
		})).Return(nil)

		_, err := svc.Submit(ctx, "u1", map[string]any{"status": "accepted", "user_id": "u9"})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("SubmitTwiceKeepsSubmittedStatus", func(t *testing.T) {
		repo := new(MockApplicationRepo)
		svc := NewApplicationService(repo)

		repo.On("Upsert", ctx, mock.AnythingOfType("*domain.Application")).Return(nil).Twice()

		first, err := svc.Submit(ctx, "u1", map[string]any{"fun_fact": "one"})
		require.NoError(t, err)
		second, err := svc.Submit(ctx, "u1", map[string]any{"fun_fact": "two"})
		require.NoError(t, err)

		assert.Equal(t, domain.ApplicationStatusSubmitted, first.Status)
		assert.Equal(t, domain.ApplicationStatusSubmitted, second.Status)
		assert.Equal(t, "two", second.Fields["funFact"])
		repo.AssertNumberOfCalls(t, "Upsert", 2)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		repo := new(MockApplicationRepo)
		svc := NewApplicationService(repo)

		_, err := svc.Submit(ctx, "", map[string]any{"a": 1})
		assert.ErrorIs(t, err, ErrUnauthenticated)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		repo := new(MockApplicationRepo)
		svc := NewApplicationService(repo)
		repo.On("Upsert", ctx, mock.Anything).Return(assert.AnError)

		_, err := svc.Submit(ctx, "u1", nil)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestApplicationService_Attendance(t *testing.T) {
	ctx := context.Background()

	t.Run("Confirm", func(t *testing.T) {
		repo := new(MockApplicationRepo)
		svc := NewApplicationService(repo)
		repo.On("UpdateStatus", ctx, "u1", domain.ApplicationStatusConfirmed).
			Return(&domain.Application{UserID: "u1", Status: domain.ApplicationStatusConfirmed}, nil)

		app, err := svc.ConfirmAttendance(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusConfirmed, app.Status)
	})

	t.Run("DeclineSetsWaitlisted", func(t *testing.T) {
		repo := new(MockApplicationRepo)
		svc := NewApplicationService(repo)
		repo.On("UpdateStatus", ctx, "u1", domain.ApplicationStatusWaitlisted).
			Return(&domain.Application{UserID: "u1", Status: domain.ApplicationStatusWaitlisted}, nil)

		app, err := svc.DeclineAttendance(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusWaitlisted, app.Status)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockApplicationRepo)
		svc := NewApplicationService(repo)
		repo.On("UpdateStatus", ctx, "ghost", domain.ApplicationStatusConfirmed).
			Return(nil, repository.ErrNotFound)

		_, err := svc.ConfirmAttendance(ctx, "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		repo := new(MockApplicationRepo)
		svc := NewApplicationService(repo)
		repo.On("UpdateStatus", ctx, "u1", domain.ApplicationStatusWaitlisted).
			Return(nil, assert.AnError)

		_, err := svc.DeclineAttendance(ctx, "u1")
		assert.ErrorIs(t, err, assert.AnError)
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		repo := new(MockApplicationRepo)
		svc := NewApplicationService(repo)

		_, err := svc.ConfirmAttendance(ctx, "")
		assert.ErrorIs(t, err, ErrUnauthenticated)
		_, err = svc.DeclineAttendance(ctx, "")
		assert.ErrorIs(t, err, ErrUnauthenticated)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestApplicationService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		repo := new(MockApplicationRepo)
		svc := NewApplicationService(repo)
		repo.On("GetByUserID", ctx, "u1").
			Return(&domain.Application{UserID: "u1", Status: domain.ApplicationStatusAccepted}, nil)

		app, err := svc.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusAccepted, app.Status)
	})

	t.Run("AbsentIsNotAnError", func(t *testing.T) {
		repo := new(MockApplicationRepo)
		svc := NewApplicationService(repo)
		repo.On("GetByUserID", ctx, "u1").Return(nil, repository.ErrNotFound)

		app, err := svc.Get(ctx, "u1")
		assert.NoError(t, err)
		assert.Nil(t, app)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		repo := new(MockApplicationRepo)
		svc := NewApplicationService(repo)
		repo.On("GetByUserID", ctx, "u1").Return(nil, assert.AnError)

		_, err := svc.Get(ctx, "u1")
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		svc := NewApplicationService(new(MockApplicationRepo))
		_, err := svc.Get(ctx, "")
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}
