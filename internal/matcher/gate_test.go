package matcher

import (
	"context"
	"errors"
	"testing"

	"hackportal-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

type stubFetcher struct {
	app *domain.Application
	err error
}

func (s stubFetcher) GetApplication(context.Context) (*domain.Application, error) {
	return s.app, s.err
}

func TestGate_Check(t *testing.T) {
	app := func(status domain.ApplicationStatus) *domain.Application {
		return &domain.Application{UserID: "u1", Status: status}
	}

	tests := []struct {
		name    string
		fetcher stubFetcher
		granted bool
	}{
		{"Accepted", stubFetcher{app: app(domain.ApplicationStatusAccepted)}, true},
		{"Confirmed", stubFetcher{app: app(domain.ApplicationStatusConfirmed)}, true},
		{"Submitted", stubFetcher{app: app(domain.ApplicationStatusSubmitted)}, false},
		{"Waitlisted", stubFetcher{app: app(domain.ApplicationStatusWaitlisted)}, false},
		{"Draft", stubFetcher{app: app(domain.ApplicationStatusDraft)}, false},
		{"NoApplication", stubFetcher{}, false},
		{"FetchError", stubFetcher{err: errors.New("network down")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewGate(tt.fetcher).Check(context.Background())
			assert.Equal(t, tt.granted, v.Granted)
			if tt.granted {
				assert.Empty(t, v.RedirectTo)
			} else {
				assert.Equal(t, HomePath, v.RedirectTo)
			}
		})
	}
}
