package portalclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hackportal-backend/internal/domain"
	"hackportal-backend/internal/matcher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ matcher.ApplicationFetcher = (*Client)(nil)

func newServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", "tok-123", srv.Client())
}

func writeBody(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestGetApplication(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/db/get", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		writeBody(w, http.StatusOK, `{"success":true,"application":{"userId":"u1","status":"accepted","fullName":"Ada"}}`)
	})

	app, err := c.GetApplication(context.Background())
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, "u1", app.UserID)
	assert.Equal(t, domain.ApplicationStatusAccepted, app.Status)
	assert.Equal(t, "Ada", app.Fields["fullName"])
}

func TestGetApplication_None(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, `{"success":true,"application":null}`)
	})

	app, err := c.GetApplication(context.Background())
	require.NoError(t, err)
	assert.Nil(t, app)
}

func TestListProfiles(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/matcher/get_profiles", r.URL.Path)
		assert.Empty(t, r.Header.Get("Content-Type"))
		writeBody(w, http.StatusOK, `[{"id":"u2","name":"Bea","skillLevel":"advanced"},{"id":"u3","name":"Cy"}]`)
	})

	profiles, err := c.ListProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "u2", profiles[0].ID)
	assert.Equal(t, "Cy", profiles[1].Name)
}

func TestListProfiles_Empty(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, `[]`)
	})

	profiles, err := c.ListProfiles(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, profiles)
	assert.Empty(t, profiles)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"Unauthenticated", http.StatusUnauthorized, `{"error":"Authentication required"}`, ErrUnauthenticated},
		{"NotFound", http.StatusNotFound, `{"success":false,"error":"application not found"}`, ErrNotFound},
		{"InvalidAction", http.StatusBadRequest, `{"error":"Invalid action"}`, ErrInvalidAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				writeBody(w, tt.status, tt.body)
			})
			_, err := c.GetApplication(context.Background())
			assert.ErrorIs(t, err, tt.want)

			_, err = c.ListProfiles(context.Background())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestErrorMapping_APIError(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusInternalServerError, `{"success":false,"error":"failed to list profiles"}`)
	})

	_, err := c.ListProfiles(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "failed to list profiles", apiErr.Message)
}

func TestMatcherGateOverClient(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, `{"success":true,"application":{"userId":"u1","status":"submitted"}}`)
	})

	v := matcher.NewGate(c).Check(context.Background())
	assert.False(t, v.Granted)
	assert.Equal(t, matcher.HomePath, v.RedirectTo)
}
