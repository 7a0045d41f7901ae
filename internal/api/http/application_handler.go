package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"hackportal-backend/internal/domain"
	"hackportal-backend/internal/logger"
	"hackportal-backend/internal/service"

	"github.com/gorilla/mux"
)

const (
	ActionSubmit            = "submit"
	ActionConfirmAttendance = "confirm-attendance"
	ActionDeclineAttendance = "decline-attendance"
	ActionGet               = "get"
)

// ApplicationHandler serves the /api/db/{action} endpoints.
type ApplicationHandler struct {
	appSvc service.ApplicationService
}

func NewApplicationHandler(appSvc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appSvc: appSvc}
}

func (h *ApplicationHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	if userID == "" {
		writeUnauthenticated(w, "/api/db")
		return
	}

	action := mux.Vars(r)["action"]
	log := logger.WithUser(userID).With("action", action)
	log.Info("API POST received")

	var (
		app *domain.Application
		err error
	)
	switch action {
	case ActionSubmit:
		fields, decodeErr := decodeSubmission(r.Body)
		if decodeErr != nil {
			log.Warn("Rejected malformed submission", "error", decodeErr)
			writeFailure(w, http.StatusBadRequest, "invalid request body")
			return
		}
		app, err = h.appSvc.Submit(r.Context(), userID, fields)
	case ActionConfirmAttendance:
		app, err = h.appSvc.ConfirmAttendance(r.Context(), userID)
	case ActionDeclineAttendance:
		app, err = h.appSvc.DeclineAttendance(r.Context(), userID)
	default:
		err = service.ErrInvalidAction
	}

	if err != nil {
		h.writeServiceError(r.Context(), w, action, err)
		return
	}

	log.Info("Application saved", "status", app.Status)
	writeJSON(w, http.StatusOK, applicationResponse{Success: true, Application: app})
}

func (h *ApplicationHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	if userID == "" {
		writeUnauthenticated(w, "/api/db")
		return
	}

	action := mux.Vars(r)["action"]
	log := logger.WithUser(userID).With("action", action)
	log.Info("API GET received")

	switch action {
	case ActionGet:
		app, err := h.appSvc.Get(r.Context(), userID)
		if err != nil {
			h.writeServiceError(r.Context(), w, action, err)
			return
		}
		writeJSON(w, http.StatusOK, applicationResponse{Success: true, Application: app})
	default:
		h.writeServiceError(r.Context(), w, action, service.ErrInvalidAction)
	}
}

// decodeSubmission reads exactly one JSON object from body.
func decodeSubmission(body io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(body)
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.New("unexpected data after JSON body")
	}
	return fields, nil
}

var actionFailures = map[string]string{
	ActionSubmit:            "failed to submit application",
	ActionConfirmAttendance: "failed to confirm attendance",
	ActionDeclineAttendance: "failed to decline attendance",
	ActionGet:               "failed to get application",
}

// writeServiceError logs the full error and answers with only the
// action-level message.
func (h *ApplicationHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		writeUnauthenticated(w, "/api/db")
	case errors.Is(err, service.ErrInvalidAction):
		logger.Info("Invalid action", "action", action)
		writeInvalidAction(w)
	case errors.Is(err, service.ErrNotFound):
		writeFailure(w, http.StatusNotFound, service.ErrNotFound.Error())
	default:
		logger.ErrorContext(ctx, "API error", "action", action, "error", err, "request_id", RequestIDFromContext(ctx))
		writeFailure(w, http.StatusInternalServerError, actionFailures[action])
	}
}
