package http

import (
	"errors"
	"net/http"

	"hackportal-backend/internal/domain"
	"hackportal-backend/internal/logger"
	"hackportal-backend/internal/metrics"
	"hackportal-backend/internal/service"

	"github.com/gorilla/mux"
)

const ActionGetProfiles = "get_profiles"

// MatcherHandler serves the /api/matcher/{action} endpoints.
type MatcherHandler struct {
	profileSvc service.ProfileService
}

func NewMatcherHandler(profileSvc service.ProfileService) *MatcherHandler {
	return &MatcherHandler{profileSvc: profileSvc}
}

func (h *MatcherHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	if userID == "" {
		writeUnauthenticated(w, "/api/matcher")
		return
	}

	var (
		profiles []domain.Profile
		err      error
	)
	if action := mux.Vars(r)["action"]; action == ActionGetProfiles {
		profiles, err = h.profileSvc.ListEligibleProfiles(r.Context(), userID)
	} else {
		err = service.ErrInvalidAction
	}
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthenticated):
			writeUnauthenticated(w, "/api/matcher")
		case errors.Is(err, service.ErrInvalidAction):
			writeInvalidAction(w)
		default:
			logger.ErrorContext(r.Context(), "Failed to list profiles", "user_id", userID, "error", err)
			writeFailure(w, http.StatusInternalServerError, "failed to list profiles")
		}
		return
	}

	metrics.RecordProfilesServed(len(profiles))
	writeJSON(w, http.StatusOK, profiles)
}
