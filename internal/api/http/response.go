package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"hackportal-backend/internal/domain"
	"hackportal-backend/internal/logger"
)

type applicationResponse struct {
	Success     bool                `json:"success"`
	Application *domain.Application `json:"application"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type errorResponse struct {
	Error string `json:"error"`
}

const (
	msgAuthRequired  = "Authentication required"
	msgUnauthorized  = "Unauthorized"
	msgInvalidAction = "Invalid action"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeUnauthenticated(w http.ResponseWriter, route string) {
	msg := msgAuthRequired
	if strings.HasPrefix(route, "/api/matcher") {
		msg = msgUnauthorized
	}
	writeJSON(w, http.StatusUnauthorized, errorResponse{Error: msg})
}

func writeInvalidAction(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidAction})
}

func writeFailure(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, failureResponse{Success: false, Error: msg})
}
