package http

import (
	"net/http"

	"hackportal-backend/internal/metrics"

	"github.com/gorilla/mux"
)

type RouterDependencies struct {
	ApplicationHandler *ApplicationHandler
	MatcherHandler     *MatcherHandler
	AuthMiddleware     *AuthMiddleware
	MaxBodyBytes       int64
}

// NewRouter wires every HTTP route. Route templates double as keys into
// config.RouteSecurityConfig.
func NewRouter(deps RouterDependencies) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestID, AccessLog, Recover, metrics.InstrumentHandler)
	if deps.MaxBodyBytes > 0 {
		router.Use(BodyLimit(deps.MaxBodyBytes))
	}
	router.Use(deps.AuthMiddleware.Authenticate)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	router.HandleFunc("/api/db/{action}", deps.ApplicationHandler.HandlePost).Methods(http.MethodPost)
	router.HandleFunc("/api/db/{action}", deps.ApplicationHandler.HandleGet).Methods(http.MethodGet)
	router.HandleFunc("/api/matcher/{action}", deps.MatcherHandler.HandleGet).Methods(http.MethodGet)

	return router
}
