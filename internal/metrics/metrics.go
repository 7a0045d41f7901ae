package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"hackportal-backend/internal/domain"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "hackportal",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hackportal",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hackportal",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	statusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hackportal",
			Subsystem: "applications",
			Name:      "status_changes_total",
			Help:      "Application writes by resulting status.",
		},
		[]string{"status"},
	)

	applicationsByStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "hackportal",
			Name:      "applications",
			Help:      "Stored applications per status at the last snapshot.",
		},
		[]string{"status"},
	)

	profilesServed = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "hackportal",
			Subsystem: "matcher",
			Name:      "profiles_served",
			Help:      "Number of profiles returned per directory call.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		statusChanges,
		applicationsByStatus,
		profilesServed,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler is mux middleware that records request counts and latency
// labelled by route template, so unknown action segments do not add series.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := routeTemplate(r)
		if route == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		method := strings.ToUpper(r.Method)
		httpRequests.WithLabelValues(method, route, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	})
}

func RecordStatusChange(status domain.ApplicationStatus) {
	statusChanges.WithLabelValues(string(status)).Inc()
}

func RecordProfilesServed(n int) {
	profilesServed.Observe(float64(n))
}

// SetApplicationCounts publishes a status snapshot. Statuses missing from
// counts are reported as zero.
func SetApplicationCounts(counts map[domain.ApplicationStatus]int) {
	for _, s := range domain.AllStatuses {
		applicationsByStatus.WithLabelValues(string(s)).Set(float64(counts[s]))
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
