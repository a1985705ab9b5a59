package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the service's prometheus collectors. Each instance owns
// its registry so tests can construct metrics freely.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	predictionsTotal  *prometheus.CounterVec
	predictionErrors  *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		predictionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "iaq_predictions_total",
			Help: "Total predictions served by target parameter and outcome.",
		}, []string{"parameter", "outcome"}),
		predictionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "iaq_prediction_errors_total",
			Help: "Total per-target prediction failures by parameter.",
		}, []string{"parameter"}),
	}

	m.registry.MustRegister(
		m.httpRequestsTotal,
		m.httpDuration,
		m.predictionsTotal,
		m.predictionErrors,
	)

	return m
}

// Handler exposes the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordPrediction counts one served prediction.
func (m *Metrics) RecordPrediction(parameter string, exceeded bool) {
	outcome := "within_limit"
	if exceeded {
		outcome = "exceeded"
	}
	m.predictionsTotal.WithLabelValues(parameter, outcome).Inc()
}

// RecordPredictionError counts one per-target prediction failure.
func (m *Metrics) RecordPredictionError(parameter string) {
	m.predictionErrors.WithLabelValues(parameter).Inc()
}

// Instrument wraps a handler with request counting and duration tracking
// for one route.
func (m *Metrics) Instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
