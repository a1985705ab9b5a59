package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ThanyaBream/IAQexceedance/internal/ml"
	"github.com/ThanyaBream/IAQexceedance/internal/models"
	"github.com/ThanyaBream/IAQexceedance/internal/observability"
	"github.com/ThanyaBream/IAQexceedance/internal/outdoor"
)

type server struct {
	runner   *ml.Runner
	registry *ml.Registry
	feed     *outdoor.Feed
	metrics  *observability.Metrics
}

type errorResponse struct {
	Error string `json:"error"`
}

// predict handles the JSON API: a FormState in, a Report out. A malformed
// body or an out-of-enum value is a 400; a per-target model failure stays
// inside its result slot with a 200.
func (s *server) predict() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var form models.FormState
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}

		report, err := s.runner.Run(form)
		if err != nil {
			var verr *models.ValidationError
			if errors.As(err, &verr) {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error()})
				return
			}
			log.Printf("HTTP: prediction run failed: %v", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "prediction failed"})
			return
		}

		s.recordResults(report)
		writeJSON(w, http.StatusOK, report)
	})
}

// recordResults feeds the report into the prediction metrics.
func (s *server) recordResults(report models.Report) {
	if s.metrics == nil {
		return
	}
	for _, res := range report.Results {
		if res.Error != "" {
			s.metrics.RecordPredictionError(string(res.Parameter))
			continue
		}
		s.metrics.RecordPrediction(string(res.Parameter), res.Exceeded)
	}
}

func (s *server) instrument(route string, next http.Handler) http.Handler {
	if s.metrics == nil {
		return next
	}
	return s.metrics.Instrument(route, next)
}

func (s *server) healthReady(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if !s.registry.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("NOT_READY"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func healthLiveHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("HTTP: write response failed: %v", err)
	}
}
