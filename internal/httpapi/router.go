// Package httpapi exposes the prediction form and the JSON prediction
// endpoint.
package httpapi

import (
	"github.com/gorilla/mux"

	"github.com/ThanyaBream/IAQexceedance/internal/ml"
	"github.com/ThanyaBream/IAQexceedance/internal/observability"
	"github.com/ThanyaBream/IAQexceedance/internal/outdoor"
)

// Deps carries the server's collaborators. Feed may be nil when no MQTT
// broker is configured.
type Deps struct {
	Runner   *ml.Runner
	Registry *ml.Registry
	Feed     *outdoor.Feed
	Metrics  *observability.Metrics
}

// NewRouter wires all HTTP routes exposed by the predictor service.
func NewRouter(deps Deps) *mux.Router {
	s := &server{
		runner:   deps.Runner,
		registry: deps.Registry,
		feed:     deps.Feed,
		metrics:  deps.Metrics,
	}

	r := mux.NewRouter()

	r.Handle("/", s.instrument("form", s.formPage())).Methods("GET")
	r.Handle("/", s.instrument("form_submit", s.formSubmit())).Methods("POST")
	r.Handle("/predict", s.instrument("predict", s.predict())).Methods("POST")

	r.HandleFunc("/health", healthLiveHandler).Methods("GET")
	r.HandleFunc("/health/live", healthLiveHandler).Methods("GET")
	r.HandleFunc("/health/ready", s.healthReady).Methods("GET")

	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics.Handler()).Methods("GET")
	}

	return r
}
