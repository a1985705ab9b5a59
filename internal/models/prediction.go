package models

import "time"

// Parameter identifies one of the four indoor air-quality targets.
type Parameter string

const (
	ParamTemperature Parameter = "temperature"
	ParamHumidity    Parameter = "humidity"
	ParamCO2         Parameter = "co2"
	ParamPM25        Parameter = "pm25"
)

// Parameters returns the four targets in their fixed prediction order.
func Parameters() []Parameter {
	return []Parameter{ParamTemperature, ParamHumidity, ParamCO2, ParamPM25}
}

// DisplayName returns the human-readable label shown on the results page.
func (p Parameter) DisplayName() string {
	switch p {
	case ParamTemperature:
		return "Temperature"
	case ParamHumidity:
		return "Relative Humidity"
	case ParamCO2:
		return "CO2"
	case ParamPM25:
		return "PM2.5"
	}
	return string(p)
}

// PredictionResult is one classifier's verdict for one submission.
// Probability is the exceedance probability in [0,1]. Error carries the
// per-target failure (model load problems) without aborting the other
// three predictions.
type PredictionResult struct {
	Parameter   Parameter `json:"parameter"`
	Exceeded    bool      `json:"exceeded"`
	Probability float64   `json:"probability"`
	Error       string    `json:"error,omitempty"`
}

// Report bundles the four prediction results for one submission.
// Reports are returned to the caller and never persisted.
type Report struct {
	SubmissionID string             `json:"submission_id"`
	Timestamp    time.Time          `json:"timestamp"`
	Results      []PredictionResult `json:"results"`
}
