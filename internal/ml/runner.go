package ml

import (
	"time"

	"github.com/google/uuid"

	"github.com/ThanyaBream/IAQexceedance/internal/encoder"
	"github.com/ThanyaBream/IAQexceedance/internal/models"
)

// Runner executes the four exceedance predictions for one submission.
// The predictions are independent; they run sequentially in the fixed
// parameter order.
type Runner struct {
	registry *Registry
}

// NewRunner creates a runner over an already-populated registry.
func NewRunner(registry *Registry) *Runner {
	return &Runner{registry: registry}
}

// Run validates the form, encodes the four feature vectors and applies
// each target's classifier. A target whose model is unavailable reports
// its error in its own result slot; the other predictions still run.
func (r *Runner) Run(form models.FormState) (models.Report, error) {
	if err := form.Validate(); err != nil {
		return models.Report{}, err
	}

	vectors := encoder.Encode(form)

	report := models.Report{
		SubmissionID: uuid.NewString(),
		Timestamp:    time.Now().UTC(),
	}

	for _, param := range models.Parameters() {
		result := models.PredictionResult{Parameter: param}

		clf, err := r.registry.Classifier(param)
		if err != nil {
			result.Error = err.Error()
			report.Results = append(report.Results, result)
			continue
		}

		features := vectors[param]
		prob, err := clf.PredictProbability(features)
		if err != nil {
			result.Error = err.Error()
			report.Results = append(report.Results, result)
			continue
		}
		exceeded, err := clf.Predict(features)
		if err != nil {
			result.Error = err.Error()
			report.Results = append(report.Results, result)
			continue
		}

		result.Probability = prob
		result.Exceeded = exceeded
		report.Results = append(report.Results, result)
	}

	return report, nil
}
