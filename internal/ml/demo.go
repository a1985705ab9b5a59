package ml

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ThanyaBream/IAQexceedance/internal/models"
)

// ArtifactFilename returns the conventional artifact filename for a target.
func ArtifactFilename(param models.Parameter) string {
	return fmt.Sprintf("model_%s.json", param)
}

// WriteDemoArtifacts writes four plausible demo classifiers so the service
// runs end to end without the real training output. The weight signs track
// the physical relationships: an open window and a switched-off A/C raise
// the temperature exceedance odds, an air purifier lowers the PM2.5 odds,
// and so on.
func WriteDemoArtifacts(dir string) error {
	artifacts := map[models.Parameter]Artifact{
		models.ParamTemperature: {
			Parameter: string(models.ParamTemperature),
			// [outdoor at/below 29 degC, window open, A/C off]
			Weights:   []float64{-1.6, 0.9, 1.4},
			Intercept: -0.8,
			Threshold: 0.5,
			Version:   "demo-1",
		},
		models.ParamHumidity: {
			Parameter: string(models.ParamHumidity),
			// [outdoor RH above 70%, window open, A/C on]
			Weights:   []float64{1.5, 1.1, -1.3},
			Intercept: -0.7,
			Threshold: 0.5,
			Version:   "demo-1",
		},
		models.ParamCO2: {
			Parameter: string(models.ParamCO2),
			// [occupant count, window open, ACH meets regulation]
			Weights:   []float64{1.2, -1.0, -1.1},
			Intercept: -0.9,
			Threshold: 0.5,
			Version:   "demo-1",
		},
		models.ParamPM25: {
			Parameter: string(models.ParamPM25),
			// [outdoor above 25 ug/m3, window open, activity severity, purifier on]
			Weights:   []float64{1.4, 0.8, 1.0, -1.5},
			Intercept: -2.0,
			Threshold: 0.5,
			Version:   "demo-1",
		},
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create model dir: %w", err)
	}

	for param, artifact := range artifacts {
		data, err := json.MarshalIndent(artifact, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal %s artifact: %w", param, err)
		}

		path := filepath.Join(dir, ArtifactFilename(param))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s artifact: %w", param, err)
		}
		log.Printf("Created demo %s model at %s", param, path)
	}

	return nil
}
