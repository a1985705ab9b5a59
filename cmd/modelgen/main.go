// modelgen writes the four demo classifier artifacts so the predictor can
// run end to end without the real training output.
package main

import (
	"log"

	"github.com/ThanyaBream/IAQexceedance/internal/ml"
	"github.com/ThanyaBream/IAQexceedance/pkg/config"
)

func main() {
	cfg := config.Load()

	if err := ml.WriteDemoArtifacts(cfg.ModelDir); err != nil {
		log.Fatalf("Failed to write demo artifacts: %v", err)
	}

	log.Printf("Demo artifacts written to %s", cfg.ModelDir)
}
