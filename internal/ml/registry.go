package ml

import (
	"fmt"
	"log"

	"github.com/ThanyaBream/IAQexceedance/internal/encoder"
	"github.com/ThanyaBream/IAQexceedance/internal/models"
)

// Registry holds the four loaded classifiers, keyed by target parameter.
// It is populated once at startup and read-only afterwards; the artifacts
// are static files, so there is no invalidation.
type Registry struct {
	classifiers map[models.Parameter]Classifier
	loadErrs    map[models.Parameter]error
}

// LoadRegistry loads every target's artifact from its configured path.
// A target whose artifact fails to load is recorded as degraded and keeps
// surfacing its LoadError per prediction; loading fails outright only when
// no artifact loads at all.
func LoadRegistry(paths map[models.Parameter]string) (*Registry, error) {
	r := &Registry{
		classifiers: make(map[models.Parameter]Classifier),
		loadErrs:    make(map[models.Parameter]error),
	}

	for _, param := range models.Parameters() {
		path, ok := paths[param]
		if !ok {
			r.loadErrs[param] = &LoadError{Parameter: param, Err: fmt.Errorf("no artifact path configured")}
			continue
		}
		clf, err := Load(param, path, encoder.Dims(param))
		if err != nil {
			log.Printf("Registry: %v", err)
			r.loadErrs[param] = err
			continue
		}
		r.classifiers[param] = clf
	}

	if len(r.classifiers) == 0 {
		return nil, fmt.Errorf("no model artifacts could be loaded")
	}

	if len(r.loadErrs) > 0 {
		log.Printf("Registry: running degraded, %d of %d models loaded",
			len(r.classifiers), len(models.Parameters()))
	}

	return r, nil
}

// Classifier returns the loaded classifier for a target, or the LoadError
// recorded when its artifact failed to load.
func (r *Registry) Classifier(param models.Parameter) (Classifier, error) {
	if clf, ok := r.classifiers[param]; ok {
		return clf, nil
	}
	if err, ok := r.loadErrs[param]; ok {
		return nil, err
	}
	return nil, fmt.Errorf("unknown parameter %q", param)
}

// Ready reports whether at least one classifier is available.
func (r *Registry) Ready() bool {
	return len(r.classifiers) > 0
}

// Degraded lists the targets whose artifacts failed to load.
func (r *Registry) Degraded() []models.Parameter {
	var out []models.Parameter
	for _, param := range models.Parameters() {
		if _, ok := r.loadErrs[param]; ok {
			out = append(out, param)
		}
	}
	return out
}
