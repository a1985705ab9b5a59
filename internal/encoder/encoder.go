// Package encoder derives the per-target numeric feature vectors from one
// form submission. The element ordering of each vector is fixed by the
// pre-trained classifiers and must not change.
package encoder

import (
	"github.com/ThanyaBream/IAQexceedance/internal/models"
)

// indicator converts a condition to the 0/1 feature encoding.
func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// ActivitySeverity maps an activity to its PM2.5 emission level:
// 2 for the high-emission activities (Cooking, Smoking), 1 otherwise.
func ActivitySeverity(a models.Activity) int {
	switch a {
	case models.ActivityCooking, models.ActivitySmoking:
		return 2
	default:
		return 1
	}
}

// TemperatureVector is [outdoor temp at/below 29 degC, window open, A/C off].
func TemperatureVector(f models.FormState) []float64 {
	return []float64{
		indicator(f.OutdoorTemperature == models.BandAtOrBelowLimit),
		indicator(f.Window == models.WindowOpen),
		indicator(f.AirConditioning == models.SwitchOff),
	}
}

// HumidityVector is [outdoor RH above 70%, window open, A/C on].
func HumidityVector(f models.FormState) []float64 {
	return []float64{
		indicator(f.OutdoorHumidity == models.BandAboveLimit),
		indicator(f.Window == models.WindowOpen),
		indicator(f.AirConditioning == models.SwitchOn),
	}
}

// CO2Vector is [occupant count, window open, ACH meets regulation].
func CO2Vector(f models.FormState) []float64 {
	return []float64{
		float64(f.Occupancy.Count()),
		indicator(f.Window == models.WindowOpen),
		indicator(f.AirChangeRate == models.VentilationMeetsRegulation),
	}
}

// PM25Vector is [outdoor PM2.5 above 25 ug/m3, window open,
// activity severity, air purifier on].
func PM25Vector(f models.FormState) []float64 {
	return []float64{
		indicator(f.OutdoorPM25 == models.BandAboveLimit),
		indicator(f.Window == models.WindowOpen),
		float64(ActivitySeverity(f.Activity)),
		indicator(f.AirPurifier == models.SwitchOn),
	}
}

// Encode derives all four feature vectors from a validated form state.
func Encode(f models.FormState) map[models.Parameter][]float64 {
	return map[models.Parameter][]float64{
		models.ParamTemperature: TemperatureVector(f),
		models.ParamHumidity:    HumidityVector(f),
		models.ParamCO2:         CO2Vector(f),
		models.ParamPM25:        PM25Vector(f),
	}
}

// Dims reports the fixed feature dimensionality for a target parameter.
func Dims(p models.Parameter) int {
	if p == models.ParamPM25 {
		return 4
	}
	return 3
}
