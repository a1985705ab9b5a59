package models

import "fmt"

// Occupancy is the number of residents in the room.
type Occupancy string

const (
	OccupancySingle   Occupancy = "one_resident"
	OccupancyMultiple Occupancy = "multiple_residents"
)

// Count returns the occupant count used as a CO2 feature (1 or 2).
func (o Occupancy) Count() int {
	if o == OccupancyMultiple {
		return 2
	}
	return 1
}

// Activity is the dominant occupant activity during the prediction window.
type Activity string

const (
	ActivitySleeping     Activity = "Sleeping"
	ActivitySitting      Activity = "Sitting"
	ActivityWatchingTV   Activity = "Watching TV"
	ActivityWorking      Activity = "Working"
	ActivityHavingDinner Activity = "Having Dinner"
	ActivityCleaning     Activity = "Cleaning"
	ActivityDressing     Activity = "Dressing"
	ActivityCooking      Activity = "Cooking"
	ActivitySmoking      Activity = "Smoking"
)

// Activities returns all selectable activities in display order.
func Activities() []Activity {
	return []Activity{
		ActivitySleeping,
		ActivitySitting,
		ActivityWatchingTV,
		ActivityWorking,
		ActivityHavingDinner,
		ActivityCleaning,
		ActivityDressing,
		ActivityCooking,
		ActivitySmoking,
	}
}

// WindowStatus reports whether the room window is open.
type WindowStatus string

const (
	WindowOpen   WindowStatus = "open"
	WindowClosed WindowStatus = "closed"
)

// SwitchState is an on/off appliance state (A/C, air purifier).
type SwitchState string

const (
	SwitchOn  SwitchState = "on"
	SwitchOff SwitchState = "off"
)

// VentilationStatus reports whether the room's air change rate meets the
// Thai ventilation regulation.
type VentilationStatus string

const (
	VentilationMeetsRegulation VentilationStatus = "meets_regulation"
	VentilationBelowRegulation VentilationStatus = "below_regulation"
)

// OutdoorBand places an outdoor quantity relative to its fixed limit
// (29 degC for temperature, 25 ug/m3 for PM2.5, 70% for relative humidity).
type OutdoorBand string

const (
	BandAtOrBelowLimit OutdoorBand = "at_or_below_limit"
	BandAboveLimit     OutdoorBand = "above_limit"
)

// Outdoor band cut points, matching the limits the classifiers were
// trained against.
const (
	OutdoorTempLimitC     = 29.0
	OutdoorPM25LimitUgM3  = 25.0
	OutdoorHumidityLimitP = 70.0
)

// BandForTemperature maps a measured outdoor temperature to its band.
func BandForTemperature(celsius float64) OutdoorBand {
	if celsius > OutdoorTempLimitC {
		return BandAboveLimit
	}
	return BandAtOrBelowLimit
}

// BandForPM25 maps a measured outdoor PM2.5 concentration to its band.
func BandForPM25(ugm3 float64) OutdoorBand {
	if ugm3 > OutdoorPM25LimitUgM3 {
		return BandAboveLimit
	}
	return BandAtOrBelowLimit
}

// BandForHumidity maps a measured outdoor relative humidity to its band.
func BandForHumidity(percent float64) OutdoorBand {
	if percent > OutdoorHumidityLimitP {
		return BandAboveLimit
	}
	return BandAtOrBelowLimit
}

// FormState captures one submission of occupant and environment selections.
// It is immutable once captured and discarded after the prediction pass.
type FormState struct {
	Occupancy          Occupancy         `json:"occupancy"`
	Activity           Activity          `json:"activity"`
	Window             WindowStatus      `json:"window"`
	AirConditioning    SwitchState       `json:"air_conditioning"`
	AirChangeRate      VentilationStatus `json:"air_change_rate"`
	AirPurifier        SwitchState       `json:"air_purifier"`
	OutdoorTemperature OutdoorBand       `json:"outdoor_temperature"`
	OutdoorPM25        OutdoorBand       `json:"outdoor_pm25"`
	OutdoorHumidity    OutdoorBand       `json:"outdoor_humidity"`
}

// ValidationError reports a form field holding a value outside its
// closed choice set. Raised before any encoding runs.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for field %q", e.Value, e.Field)
}

// Validate rejects any field whose value is outside its enumerated choice
// set. A populated form built from the selectable options always passes;
// this guards future inputs that bypass the form.
func (f FormState) Validate() error {
	switch f.Occupancy {
	case OccupancySingle, OccupancyMultiple:
	default:
		return &ValidationError{Field: "occupancy", Value: string(f.Occupancy)}
	}

	valid := false
	for _, a := range Activities() {
		if f.Activity == a {
			valid = true
			break
		}
	}
	if !valid {
		return &ValidationError{Field: "activity", Value: string(f.Activity)}
	}

	switch f.Window {
	case WindowOpen, WindowClosed:
	default:
		return &ValidationError{Field: "window", Value: string(f.Window)}
	}

	switch f.AirConditioning {
	case SwitchOn, SwitchOff:
	default:
		return &ValidationError{Field: "air_conditioning", Value: string(f.AirConditioning)}
	}

	switch f.AirChangeRate {
	case VentilationMeetsRegulation, VentilationBelowRegulation:
	default:
		return &ValidationError{Field: "air_change_rate", Value: string(f.AirChangeRate)}
	}

	switch f.AirPurifier {
	case SwitchOn, SwitchOff:
	default:
		return &ValidationError{Field: "air_purifier", Value: string(f.AirPurifier)}
	}

	switch f.OutdoorTemperature {
	case BandAtOrBelowLimit, BandAboveLimit:
	default:
		return &ValidationError{Field: "outdoor_temperature", Value: string(f.OutdoorTemperature)}
	}

	switch f.OutdoorPM25 {
	case BandAtOrBelowLimit, BandAboveLimit:
	default:
		return &ValidationError{Field: "outdoor_pm25", Value: string(f.OutdoorPM25)}
	}

	switch f.OutdoorHumidity {
	case BandAtOrBelowLimit, BandAboveLimit:
	default:
		return &ValidationError{Field: "outdoor_humidity", Value: string(f.OutdoorHumidity)}
	}

	return nil
}
