package models

import "testing"

func validForm() FormState {
	return FormState{
		Occupancy:          OccupancySingle,
		Activity:           ActivityWorking,
		Window:             WindowOpen,
		AirConditioning:    SwitchOff,
		AirChangeRate:      VentilationBelowRegulation,
		AirPurifier:        SwitchOn,
		OutdoorTemperature: BandAtOrBelowLimit,
		OutdoorPM25:        BandAboveLimit,
		OutdoorHumidity:    BandAtOrBelowLimit,
	}
}

func TestValidateAcceptsAllChoices(t *testing.T) {
	form := validForm()
	for _, activity := range Activities() {
		form.Activity = activity
		if err := form.Validate(); err != nil {
			t.Errorf("valid form with activity %q rejected: %v", activity, err)
		}
	}
}

func TestValidateRejectsOutOfEnum(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*FormState)
	}{
		{"occupancy", func(f *FormState) { f.Occupancy = "three_residents" }},
		{"activity", func(f *FormState) { f.Activity = "Jogging" }},
		{"window", func(f *FormState) { f.Window = "ajar" }},
		{"air_conditioning", func(f *FormState) { f.AirConditioning = "auto" }},
		{"air_change_rate", func(f *FormState) { f.AirChangeRate = "unknown" }},
		{"air_purifier", func(f *FormState) { f.AirPurifier = "" }},
		{"outdoor_temperature", func(f *FormState) { f.OutdoorTemperature = "30" }},
		{"outdoor_pm25", func(f *FormState) { f.OutdoorPM25 = "hazardous" }},
		{"outdoor_humidity", func(f *FormState) { f.OutdoorHumidity = "" }},
	}

	for _, c := range cases {
		t.Run(c.field, func(t *testing.T) {
			form := validForm()
			c.mutate(&form)
			err := form.Validate()
			if err == nil {
				t.Fatalf("expected validation error for field %s", c.field)
			}
			verr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != c.field {
				t.Errorf("error names field %q, want %q", verr.Field, c.field)
			}
		})
	}
}

func TestOccupancyCount(t *testing.T) {
	if got := OccupancySingle.Count(); got != 1 {
		t.Errorf("single count = %d, want 1", got)
	}
	if got := OccupancyMultiple.Count(); got != 2 {
		t.Errorf("multiple count = %d, want 2", got)
	}
}

func TestOutdoorBands(t *testing.T) {
	cases := []struct {
		name  string
		band  OutdoorBand
		want  OutdoorBand
	}{
		{"temp at limit", BandForTemperature(29.0), BandAtOrBelowLimit},
		{"temp above limit", BandForTemperature(29.1), BandAboveLimit},
		{"pm25 at limit", BandForPM25(25.0), BandAtOrBelowLimit},
		{"pm25 above limit", BandForPM25(80.0), BandAboveLimit},
		{"humidity below limit", BandForHumidity(55.0), BandAtOrBelowLimit},
		{"humidity above limit", BandForHumidity(70.5), BandAboveLimit},
	}

	for _, c := range cases {
		if c.band != c.want {
			t.Errorf("%s: got %q, want %q", c.name, c.band, c.want)
		}
	}
}
