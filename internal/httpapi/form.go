package httpapi

import (
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/ThanyaBream/IAQexceedance/internal/models"
)

const formTemplate = `<!DOCTYPE html>
<html>
<head><title>IAQ Exceedance Predictor</title></head>
<body>
<h1>IAQ Exceedance Predictor</h1>
<p>Predicts whether indoor air quality parameters will exceed safe thresholds
based on occupant behavior and environmental conditions.</p>

{{if .FormError}}<p><b>Error:</b> {{.FormError}}</p>{{end}}

<form method="POST" action="/">
{{range .Fields}}
  <label for="{{.Name}}">{{.Label}}</label>
  <select id="{{.Name}}" name="{{.Name}}">
  {{range .Options}}
    <option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
  {{end}}
  </select>
  <br>
{{end}}
  <button type="submit">Predict IAQ</button>
</form>

{{if .Results}}
<h2>Prediction Results</h2>
<ul>
{{range .Results}}
  {{if .Error}}
  <li><b>{{.Name}}:</b> prediction unavailable ({{.Error}})</li>
  {{else}}
  <li><b>{{.Name}}:</b> {{if .Exceeded}}Exceeded{{else}}Within Limit{{end}}
      ({{.Percent}} chance to exceed)</li>
  {{end}}
{{end}}
</ul>
{{end}}
</body>
</html>
`

var formTmpl = template.Must(template.New("form").Parse(formTemplate))

type option struct {
	Value    string
	Label    string
	Selected bool
}

type field struct {
	Name    string
	Label   string
	Options []option
}

type resultView struct {
	Name     string
	Exceeded bool
	Percent  string
	Error    string
}

type pageData struct {
	Fields    []field
	Results   []resultView
	FormError string
}

// formPage renders the empty form. When the outdoor feed has fresh
// readings, the three outdoor band fields are preselected from them.
func (s *server) formPage() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		selected := map[string]string{}
		if s.feed != nil {
			conditions := s.feed.Snapshot()
			if band, ok := conditions.TemperatureBand(); ok {
				selected["outdoor_temperature"] = string(band)
			}
			if band, ok := conditions.PM25Band(); ok {
				selected["outdoor_pm25"] = string(band)
			}
			if band, ok := conditions.HumidityBand(); ok {
				selected["outdoor_humidity"] = string(band)
			}
		}
		s.renderForm(w, pageData{Fields: formFields(selected)})
	})
}

// formSubmit runs the prediction pass and renders the results back into
// the page.
func (s *server) formSubmit() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		form := models.FormState{
			Occupancy:          models.Occupancy(r.FormValue("occupancy")),
			Activity:           models.Activity(r.FormValue("activity")),
			Window:             models.WindowStatus(r.FormValue("window")),
			AirConditioning:    models.SwitchState(r.FormValue("air_conditioning")),
			AirChangeRate:      models.VentilationStatus(r.FormValue("air_change_rate")),
			AirPurifier:        models.SwitchState(r.FormValue("air_purifier")),
			OutdoorTemperature: models.OutdoorBand(r.FormValue("outdoor_temperature")),
			OutdoorPM25:        models.OutdoorBand(r.FormValue("outdoor_pm25")),
			OutdoorHumidity:    models.OutdoorBand(r.FormValue("outdoor_humidity")),
		}

		selected := map[string]string{
			"occupancy":           string(form.Occupancy),
			"activity":            string(form.Activity),
			"window":              string(form.Window),
			"air_conditioning":    string(form.AirConditioning),
			"air_change_rate":     string(form.AirChangeRate),
			"air_purifier":        string(form.AirPurifier),
			"outdoor_temperature": string(form.OutdoorTemperature),
			"outdoor_pm25":        string(form.OutdoorPM25),
			"outdoor_humidity":    string(form.OutdoorHumidity),
		}
		data := pageData{Fields: formFields(selected)}

		report, err := s.runner.Run(form)
		if err != nil {
			data.FormError = err.Error()
			s.renderForm(w, data)
			return
		}

		s.recordResults(report)
		for _, res := range report.Results {
			data.Results = append(data.Results, resultView{
				Name:     res.Parameter.DisplayName(),
				Exceeded: res.Exceeded,
				Percent:  fmt.Sprintf("%.1f%%", res.Probability*100),
				Error:    res.Error,
			})
		}
		s.renderForm(w, data)
	})
}

func (s *server) renderForm(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := formTmpl.Execute(w, data); err != nil {
		log.Printf("HTTP: render form failed: %v", err)
	}
}

// formFields builds the nine selection fields. selected maps field names
// to the option value to preselect; unmapped fields keep their first
// option.
func formFields(selected map[string]string) []field {
	activityOptions := make([]option, 0, len(models.Activities()))
	for _, a := range models.Activities() {
		activityOptions = append(activityOptions, option{Value: string(a), Label: string(a)})
	}

	fields := []field{
		{Name: "occupancy", Label: "Number of People in the Room", Options: []option{
			{Value: string(models.OccupancySingle), Label: "One resident"},
			{Value: string(models.OccupancyMultiple), Label: "More than one residents"},
		}},
		{Name: "activity", Label: "Activity Type", Options: activityOptions},
		{Name: "window", Label: "Window Status", Options: []option{
			{Value: string(models.WindowClosed), Label: "Closed"},
			{Value: string(models.WindowOpen), Label: "Open"},
		}},
		{Name: "air_conditioning", Label: "Air Conditioning (A/C)", Options: []option{
			{Value: string(models.SwitchOff), Label: "Off"},
			{Value: string(models.SwitchOn), Label: "On"},
		}},
		{Name: "air_change_rate", Label: "Air Change Rate (ACH)", Options: []option{
			{Value: string(models.VentilationMeetsRegulation), Label: "Meet Thai regulation"},
			{Value: string(models.VentilationBelowRegulation), Label: "Not meet Thai regulation"},
		}},
		{Name: "air_purifier", Label: "Air Purifier", Options: []option{
			{Value: string(models.SwitchOff), Label: "Off"},
			{Value: string(models.SwitchOn), Label: "On"},
		}},
		{Name: "outdoor_temperature", Label: "Outdoor Temperature (°C)", Options: []option{
			{Value: string(models.BandAtOrBelowLimit), Label: "≤29"},
			{Value: string(models.BandAboveLimit), Label: ">29"},
		}},
		{Name: "outdoor_pm25", Label: "Outdoor PM2.5 (µg/m³)", Options: []option{
			{Value: string(models.BandAtOrBelowLimit), Label: "≤25"},
			{Value: string(models.BandAboveLimit), Label: ">25"},
		}},
		{Name: "outdoor_humidity", Label: "Outdoor Relative Humidity (%)", Options: []option{
			{Value: string(models.BandAtOrBelowLimit), Label: "≤70"},
			{Value: string(models.BandAboveLimit), Label: ">70"},
		}},
	}

	for i := range fields {
		value, ok := selected[fields[i].Name]
		if !ok || value == "" {
			continue
		}
		for j := range fields[i].Options {
			if fields[i].Options[j].Value == value {
				fields[i].Options[j].Selected = true
			}
		}
	}

	return fields
}
