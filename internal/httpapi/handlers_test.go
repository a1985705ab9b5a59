package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ThanyaBream/IAQexceedance/internal/ml"
	"github.com/ThanyaBream/IAQexceedance/internal/models"
	"github.com/ThanyaBream/IAQexceedance/internal/observability"
)

func testRouter(t *testing.T, paths map[models.Parameter]string) http.Handler {
	t.Helper()
	registry, err := ml.LoadRegistry(paths)
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}
	return NewRouter(Deps{
		Runner:   ml.NewRunner(registry),
		Registry: registry,
		Metrics:  observability.NewMetrics(),
	})
}

func demoPaths(t *testing.T) map[models.Parameter]string {
	t.Helper()
	dir := t.TempDir()
	if err := ml.WriteDemoArtifacts(dir); err != nil {
		t.Fatalf("write demo artifacts: %v", err)
	}
	paths := make(map[models.Parameter]string)
	for _, param := range models.Parameters() {
		paths[param] = filepath.Join(dir, ml.ArtifactFilename(param))
	}
	return paths
}

func validPayload() map[string]string {
	return map[string]string{
		"occupancy":           "one_resident",
		"activity":            "Sleeping",
		"window":              "closed",
		"air_conditioning":    "on",
		"air_change_rate":     "meets_regulation",
		"air_purifier":        "off",
		"outdoor_temperature": "above_limit",
		"outdoor_pm25":        "at_or_below_limit",
		"outdoor_humidity":    "at_or_below_limit",
	}
}

func TestPredictEndpoint(t *testing.T) {
	router := testRouter(t, demoPaths(t))

	body, _ := json.Marshal(validPayload())
	req := httptest.NewRequest(http.MethodPost, "/predict", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}

	var report models.Report
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.SubmissionID == "" {
		t.Error("report missing submission ID")
	}
	if len(report.Results) != 4 {
		t.Fatalf("report has %d results, want 4", len(report.Results))
	}
	for _, res := range report.Results {
		if res.Error != "" {
			t.Errorf("%s result carries error: %s", res.Parameter, res.Error)
		}
		if res.Probability < 0 || res.Probability > 1 {
			t.Errorf("%s probability %v outside [0,1]", res.Parameter, res.Probability)
		}
	}
}

func TestPredictMalformedBody(t *testing.T) {
	router := testRouter(t, demoPaths(t))

	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", rec.Code)
	}
}

func TestPredictOutOfEnumValue(t *testing.T) {
	router := testRouter(t, demoPaths(t))

	payload := validPayload()
	payload["activity"] = "Jogging"
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/predict", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", rec.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if !strings.Contains(resp.Error, "activity") {
		t.Errorf("error %q does not name the invalid field", resp.Error)
	}
}

func TestPredictDegradedTarget(t *testing.T) {
	paths := demoPaths(t)
	paths[models.ParamCO2] = filepath.Join(t.TempDir(), "missing.json")
	router := testRouter(t, paths)

	body, _ := json.Marshal(validPayload())
	req := httptest.NewRequest(http.MethodPost, "/predict", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d, degraded target must not fail the request", rec.Code)
	}

	var report models.Report
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	for _, res := range report.Results {
		if res.Parameter == models.ParamCO2 && res.Error == "" {
			t.Error("co2 result should carry its load error")
		}
		if res.Parameter != models.ParamCO2 && res.Error != "" {
			t.Errorf("%s result should be unaffected: %s", res.Parameter, res.Error)
		}
	}
}

func TestHealthEndpoints(t *testing.T) {
	router := testRouter(t, demoPaths(t))

	for _, path := range []string{"/health", "/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s status=%d, want 200", path, rec.Code)
		}
	}
}

func TestFormPage(t *testing.T) {
	router := testRouter(t, demoPaths(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	page := rec.Body.String()
	for _, want := range []string{"occupancy", "activity", "window", "air_purifier", "Predict IAQ"} {
		if !strings.Contains(page, want) {
			t.Errorf("form page missing %q", want)
		}
	}
}

func TestFormSubmit(t *testing.T) {
	router := testRouter(t, demoPaths(t))

	form := url.Values{}
	for key, value := range validPayload() {
		form.Set(key, value)
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	page := rec.Body.String()
	if !strings.Contains(page, "Prediction Results") {
		t.Error("results section missing after submit")
	}
	if !strings.Contains(page, "chance to exceed") {
		t.Error("probability line missing after submit")
	}
	for _, name := range []string{"Temperature", "Relative Humidity", "CO2", "PM2.5"} {
		if !strings.Contains(page, name) {
			t.Errorf("result for %s missing", name)
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := testRouter(t, demoPaths(t))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
}
