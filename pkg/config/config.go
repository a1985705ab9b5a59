package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/ThanyaBream/IAQexceedance/internal/ml"
	"github.com/ThanyaBream/IAQexceedance/internal/models"
)

type Config struct {
	// HTTP Configuration
	HTTPAddr string

	// Model Configuration
	ModelDir             string
	TemperatureModelFile string
	HumidityModelFile    string
	CO2ModelFile         string
	PM25ModelFile        string

	// Outdoor feed (MQTT) Configuration
	// An empty broker disables the feed.
	MQTTBroker               string
	MQTTClientID             string
	MQTTUsername             string
	MQTTPassword             string
	MQTTTopicOutdoorTemp     string
	MQTTTopicOutdoorPM25     string
	MQTTTopicOutdoorHumidity string
	OutdoorMaxAge            time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		// HTTP Configuration
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		// Model Configuration
		ModelDir:             getEnv("MODEL_DIR", "./models"),
		TemperatureModelFile: getEnv("TEMPERATURE_MODEL_FILE", ml.ArtifactFilename(models.ParamTemperature)),
		HumidityModelFile:    getEnv("HUMIDITY_MODEL_FILE", ml.ArtifactFilename(models.ParamHumidity)),
		CO2ModelFile:         getEnv("CO2_MODEL_FILE", ml.ArtifactFilename(models.ParamCO2)),
		PM25ModelFile:        getEnv("PM25_MODEL_FILE", ml.ArtifactFilename(models.ParamPM25)),

		// Outdoor feed Configuration
		MQTTBroker:               getEnv("MQTT_BROKER", ""),
		MQTTClientID:             getEnv("MQTT_CLIENT_ID", "iaq-predictor"),
		MQTTUsername:             getEnv("MQTT_USERNAME", ""),
		MQTTPassword:             getEnv("MQTT_PASSWORD", ""),
		MQTTTopicOutdoorTemp:     getEnv("MQTT_TOPIC_OUTDOOR_TEMPERATURE", "outdoor/+/temperature"),
		MQTTTopicOutdoorPM25:     getEnv("MQTT_TOPIC_OUTDOOR_PM25", "outdoor/+/pm25"),
		MQTTTopicOutdoorHumidity: getEnv("MQTT_TOPIC_OUTDOOR_HUMIDITY", "outdoor/+/humidity"),
		OutdoorMaxAge:            getEnvDuration("OUTDOOR_MAX_AGE", 15*time.Minute),
	}
}

// ModelPaths maps each target parameter to its artifact path.
func (c *Config) ModelPaths() map[models.Parameter]string {
	return map[models.Parameter]string{
		models.ParamTemperature: filepath.Join(c.ModelDir, c.TemperatureModelFile),
		models.ParamHumidity:    filepath.Join(c.ModelDir, c.HumidityModelFile),
		models.ParamCO2:         filepath.Join(c.ModelDir, c.CO2ModelFile),
		models.ParamPM25:        filepath.Join(c.ModelDir, c.PM25ModelFile),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: failed to parse %s as duration, using default: %v", key, err)
		return defaultValue
	}
	return d
}
