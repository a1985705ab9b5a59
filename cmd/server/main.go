package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"

	"github.com/ThanyaBream/IAQexceedance/internal/httpapi"
	"github.com/ThanyaBream/IAQexceedance/internal/ml"
	"github.com/ThanyaBream/IAQexceedance/internal/observability"
	"github.com/ThanyaBream/IAQexceedance/internal/outdoor"
	"github.com/ThanyaBream/IAQexceedance/pkg/config"
)

func main() {
	log.Println("Starting IAQ Exceedance Predictor...")

	// Load configuration
	cfg := config.Load()

	// Load the four classifier artifacts once at startup
	registry, err := ml.LoadRegistry(cfg.ModelPaths())
	if err != nil {
		log.Fatalf("Failed to load model artifacts: %v", err)
	}
	for _, param := range registry.Degraded() {
		log.Printf("Warning: %s predictions unavailable (model failed to load)", param)
	}

	// Optional live outdoor conditions feed
	var feed *outdoor.Feed
	if cfg.MQTTBroker != "" {
		feed, err = outdoor.NewFeed(outdoor.FeedConfig{
			Broker:           cfg.MQTTBroker,
			ClientID:         cfg.MQTTClientID,
			Username:         cfg.MQTTUsername,
			Password:         cfg.MQTTPassword,
			TemperatureTopic: cfg.MQTTTopicOutdoorTemp,
			PM25Topic:        cfg.MQTTTopicOutdoorPM25,
			HumidityTopic:    cfg.MQTTTopicOutdoorHumidity,
			MaxAge:           cfg.OutdoorMaxAge,
		})
		if err != nil {
			log.Printf("Warning: outdoor feed unavailable, form defaults disabled: %v", err)
			feed = nil
		} else {
			defer feed.Close()
		}
	}

	metrics := observability.NewMetrics()
	runner := ml.NewRunner(registry)

	router := httpapi.NewRouter(httpapi.Deps{
		Runner:   runner,
		Registry: registry,
		Feed:     feed,
		Metrics:  metrics,
	})

	logged := handlers.RecoveryHandler()(handlers.LoggingHandler(os.Stdout, router))

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: logged,
	}

	go func() {
		log.Printf("IAQ predictor listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("HTTP shutdown error: %v", err)
	}
}
