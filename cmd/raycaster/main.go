// Package main is the entry point for the raycaster.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/raycaster/internal/app"
	"github.com/samdwyer/raycaster/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if err := run(context.Background()); err != nil {
		log.Printf("Render failed: %v", err)
		os.Exit(1)
	}
}

// run renders the configured scene, flushing telemetry before it returns.
func run(ctx context.Context) error {
	if setupOTelEnv() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Rendering without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	return app.New(app.ConfigFromEnv()).Run(ctx)
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// Returns false when no API key is set and tracing should stay disabled.
func setupOTelEnv() bool {
	apiKey := os.Getenv("RAYCASTER_HONEYCOMB_API_KEY")
	if apiKey == "" {
		return false
	}

	dataset := os.Getenv("RAYCASTER_HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "raycaster" // default dataset name
	}

	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}
