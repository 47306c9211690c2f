package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"

	"github.com/example/calculator-service/modules/api"
	"github.com/example/calculator-service/modules/calculator"
	"github.com/example/calculator-service/modules/history"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Calculator Service ===")

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	logger := app.Logger()

	maxRecords := envInt("HISTORY_MAX_RECORDS", history.DefaultMaxRecords)

	// Register modules with the framework.
	// Order: independent modules first, then modules with dependencies
	// - history: event consumer (subscribes to calculation events)
	// - calculator: core domain (arithmetic dispatch, emits events)
	// - api: driving adapter (Fiber HTTP server, depends on both)
	app.Register(history.NewModule(maxRecords, logger))
	app.Register(calculator.NewModule(logger))
	app.Register(api.NewModule(logger))

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Ignoring invalid %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return value
}

func printStartupInfo() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("REST API Endpoints (http://localhost:%s):", port)
	log.Println("  POST   /api/v1/calculate   - Perform a calculation")
	log.Println("  GET    /api/v1/operations  - List supported operations")
	log.Println("  GET    /api/v1/history     - Recent calculations")
	log.Println("  GET    /api/v1/summary     - Aggregate counters")
	log.Println("  GET    /health             - Health check")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
