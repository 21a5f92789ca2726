package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/8adimka/Go_Weather_MCP/internal/config"
	"github.com/8adimka/Go_Weather_MCP/internal/health"
	"github.com/8adimka/Go_Weather_MCP/internal/httpx"
	"github.com/8adimka/Go_Weather_MCP/internal/logging"
	"github.com/8adimka/Go_Weather_MCP/internal/mcpx"
	"github.com/8adimka/Go_Weather_MCP/internal/metrics"
	"github.com/8adimka/Go_Weather_MCP/internal/otel"
	"github.com/8adimka/Go_Weather_MCP/internal/tools/factory"
	"github.com/8adimka/Go_Weather_MCP/internal/tools/registry"
)

const (
	serviceName    = "weather-mcp"
	serviceVersion = "1.0.0"
)

func main() {
	ctx := context.Background()

	// stdout carries the MCP protocol stream; all logs go to stderr.
	logging.Setup(slog.LevelInfo)

	// Load configuration from .env file
	cfg := config.Load()

	// Initialize OpenTelemetry
	shutdown, err := otel.InitOpenTelemetry(ctx, serviceName)
	if err != nil {
		slog.Error("Failed to initialize OpenTelemetry", "error", err)
		os.Exit(1)
	}
	defer shutdown(ctx)

	appMetrics, err := metrics.NewMetrics(otel.GetMeter())
	if err != nil {
		slog.Error("Failed to initialize metrics", "error", err)
		os.Exit(1)
	}

	// Create and register all tools
	reg := factory.NewFactory(cfg, appMetrics).CreateAllTools()

	// Configure the operator-facing sidecar listener
	handler := mux.NewRouter()
	handler.Use(
		httpx.OTelMiddleware(),
		httpx.Logger(),
		appMetrics.HTTPMetricsMiddleware(),
	)

	// Health checks
	healthChecker := health.NewHealthChecker(cfg.WeatherApiKey != "")
	handler.HandleFunc("/health", healthChecker.HealthHandler)
	handler.HandleFunc("/ready", healthChecker.ReadyHandler)

	// Metrics endpoint
	handler.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Starting the sidecar listener...", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Sidecar listener failed to start", "error", err)
			os.Exit(1)
		}
	}()

	if cfg.SelfTest {
		runSelfTest(ctx, reg)
	}

	mcpServer, err := mcpx.NewServer(serviceName, serviceVersion, reg)
	if err != nil {
		slog.Error("Failed to build MCP server", "error", err)
		os.Exit(1)
	}

	// Serve MCP on stdio until the host closes the stream.
	slog.Info("Serving MCP on stdio", "tools", reg.Count())
	if err := mcpx.ServeStdio(mcpServer); err != nil {
		slog.Error("MCP server exited with error", "error", err)
	}

	slog.Info("Shutting down sidecar listener...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Sidecar listener forced to shutdown", "error", err)
	}

	slog.Info("Server exited")
}

// runSelfTest invokes each weather tool once and logs the result,
// mirroring what an MCP host would receive.
func runSelfTest(ctx context.Context, reg *registry.ToolRegistry) {
	args := map[string]interface{}{
		"city":         "Astana",
		"country_code": "KZ",
	}

	for _, name := range []string{"get_current_weather", "get_weather_forecast", "get_weather_alerts"} {
		tool := reg.Get(name)
		if tool == nil {
			slog.Error("Self-test tool missing", "tool", name)
			continue
		}

		result, err := tool.Execute(ctx, args)
		if err != nil {
			slog.Error("Self-test tool failed", "tool", name, "error", err)
			continue
		}
		slog.Info("Self-test result", "tool", name, "result", result)
	}
}
