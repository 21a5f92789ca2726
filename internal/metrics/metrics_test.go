package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMetrics(t *testing.T) (*Metrics, *metric.ManualReader) {
	t.Helper()

	reader := metric.NewManualReader()
	provider := metric.NewMeterProvider(metric.WithReader(reader))
	meter := provider.Meter("test")

	appMetrics, err := NewMetrics(meter)
	if err != nil {
		t.Fatalf("Failed to create metrics: %v", err)
	}
	return appMetrics, reader
}

func collectedMetricNames(t *testing.T, reader *metric.ManualReader) map[string]bool {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Failed to collect metrics: %v", err)
	}

	names := map[string]bool{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			names[m.Name] = true
		}
	}
	return names
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	appMetrics, reader := newTestMetrics(t)

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("test response"))
	})

	wrappedHandler := appMetrics.HTTPMetricsMiddleware()(testHandler)

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	wrappedHandler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
	if rec.Body.String() != "test response" {
		t.Errorf("Expected 'test response', got %q", rec.Body.String())
	}

	names := collectedMetricNames(t, reader)
	if !names["http_server_requests_total"] {
		t.Error("Expected http_server_requests_total to be recorded")
	}
	if !names["http_server_latency_ms"] {
		t.Error("Expected http_server_latency_ms to be recorded")
	}
}

func TestHTTPMetricsMiddleware_ErrorStatus(t *testing.T) {
	appMetrics, reader := newTestMetrics(t)

	errorHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	wrapped := appMetrics.HTTPMetricsMiddleware()(errorHandler)

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest("GET", "/boom", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", rec.Code)
	}

	names := collectedMetricNames(t, reader)
	if !names["http_server_requests_total"] {
		t.Error("Expected http_server_requests_total to be recorded")
	}
}

func TestRecordToolInvocation(t *testing.T) {
	appMetrics, reader := newTestMetrics(t)

	appMetrics.RecordToolInvocation(context.Background(), "get_current_weather", "success", 120*time.Millisecond)

	names := collectedMetricNames(t, reader)
	if !names["tool_invocations_total"] {
		t.Error("Expected tool_invocations_total to be recorded")
	}
	if !names["tool_invocation_duration_ms"] {
		t.Error("Expected tool_invocation_duration_ms to be recorded")
	}
}

func TestRecordProviderRequest(t *testing.T) {
	appMetrics, reader := newTestMetrics(t)

	appMetrics.RecordProviderRequest(context.Background(), "forecast", 200, 80*time.Millisecond)

	names := collectedMetricNames(t, reader)
	if !names["weather_provider_requests_total"] {
		t.Error("Expected weather_provider_requests_total to be recorded")
	}
	if !names["weather_provider_request_duration_ms"] {
		t.Error("Expected weather_provider_request_duration_ms to be recorded")
	}
}
