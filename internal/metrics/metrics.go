package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds all application metrics
type Metrics struct {
	httpRequestsTotal   metric.Int64Counter
	httpRequestDuration metric.Float64Histogram

	toolInvocationsTotal   metric.Int64Counter
	toolInvocationDuration metric.Float64Histogram

	providerRequestsTotal   metric.Int64Counter
	providerRequestDuration metric.Float64Histogram
}

// NewMetrics creates and initializes all metrics
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	httpRequestsTotal, err := meter.Int64Counter(
		"http_server_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, err
	}

	httpRequestDuration, err := meter.Float64Histogram(
		"http_server_latency_ms",
		metric.WithDescription("HTTP request latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	toolInvocationsTotal, err := meter.Int64Counter(
		"tool_invocations_total",
		metric.WithDescription("Total number of tool invocations"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, err
	}

	toolInvocationDuration, err := meter.Float64Histogram(
		"tool_invocation_duration_ms",
		metric.WithDescription("Tool invocation duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	providerRequestsTotal, err := meter.Int64Counter(
		"weather_provider_requests_total",
		metric.WithDescription("Total requests issued to the weather provider"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, err
	}

	providerRequestDuration, err := meter.Float64Histogram(
		"weather_provider_request_duration_ms",
		metric.WithDescription("Weather provider request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		httpRequestsTotal:       httpRequestsTotal,
		httpRequestDuration:     httpRequestDuration,
		toolInvocationsTotal:    toolInvocationsTotal,
		toolInvocationDuration:  toolInvocationDuration,
		providerRequestsTotal:   providerRequestsTotal,
		providerRequestDuration: providerRequestDuration,
	}, nil
}

// HTTPMetricsMiddleware returns middleware for collecting HTTP metrics
func (m *Metrics) HTTPMetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Create response writer to capture status code
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			// Process request
			next.ServeHTTP(rw, r)

			// Record metrics
			durationMs := float64(time.Since(start).Nanoseconds()) / 1e6
			statusCode := strconv.Itoa(rw.statusCode)

			m.httpRequestsTotal.Add(r.Context(), 1,
				metric.WithAttributes(
					attribute.String("method", r.Method),
					attribute.String("path", r.URL.Path),
					attribute.String("status_code", statusCode),
				),
			)

			m.httpRequestDuration.Record(r.Context(), durationMs,
				metric.WithAttributes(
					attribute.String("method", r.Method),
					attribute.String("path", r.URL.Path),
					attribute.String("status_code", statusCode),
				),
			)
		})
	}
}

// RecordToolInvocation records one tool invocation with its outcome
func (m *Metrics) RecordToolInvocation(ctx context.Context, tool, outcome string, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("tool", tool),
		attribute.String("outcome", outcome),
	}

	m.toolInvocationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.toolInvocationDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}

// RecordProviderRequest records one outbound weather provider request
func (m *Metrics) RecordProviderRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("endpoint", endpoint),
		attribute.String("status_code", strconv.Itoa(statusCode)),
	}

	m.providerRequestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.providerRequestDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}

// responseWriter captures the status code for metrics
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
