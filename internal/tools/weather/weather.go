package weather

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/8adimka/Go_Weather_MCP/internal/metrics"
	"github.com/8adimka/Go_Weather_MCP/internal/tools/registry"
	"github.com/8adimka/Go_Weather_MCP/internal/weather"
)

// queryParameters is the shared argument schema of the three weather tools.
func queryParameters(cityDoc string) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"city": map[string]interface{}{
				"type":        "string",
				"description": cityDoc,
			},
			"country_code": map[string]interface{}{
				"type":        "string",
				"description": "Optional: Country code (e.g., 'US', 'UK')",
			},
		},
		"required": []string{"city"},
	}
}

// parseQuery extracts the weather query from tool arguments.
func parseQuery(args map[string]interface{}) (weather.Query, error) {
	city, ok := args["city"].(string)
	if !ok || city == "" {
		return weather.Query{}, errors.New("city is required")
	}

	query := weather.Query{City: city}
	if cc, ok := args["country_code"].(string); ok {
		query.CountryCode = cc
	}
	return query, nil
}

// run wraps one tool invocation with logging and metrics.
func run(ctx context.Context, m *metrics.Metrics, tool string, args map[string]interface{},
	fetch func(context.Context, weather.Query) string) (string, error) {

	invocationID := uuid.NewString()
	start := time.Now()

	query, err := parseQuery(args)
	if err != nil {
		if m != nil {
			m.RecordToolInvocation(ctx, tool, "invalid_input", time.Since(start))
		}
		return "", err
	}

	slog.InfoContext(ctx, "Tool invoked",
		"tool", tool, "invocation_id", invocationID, "city", query.City, "country_code", query.CountryCode)

	result := fetch(ctx, query)

	if m != nil {
		m.RecordToolInvocation(ctx, tool, "success", time.Since(start))
	}
	slog.InfoContext(ctx, "Tool invocation complete",
		"tool", tool, "invocation_id", invocationID, "duration_ms", time.Since(start).Milliseconds())

	return result, nil
}

// CurrentWeatherTool reports current conditions for a city
type CurrentWeatherTool struct {
	service *weather.Service
	metrics *metrics.Metrics
}

// NewCurrentWeatherTool creates a new CurrentWeatherTool instance
func NewCurrentWeatherTool(service *weather.Service, m *metrics.Metrics) *CurrentWeatherTool {
	return &CurrentWeatherTool{service: service, metrics: m}
}

// Name returns the tool name
func (t *CurrentWeatherTool) Name() string {
	return "get_current_weather"
}

// Description returns the tool description
func (t *CurrentWeatherTool) Description() string {
	return "Gets current weather conditions for the specified city."
}

// Parameters returns the JSON schema for parameters
func (t *CurrentWeatherTool) Parameters() map[string]interface{} {
	return queryParameters("The city name to get weather for")
}

// Execute fetches and renders current weather for the city
func (t *CurrentWeatherTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	return run(ctx, t.metrics, t.Name(), args, t.service.FetchCurrent)
}

// ForecastTool reports a multi-day forecast for a city
type ForecastTool struct {
	service *weather.Service
	metrics *metrics.Metrics
}

// NewForecastTool creates a new ForecastTool instance
func NewForecastTool(service *weather.Service, m *metrics.Metrics) *ForecastTool {
	return &ForecastTool{service: service, metrics: m}
}

// Name returns the tool name
func (t *ForecastTool) Name() string {
	return "get_weather_forecast"
}

// Description returns the tool description
func (t *ForecastTool) Description() string {
	return "Gets weather forecast for the specified city (3-day minimum)."
}

// Parameters returns the JSON schema for parameters
func (t *ForecastTool) Parameters() map[string]interface{} {
	return queryParameters("The city name to get forecast for")
}

// Execute fetches and renders the forecast for the city
func (t *ForecastTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	return run(ctx, t.metrics, t.Name(), args, t.service.FetchForecast)
}

// AlertsTool reports active weather alerts for a city
type AlertsTool struct {
	service *weather.Service
	metrics *metrics.Metrics
}

// NewAlertsTool creates a new AlertsTool instance
func NewAlertsTool(service *weather.Service, m *metrics.Metrics) *AlertsTool {
	return &AlertsTool{service: service, metrics: m}
}

// Name returns the tool name
func (t *AlertsTool) Name() string {
	return "get_weather_alerts"
}

// Description returns the tool description
func (t *AlertsTool) Description() string {
	return "Gets weather alerts/warnings for the specified city."
}

// Parameters returns the JSON schema for parameters
func (t *AlertsTool) Parameters() map[string]interface{} {
	return queryParameters("The city name to get alerts for")
}

// Execute fetches and renders active alerts for the city
func (t *AlertsTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	return run(ctx, t.metrics, t.Name(), args, t.service.FetchAlerts)
}

// Ensure the tools implement registry.Tool interface
var (
	_ registry.Tool = (*CurrentWeatherTool)(nil)
	_ registry.Tool = (*ForecastTool)(nil)
	_ registry.Tool = (*AlertsTool)(nil)
)
