package weather

import (
	"context"
	"log/slog"
	"strings"
)

// forecastDays bounds the collapsed forecast output.
const forecastDays = 3

// Provider defines the OpenWeatherMap operations the service depends on.
type Provider interface {
	Current(ctx context.Context, q Query) (*CurrentConditions, error)
	Forecast(ctx context.Context, q Query) ([]ForecastSample, error)
	Geocode(ctx context.Context, q Query) (*GeoLocation, error)
	Alerts(ctx context.Context, loc GeoLocation) ([]AlertRecord, error)
}

// Service runs the query-and-render pipeline for the three weather
// operations. Every method returns a final string; failures are logged
// here and collapsed by the renderer, nothing propagates to the caller.
type Service struct {
	provider      Provider
	hasCredential bool
}

// NewService creates a weather service. The credential is checked once:
// a blank key makes every operation short-circuit without network calls.
func NewService(provider Provider, apiKey string) *Service {
	return &Service{
		provider:      provider,
		hasCredential: strings.TrimSpace(apiKey) != "",
	}
}

// FetchCurrent returns the rendered current weather for the queried city.
func (s *Service) FetchCurrent(ctx context.Context, q Query) string {
	if !s.hasCredential {
		return MsgAPIKeyNotSet
	}

	cond, err := s.provider.Current(ctx, q)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to get current weather", "city", q.City, "error", err)
	}
	return RenderCurrent(q.City, cond, err)
}

// FetchForecast returns the rendered multi-day forecast for the queried
// city, collapsed to one sample per calendar day.
func (s *Service) FetchForecast(ctx context.Context, q Query) string {
	if !s.hasCredential {
		return MsgAPIKeyNotSet
	}

	samples, err := s.provider.Forecast(ctx, q)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to get weather forecast", "city", q.City, "error", err)
		return RenderForecast(q.City, nil, err)
	}
	return RenderForecast(q.City, collapseDaily(samples, forecastDays), nil)
}

// FetchAlerts returns the rendered active alerts for the queried city.
// The lookup is two sequential stages: geocode, then the coordinate
// based one-call request.
func (s *Service) FetchAlerts(ctx context.Context, q Query) string {
	if !s.hasCredential {
		return MsgAPIKeyNotSet
	}

	loc, err := s.provider.Geocode(ctx, q)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to geocode city", "city", q.City, "error", err)
		return RenderAlerts(nil, err)
	}

	alerts, err := s.provider.Alerts(ctx, *loc)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to get weather alerts", "city", q.City, "error", err)
	}
	return RenderAlerts(alerts, err)
}

// collapseDaily keeps the first sample of each distinct date, up to
// maxDays dates, in first-seen order. It relies on the provider
// emitting samples chronologically; the input is not re-sorted.
func collapseDaily(samples []ForecastSample, maxDays int) []ForecastSample {
	seen := make(map[string]bool, maxDays)
	out := make([]ForecastSample, 0, maxDays)

	for _, sample := range samples {
		if len(out) < maxDays && !seen[sample.Date] {
			seen[sample.Date] = true
			out = append(out, sample)
		}
	}
	return out
}
