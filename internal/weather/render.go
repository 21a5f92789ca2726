package weather

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Fixed result strings. These are the contract with the caller: every
// operation terminates in one of these or a success rendering, never in
// a structured error.
const (
	MsgAPIKeyNotSet     = "API key not set."
	MsgLocationNotFound = "Location not found."
	MsgNoForecastData   = "No forecast data available."
	MsgNoAlerts         = "No weather alerts currently."
	MsgPaidTierRequired = "Weather alerts feature requires a paid OpenWeatherMap API key (One Call 3.0)."
	MsgInternalWeather  = "Internal error while fetching weather."
	MsgInternalForecast = "Internal error while fetching forecast."
	MsgInternalAlerts   = "Internal error while fetching alerts."
)

// RenderCurrent maps a current-weather outcome to its final string.
func RenderCurrent(city string, cond *CurrentConditions, err error) string {
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			return fmt.Sprintf("Error fetching weather: %d", statusErr.Code)
		}
		return MsgInternalWeather
	}
	return fmt.Sprintf("Current weather in %s: %s, %s°C", city, cond.Description, formatTemp(cond.TemperatureC))
}

// RenderForecast maps a forecast outcome to its final string. Entries
// are expected to be already collapsed to one sample per day.
func RenderForecast(city string, entries []ForecastSample, err error) string {
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			return fmt.Sprintf("Error fetching forecast: %d", statusErr.Code)
		}
		return MsgInternalForecast
	}
	if len(entries) == 0 {
		return MsgNoForecastData
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s: %s, %s°C", e.Date, e.Description, formatTemp(e.TemperatureC)))
	}
	return fmt.Sprintf("Weather forecast for %s:\n%s", city, strings.Join(lines, "\n"))
}

// RenderAlerts maps an alerts outcome to its final string. The product
// tier check runs before the generic status branch so a one-call 401
// never renders as a plain transport failure.
func RenderAlerts(alerts []AlertRecord, err error) string {
	if err != nil {
		switch {
		case IsProductTier(err):
			return MsgPaidTierRequired
		case errors.Is(err, ErrLocationNotFound):
			return MsgLocationNotFound
		}

		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			if statusErr.Endpoint == EndpointGeocode {
				return fmt.Sprintf("Error fetching geo data: %d", statusErr.Code)
			}
			return fmt.Sprintf("Error fetching weather alerts: %d", statusErr.Code)
		}
		return MsgInternalAlerts
	}
	if len(alerts) == 0 {
		return MsgNoAlerts
	}

	lines := make([]string, 0, len(alerts))
	for _, a := range alerts {
		lines = append(lines, fmt.Sprintf("* %s: %s", a.Event, a.Description))
	}
	return "Weather alerts:\n" + strings.Join(lines, "\n")
}

// formatTemp prints a temperature with the fewest digits that round-trip
// the value, so 21.5 renders as "21.5" and 21 as "21".
func formatTemp(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64)
}
