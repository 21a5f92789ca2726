package weather

import (
	"errors"
	"fmt"

	"github.com/8adimka/Go_Weather_MCP/internal/errorsx"
)

// Provider endpoints, used to attribute transport failures and metrics.
const (
	EndpointWeather  = "weather"
	EndpointForecast = "forecast"
	EndpointGeocode  = "geocode"
	EndpointOneCall  = "onecall"
)

// StatusError reports a non-2xx HTTP status from a provider endpoint.
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s endpoint returned status %d", e.Endpoint, e.Code)
}

// ErrLocationNotFound means geocoding returned zero results. It is a
// normal business outcome, not a fault.
var ErrLocationNotFound = errorsx.Wrap(errorsx.ErrNotFound, "location")

// IsProductTier reports whether err is the one-call 401, which signals
// that the configured key lacks the One Call 3.0 subscription rather
// than a generic transport problem.
func IsProductTier(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Endpoint == EndpointOneCall && statusErr.Code == 401
}
