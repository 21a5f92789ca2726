package weather

// Query identifies the place an operation runs against. City is passed
// through to the provider exactly as supplied by the caller.
type Query struct {
	City        string
	CountryCode string
}

// String returns the provider query value, "city" or "city,countryCode".
func (q Query) String() string {
	if q.CountryCode != "" {
		return q.City + "," + q.CountryCode
	}
	return q.City
}

// GeoLocation is a resolved latitude/longitude pair. It is produced by
// the geocoder and consumed by the alerts lookup within the same call.
type GeoLocation struct {
	Latitude  float64
	Longitude float64
}

// CurrentConditions holds the fields extracted from a current-weather response.
type CurrentConditions struct {
	Description  string
	TemperatureC float64
}

// ForecastSample is one forecast data point. Date carries only the
// calendar day (YYYY-MM-DD), taken from the provider's combined
// date-time string.
type ForecastSample struct {
	Date         string
	Description  string
	TemperatureC float64
}

// AlertRecord is one active weather alert.
type AlertRecord struct {
	Event       string
	Description string
}
