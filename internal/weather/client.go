package weather

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/8adimka/Go_Weather_MCP/internal/errorsx"
	"github.com/8adimka/Go_Weather_MCP/internal/metrics"
)

const (
	dataBaseURL = "https://api.openweathermap.org"
	geoBaseURL  = "http://api.openweathermap.org"
)

// Doer issues a single HTTP request. The shared *http.Client satisfies
// it; implementations must be safe for concurrent use.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the OpenWeatherMap REST API. It holds no per-call
// state and may be shared across concurrent operations.
type Client struct {
	http    Doer
	apiKey  string
	metrics *metrics.Metrics // optional

	dataBaseURL string // overridable for testing
	geoBaseURL  string
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURLs overrides the provider base URLs, used to point the
// client at a test server.
func WithBaseURLs(dataURL, geoURL string) Option {
	return func(c *Client) {
		c.dataBaseURL = dataURL
		c.geoBaseURL = geoURL
	}
}

// NewClient creates an OpenWeatherMap client using the given HTTP capability.
func NewClient(doer Doer, apiKey string, m *metrics.Metrics, opts ...Option) *Client {
	client := &Client{
		http:        doer,
		apiKey:      apiKey,
		metrics:     m,
		dataBaseURL: dataBaseURL,
		geoBaseURL:  geoBaseURL,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Current fetches current conditions for the queried city.
func (c *Client) Current(ctx context.Context, q Query) (*CurrentConditions, error) {
	values := url.Values{}
	values.Set("q", q.String())
	values.Set("appid", c.apiKey)
	values.Set("units", "metric")

	body, err := c.get(ctx, EndpointWeather, c.dataBaseURL+"/data/2.5/weather", values)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Main *struct {
			Temp *float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description *string `json:"description"`
		} `json:"weather"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errorsx.Wrap(err, "decode weather response")
	}
	if payload.Main == nil || payload.Main.Temp == nil {
		return nil, errorsx.Wrap(errorsx.ErrInternal, "weather response missing main.temp")
	}
	if len(payload.Weather) == 0 || payload.Weather[0].Description == nil {
		return nil, errorsx.Wrap(errorsx.ErrInternal, "weather response missing weather[0].description")
	}

	return &CurrentConditions{
		Description:  *payload.Weather[0].Description,
		TemperatureC: *payload.Main.Temp,
	}, nil
}

// Forecast fetches the fixed-horizon 3-hour forecast series for the
// queried city. Samples are returned in the provider's order.
func (c *Client) Forecast(ctx context.Context, q Query) ([]ForecastSample, error) {
	values := url.Values{}
	values.Set("q", q.String())
	values.Set("appid", c.apiKey)
	values.Set("units", "metric")

	body, err := c.get(ctx, EndpointForecast, c.dataBaseURL+"/data/2.5/forecast", values)
	if err != nil {
		return nil, err
	}

	var payload struct {
		List []struct {
			DtTxt string `json:"dt_txt"`
			Main  *struct {
				Temp *float64 `json:"temp"`
			} `json:"main"`
			Weather []struct {
				Description *string `json:"description"`
			} `json:"weather"`
		} `json:"list"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errorsx.Wrap(err, "decode forecast response")
	}
	if payload.List == nil {
		return nil, errorsx.Wrap(errorsx.ErrInternal, "forecast response missing list")
	}

	samples := make([]ForecastSample, 0, len(payload.List))
	for _, item := range payload.List {
		if item.DtTxt == "" {
			return nil, errorsx.Wrap(errorsx.ErrInternal, "forecast item missing dt_txt")
		}
		if item.Main == nil || item.Main.Temp == nil {
			return nil, errorsx.Wrap(errorsx.ErrInternal, "forecast item missing main.temp")
		}
		if len(item.Weather) == 0 || item.Weather[0].Description == nil {
			return nil, errorsx.Wrap(errorsx.ErrInternal, "forecast item missing weather[0].description")
		}

		// dt_txt is "YYYY-MM-DD HH:MM:SS"; only the calendar day matters here.
		date := strings.SplitN(item.DtTxt, " ", 2)[0]
		samples = append(samples, ForecastSample{
			Date:         date,
			Description:  *item.Weather[0].Description,
			TemperatureC: *item.Main.Temp,
		})
	}

	return samples, nil
}

// Geocode resolves the queried city to coordinates using the first
// geocoding result. Zero results map to ErrLocationNotFound.
func (c *Client) Geocode(ctx context.Context, q Query) (*GeoLocation, error) {
	values := url.Values{}
	values.Set("q", q.String())
	values.Set("limit", "1")
	values.Set("appid", c.apiKey)

	body, err := c.get(ctx, EndpointGeocode, c.geoBaseURL+"/geo/1.0/direct", values)
	if err != nil {
		return nil, err
	}

	var results []struct {
		Lat *float64 `json:"lat"`
		Lon *float64 `json:"lon"`
	}
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, errorsx.Wrap(err, "decode geocoding response")
	}
	if len(results) == 0 {
		return nil, ErrLocationNotFound
	}
	if results[0].Lat == nil || results[0].Lon == nil {
		return nil, errorsx.Wrap(errorsx.ErrInternal, "geocoding result missing lat/lon")
	}

	return &GeoLocation{
		Latitude:  *results[0].Lat,
		Longitude: *results[0].Lon,
	}, nil
}

// Alerts fetches active alerts for the given coordinates via the
// one-call endpoint. An absent alerts field and an empty one both
// yield an empty slice.
func (c *Client) Alerts(ctx context.Context, loc GeoLocation) ([]AlertRecord, error) {
	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	values.Set("appid", c.apiKey)
	values.Set("units", "metric")

	body, err := c.get(ctx, EndpointOneCall, c.dataBaseURL+"/data/3.0/onecall", values)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Alerts []struct {
			Event       *string `json:"event"`
			Description *string `json:"description"`
		} `json:"alerts"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errorsx.Wrap(err, "decode one-call response")
	}

	alerts := make([]AlertRecord, 0, len(payload.Alerts))
	for _, a := range payload.Alerts {
		if a.Event == nil || a.Description == nil {
			return nil, errorsx.Wrap(errorsx.ErrInternal, "alert record missing event/description")
		}
		alerts = append(alerts, AlertRecord{
			Event:       *a.Event,
			Description: *a.Description,
		})
	}

	return alerts, nil
}

// get performs one provider round-trip and returns the response body.
// Non-2xx statuses come back as *StatusError.
func (c *Client) get(ctx context.Context, endpoint, rawURL string, values url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, errorsx.Wrapf(err, "create %s request", endpoint)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)
	if err != nil {
		if c.metrics != nil {
			c.metrics.RecordProviderRequest(ctx, endpoint, 0, duration)
		}
		return nil, errorsx.Wrapf(err, "execute %s request", endpoint)
	}
	defer resp.Body.Close()

	if c.metrics != nil {
		c.metrics.RecordProviderRequest(ctx, endpoint, resp.StatusCode, duration)
	}
	slog.DebugContext(ctx, "Provider request complete",
		"endpoint", endpoint, "status", resp.StatusCode, "duration_ms", duration.Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Endpoint: endpoint, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errorsx.Wrapf(err, "read %s response", endpoint)
	}
	return body, nil
}
