package factory

import (
	"log/slog"
	"time"

	"github.com/8adimka/Go_Weather_MCP/internal/config"
	"github.com/8adimka/Go_Weather_MCP/internal/httpx"
	"github.com/8adimka/Go_Weather_MCP/internal/metrics"
	"github.com/8adimka/Go_Weather_MCP/internal/tools/random"
	"github.com/8adimka/Go_Weather_MCP/internal/tools/registry"
	weathertool "github.com/8adimka/Go_Weather_MCP/internal/tools/weather"
	"github.com/8adimka/Go_Weather_MCP/internal/weather"
)

// Factory creates and registers all available tools
type Factory struct {
	registry *registry.ToolRegistry
	config   *config.Config
	metrics  *metrics.Metrics
}

// NewFactory creates a new tool factory
func NewFactory(cfg *config.Config, m *metrics.Metrics) *Factory {
	return &Factory{
		registry: registry.NewToolRegistry(),
		config:   cfg,
		metrics:  m,
	}
}

// CreateAllTools creates and registers all available tools
func (f *Factory) CreateAllTools() *registry.ToolRegistry {
	slog.Info("Creating and registering tools")

	// One shared HTTP client and provider for all three weather tools.
	httpClient := httpx.NewClient(10 * time.Second)
	provider := weather.NewClient(httpClient, f.config.WeatherApiKey, f.metrics)
	weatherService := weather.NewService(provider, f.config.WeatherApiKey)

	f.registerWeatherTools(weatherService)
	f.registerRandomTool()

	slog.Info("All tools registered successfully", "count", f.registry.Count())
	return f.registry
}

// registerWeatherTools registers the three weather query tools
func (f *Factory) registerWeatherTools(service *weather.Service) {
	f.registry.Register(weathertool.NewCurrentWeatherTool(service, f.metrics))
	f.registry.Register(weathertool.NewForecastTool(service, f.metrics))
	f.registry.Register(weathertool.NewAlertsTool(service, f.metrics))
}

// registerRandomTool registers the random number tool
func (f *Factory) registerRandomTool() {
	f.registry.Register(random.New())
}

// GetRegistry returns the tool registry
func (f *Factory) GetRegistry() *registry.ToolRegistry {
	return f.registry
}
