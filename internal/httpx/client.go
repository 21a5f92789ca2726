package httpx

import (
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewClient builds the shared outbound HTTP client. Connection pooling,
// TLS and per-request tracing live here; callers see only the Do method.
// The returned client is safe for concurrent use.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}
