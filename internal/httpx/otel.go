package httpx

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// OTelMiddleware returns OpenTelemetry HTTP middleware for automatic tracing
func OTelMiddleware() func(http.Handler) http.Handler {
	return otelhttp.NewMiddleware("http-server",
		otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}
