package telemetry

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Transport wraps next so that every outgoing request gets a client span and
// carries the W3C traceparent header. It returns next unchanged when
// telemetry is disabled.
func Transport(next http.RoundTripper) http.RoundTripper {
	if !IsEnabled() {
		return next
	}
	if next == nil {
		next = http.DefaultTransport
	}
	return otelhttp.NewTransport(next,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}
