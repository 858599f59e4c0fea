package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// clientMetrics holds the collectors for outbound requests.
type clientMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inFlight        prometheus.Gauge
}

func newClientMetrics(reg prometheus.Registerer) *clientMetrics {
	return &clientMetrics{
		requestsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "ringoctl_api_requests_total",
				Help: "Total number of API requests by method and status code",
			},
			[]string{"method", "code"},
		),
		requestDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "ringoctl_api_request_duration_seconds",
				Help: "Duration of API requests in seconds",
				Buckets: []float64{
					0.005, // 5ms - local services
					0.025,
					0.1,
					0.5,
					1,
					5,
					30, // slow services without a timeout
				},
			},
			[]string{"method"},
		),
		inFlight: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Name: "ringoctl_api_requests_in_flight",
				Help: "Number of API requests currently in flight",
			},
		),
	}
}

// InstrumentTransport wraps next with request counters and duration
// histograms. It returns next unchanged when metrics are disabled.
func InstrumentTransport(next http.RoundTripper) http.RoundTripper {
	m := activeClientMetrics()
	if m == nil {
		return next
	}
	if next == nil {
		next = http.DefaultTransport
	}

	return promhttp.InstrumentRoundTripperInFlight(m.inFlight,
		promhttp.InstrumentRoundTripperCounter(m.requestsTotal,
			promhttp.InstrumentRoundTripperDuration(m.requestDuration, next),
		),
	)
}
