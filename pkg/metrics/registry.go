// Package metrics provides optional Prometheus metrics for outbound API
// requests.
//
// Metrics are disabled until InitRegistry is called. While disabled every
// constructor returns its input unchanged so callers pay nothing. A CLI
// process is too short-lived to be scraped, so collected samples are written
// to a node_exporter textfile on exit with WriteTextfile.
package metrics

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	mu       sync.RWMutex
	registry *prometheus.Registry
	client   *clientMetrics
)

// InitRegistry enables metrics collection with a fresh registry.
func InitRegistry() *prometheus.Registry {
	mu.Lock()
	defer mu.Unlock()
	registry = prometheus.NewRegistry()
	client = nil
	return registry
}

// IsEnabled reports whether InitRegistry has been called.
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return registry != nil
}

// GetRegistry returns the active registry, or nil when metrics are disabled.
func GetRegistry() *prometheus.Registry {
	mu.RLock()
	defer mu.RUnlock()
	return registry
}

// Reset disables metrics and drops the registry.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = nil
	client = nil
}

// activeClientMetrics returns the request collectors of the active registry,
// registering them on first use. Returns nil when metrics are disabled.
func activeClientMetrics() *clientMetrics {
	mu.Lock()
	defer mu.Unlock()
	if registry == nil {
		return nil
	}
	if client == nil {
		client = newClientMetrics(registry)
	}
	return client
}

// WriteTextfile writes all collected metrics to path in the Prometheus text
// format. The file is replaced atomically.
func WriteTextfile(path string) error {
	reg := GetRegistry()
	if reg == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
