package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup results
const (
	LookupResultSuccess     = "success"
	LookupResultHTTPError   = "http_error"
	LookupResultTransport   = "transport_error"
	LookupResultDecodeError = "decode_error"
	LookupResultNotFound    = "not_found"
)

// EnrichmentMetrics records device lookup outcomes
type EnrichmentMetrics interface {
	ObserveLookup(result string, elapsed time.Duration)
}

type enrichmentMetrics struct {
	lookups        *prometheus.CounterVec
	lookupDuration *prometheus.HistogramVec
}

// NewEnrichmentMetrics registers the device lookup collectors
func NewEnrichmentMetrics(registry *prometheus.Registry) EnrichmentMetrics {
	lookups := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "phone_enrichment_lookups_total",
			Help: "The total number of device lookups by result",
		},
		[]string{"result"},
	)

	lookupDuration := promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "phone_enrichment_lookup_duration_seconds",
			Help:    "Device lookup latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"result"},
	)

	return &enrichmentMetrics{
		lookups:        lookups,
		lookupDuration: lookupDuration,
	}
}

func (m *enrichmentMetrics) ObserveLookup(result string, elapsed time.Duration) {
	m.lookups.WithLabelValues(result).Inc()
	m.lookupDuration.WithLabelValues(result).Observe(elapsed.Seconds())
}
