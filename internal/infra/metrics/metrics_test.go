package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrichmentMetrics_ObserveLookup(t *testing.T) {
	registry := NewRegistry()
	m, ok := NewEnrichmentMetrics(registry).(*enrichmentMetrics)
	require.True(t, ok)

	m.ObserveLookup(LookupResultSuccess, 10*time.Millisecond)
	m.ObserveLookup(LookupResultSuccess, 20*time.Millisecond)
	m.ObserveLookup(LookupResultHTTPError, time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.lookups.WithLabelValues(LookupResultSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.lookups.WithLabelValues(LookupResultHTTPError)), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.lookups.WithLabelValues(LookupResultDecodeError)), 0)
}

func TestHTTPMetrics_ObserveRequest(t *testing.T) {
	registry := NewRegistry()
	m, ok := NewHTTPMetrics(registry).(*httpMetrics)
	require.True(t, ok)

	m.ObserveRequest(http.MethodGet, "/api/phones/:id", http.StatusNotFound, time.Millisecond)

	assert.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/api/phones/:id", "404")), 0)
}

func TestNewRegistry_Gathers(t *testing.T) {
	registry := NewRegistry()
	NewEnrichmentMetrics(registry).ObserveLookup(LookupResultSuccess, time.Millisecond)

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "phone_enrichment_lookups_total")
	assert.Contains(t, names, "go_goroutines")
}
