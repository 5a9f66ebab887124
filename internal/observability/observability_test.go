package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewMetricsForTesting(t *testing.T) {
	m1 := NewMetricsForTesting()
	m2 := NewMetricsForTesting()

	m1.Normalizations.WithLabelValues("converted", "ITS-27").Inc()
	m1.MessagesConsumed.Add(3)

	assert.InDelta(t, 1.0, testutil.ToFloat64(m1.Normalizations.WithLabelValues("converted", "ITS-27")), 0)
	assert.InDelta(t, 3.0, testutil.ToFloat64(m1.MessagesConsumed), 0)
	assert.InDelta(t, 0.0, testutil.ToFloat64(m2.MessagesConsumed), 0)
}

func TestNewMetricsForTesting_CollectorsRegistered(t *testing.T) {
	m := NewMetricsForTesting()
	m.CitationCache.WithLabelValues("hit").Inc()
	m.CitationCache.WithLabelValues("miss").Inc()
	m.NormalizeRequests.WithLabelValues("ok").Add(2)

	assert.Equal(t, 2, testutil.CollectAndCount(m.CitationCache))
	assert.InDelta(t, 2.0, testutil.ToFloat64(m.NormalizeRequests.WithLabelValues("ok")), 0)
	assert.Len(t, m.collectors(), 15)
}
