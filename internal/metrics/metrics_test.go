package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestQueueMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewQueueMetrics(reg)

	m.ObserveBooked("dept-1", 35)
	m.ObserveBooked("dept-1", 10)
	m.ObserveCalled(22)
	m.ObserveCompleted()
	m.ObserveCancelled()
	m.SetQueueDepth(3, 1)

	assert.InDelta(t, 2, testutil.ToFloat64(m.bookingsTotal.WithLabelValues("dept-1")), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(m.completedTotal), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(m.cancelledTotal), 1e-9)
	assert.InDelta(t, 3, testutil.ToFloat64(m.waitingDepth), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(m.inProgress), 1e-9)
}

func TestQueueMetricsNilSafe(t *testing.T) {
	var m *QueueMetrics
	m.ObserveBooked("dept-1", 5)
	m.ObserveCalled(5)
	m.ObserveCompleted()
	m.ObserveCancelled()
	m.SetQueueDepth(0, 0)
}
