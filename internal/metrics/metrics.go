package metrics

import "github.com/prometheus/client_golang/prometheus"

// QueueMetrics exposes counters/gauges for queue engine activity.
// All methods are safe on a nil receiver so the engine can run unmetered.
type QueueMetrics struct {
	bookingsTotal  *prometheus.CounterVec
	completedTotal prometheus.Counter
	cancelledTotal prometheus.Counter
	waitingDepth   prometheus.Gauge
	inProgress     prometheus.Gauge
	estimatedWait  prometheus.Histogram
	actualWait     prometheus.Histogram
}

func NewQueueMetrics(reg prometheus.Registerer) *QueueMetrics {
	m := &QueueMetrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hospital",
			Subsystem: "queue",
			Name:      "bookings_total",
			Help:      "Total appointments booked",
		}, []string{"department"}),
		completedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hospital",
			Subsystem: "queue",
			Name:      "completed_total",
			Help:      "Total appointments completed",
		}),
		cancelledTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hospital",
			Subsystem: "queue",
			Name:      "cancelled_total",
			Help:      "Total appointments cancelled",
		}),
		waitingDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hospital",
			Subsystem: "queue",
			Name:      "waiting_depth",
			Help:      "Appointments currently waiting across all doctors",
		}),
		inProgress: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hospital",
			Subsystem: "queue",
			Name:      "in_progress",
			Help:      "Appointments currently in progress",
		}),
		estimatedWait: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hospital",
			Subsystem: "queue",
			Name:      "estimated_wait_minutes",
			Help:      "Wait time predicted at booking",
			Buckets:   []float64{5, 15, 30, 60, 120, 240},
		}),
		actualWait: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hospital",
			Subsystem: "queue",
			Name:      "actual_wait_minutes",
			Help:      "Wait time measured when a patient is called",
			Buckets:   []float64{5, 15, 30, 60, 120, 240},
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingsTotal, m.completedTotal, m.cancelledTotal,
		m.waitingDepth, m.inProgress, m.estimatedWait, m.actualWait)
	return m
}

// ObserveBooked records one booking and its predicted wait.
func (m *QueueMetrics) ObserveBooked(department string, estimatedWaitMins float64) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(department).Inc()
	m.estimatedWait.Observe(estimatedWaitMins)
}

// ObserveCalled records the measured wait of a called patient.
func (m *QueueMetrics) ObserveCalled(actualWaitMins float64) {
	if m == nil {
		return
	}
	m.actualWait.Observe(actualWaitMins)
}

// ObserveCompleted records one completed appointment.
func (m *QueueMetrics) ObserveCompleted() {
	if m == nil {
		return
	}
	m.completedTotal.Inc()
}

// ObserveCancelled records one cancelled appointment.
func (m *QueueMetrics) ObserveCancelled() {
	if m == nil {
		return
	}
	m.cancelledTotal.Inc()
}

// SetQueueDepth publishes the current waiting/in-progress totals.
func (m *QueueMetrics) SetQueueDepth(waiting, inProgress int) {
	if m == nil {
		return
	}
	m.waitingDepth.Set(float64(waiting))
	m.inProgress.Set(float64(inProgress))
}
