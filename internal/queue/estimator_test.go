package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormulaEstimator_MonotoneInQueueLength(t *testing.T) {
	est := NewFormulaEstimator()

	prev := -1.0
	for qlen := 0; qlen <= 30; qlen++ {
		got := est.Estimate(EstimateInput{
			QueueLength:            qlen,
			AvgConsultationMinutes: 15,
			ServedToday:            10,
			MaxPerDay:              40,
		})
		assert.GreaterOrEqual(t, got, prev, "estimate must be non-decreasing in queue length")
		assert.GreaterOrEqual(t, got, 0.0)
		prev = got
	}
}

func TestFormulaEstimator_MonotoneInConsultationTime(t *testing.T) {
	est := NewFormulaEstimator()

	prev := 0.0
	for avg := 5; avg <= 40; avg += 5 {
		got := est.Estimate(EstimateInput{
			QueueLength:            4,
			AvgConsultationMinutes: avg,
			ServedToday:            0,
			MaxPerDay:              40,
		})
		assert.Greater(t, got, prev)
		prev = got
	}
}

func TestFormulaEstimator_OverloadThreshold(t *testing.T) {
	est := NewFormulaEstimator()

	below := est.Estimate(EstimateInput{
		QueueLength:            3,
		AvgConsultationMinutes: 15,
		ServedToday:            15, // load 0.75
		MaxPerDay:              20,
	})
	above := est.Estimate(EstimateInput{
		QueueLength:            3,
		AvgConsultationMinutes: 15,
		ServedToday:            17, // load 0.85
		MaxPerDay:              20,
	})
	assert.Greater(t, above, below, "crossing the overload threshold must strictly raise the estimate")
}

func TestFormulaEstimator_OverloadScenario(t *testing.T) {
	est := NewFormulaEstimator()

	// Doctor A: long queue but lightly loaded.
	waitA := est.Estimate(EstimateInput{
		QueueLength:            5,
		AvgConsultationMinutes: 10,
		ServedToday:            2,
		MaxPerDay:              20,
	})
	// Doctor B: short queue but at 90% of daily capacity.
	waitB := est.Estimate(EstimateInput{
		QueueLength:            1,
		AvgConsultationMinutes: 20,
		ServedToday:            18,
		MaxPerDay:              20,
	})
	assert.Greater(t, waitB, waitA, "the overloaded doctor must estimate worse despite the shorter raw queue")
}

func TestFormulaEstimator_PeakHours(t *testing.T) {
	est := NewFormulaEstimator()
	est.PeakStartHour = 9
	est.PeakEndHour = 12
	est.PeakFactor = 1.2

	in := EstimateInput{
		QueueLength:            4,
		AvgConsultationMinutes: 15,
		ServedToday:            5,
		MaxPerDay:              40,
		DayOfWeek:              time.Monday,
	}

	in.TimeOfDay = 10
	peak := est.Estimate(in)
	in.TimeOfDay = 14
	offPeak := est.Estimate(in)

	assert.InDelta(t, offPeak*1.2, peak, 1e-9)
}

func TestFormulaEstimator_DegenerateInputs(t *testing.T) {
	est := NewFormulaEstimator()

	assert.Zero(t, est.Estimate(EstimateInput{QueueLength: 0, AvgConsultationMinutes: 15, MaxPerDay: 20}))
	assert.Zero(t, est.Estimate(EstimateInput{QueueLength: -1, AvgConsultationMinutes: 15, MaxPerDay: 20}))
	assert.Zero(t, est.Estimate(EstimateInput{QueueLength: 5, AvgConsultationMinutes: 0, MaxPerDay: 20}))
	// MaxPerDay of zero must not divide by zero
	assert.NotPanics(t, func() {
		est.Estimate(EstimateInput{QueueLength: 5, AvgConsultationMinutes: 15, MaxPerDay: 0})
	})
}
