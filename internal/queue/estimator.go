package queue

import "time"

// EstimateInput is a snapshot of a doctor's state at estimation time.
type EstimateInput struct {
	QueueLength            int
	AvgConsultationMinutes int
	ServedToday            int
	MaxPerDay              int
	TimeOfDay              int // hour, 0-23
	DayOfWeek              time.Weekday
}

// LoadRatio is the fraction of the doctor's daily capacity already served.
func (in EstimateInput) LoadRatio() float64 {
	if in.MaxPerDay <= 0 {
		return 0
	}
	return float64(in.ServedToday) / float64(in.MaxPerDay)
}

// Estimator predicts the minutes until a newly queued patient is served.
// Implementations must be non-decreasing in QueueLength for fixed other
// inputs, so that a fitted regressor can replace the closed-form formula
// without changing selection behavior guarantees.
type Estimator interface {
	Estimate(in EstimateInput) float64
}

// FormulaEstimator is the closed-form wait predictor. The base estimate is
// the queued work (queue length x consultation minutes) inflated by the
// doctor's daily load; once the load ratio crosses OverloadThreshold the
// whole estimate is multiplied by OverloadPenalty to steer bookings away
// from near-saturated doctors.
type FormulaEstimator struct {
	LoadFactor        float64 // weight of the load ratio in the base estimate
	OverloadThreshold float64 // load ratio above which the penalty applies
	OverloadPenalty   float64 // multiplicative penalty past the threshold
	PeakStartHour     int     // inclusive
	PeakEndHour       int     // exclusive
	PeakFactor        float64 // multiplier during peak hours, 1.0 = neutral
}

// NewFormulaEstimator returns an estimator with the default tuning.
func NewFormulaEstimator() *FormulaEstimator {
	return &FormulaEstimator{
		LoadFactor:        2.0,
		OverloadThreshold: 0.8,
		OverloadPenalty:   1.3,
		PeakStartHour:     0,
		PeakEndHour:       0,
		PeakFactor:        1.0,
	}
}

// Estimate implements Estimator.
func (e *FormulaEstimator) Estimate(in EstimateInput) float64 {
	if in.QueueLength < 0 || in.AvgConsultationMinutes <= 0 {
		return 0
	}

	load := in.LoadRatio()
	estimate := float64(in.QueueLength) * float64(in.AvgConsultationMinutes) * (1 + e.LoadFactor*load)

	if load > e.OverloadThreshold {
		estimate *= e.OverloadPenalty
	}
	if e.PeakFactor != 1.0 && in.TimeOfDay >= e.PeakStartHour && in.TimeOfDay < e.PeakEndHour {
		estimate *= e.PeakFactor
	}

	if estimate < 0 {
		return 0
	}
	return estimate
}
