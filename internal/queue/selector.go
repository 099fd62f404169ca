package queue

import (
	"time"
)

// Selection is the outcome of a doctor assignment.
type Selection struct {
	DoctorID      string
	EstimatedWait float64
	QueuePosition int // queue length before enqueue, plus one; display only
}

// Selector picks the doctor expected to serve a new patient fastest.
// It has no side effects; the engine performs the enqueue atomically with
// the selection under its own lock.
type Selector struct {
	estimator Estimator
}

// NewSelector creates a selector backed by the given estimator.
func NewSelector(estimator Estimator) *Selector {
	if estimator == nil {
		estimator = NewFormulaEstimator()
	}
	return &Selector{estimator: estimator}
}

// Assign evaluates the candidate doctors of a department and returns the one
// with the minimum predicted wait. Ties prefer the shorter queue, then the
// lexicographically smallest doctor ID, so the outcome is reproducible.
//
// Candidates must be the full doctor set of the department: an empty slice
// means the department is unknown, while a non-empty slice with no eligible
// doctor means the department is out of capacity.
func (s *Selector) Assign(candidates []DoctorLoad, priority float64, now time.Time) (Selection, error) {
	_ = priority // score drives queue order, not doctor choice

	if len(candidates) == 0 {
		return Selection{}, ErrUnknownDepartment
	}

	var (
		best     DoctorLoad
		bestWait float64
		found    bool
	)
	for _, cand := range candidates {
		if !eligible(cand) {
			continue
		}
		wait := s.estimator.Estimate(EstimateInput{
			QueueLength:            cand.QueueLength,
			AvgConsultationMinutes: cand.AvgConsultationMinutes,
			ServedToday:            cand.ServedToday,
			MaxPerDay:              cand.MaxPerDay,
			TimeOfDay:              now.Hour(),
			DayOfWeek:              now.Weekday(),
		})
		if !found || wait < bestWait || (wait == bestWait && tieBreak(cand, best)) {
			best = cand
			bestWait = wait
			found = true
		}
	}
	if !found {
		return Selection{}, ErrNoCapacity
	}

	return Selection{
		DoctorID:      best.DoctorID,
		EstimatedWait: bestWait,
		QueuePosition: best.QueueLength + 1,
	}, nil
}

// eligible reports whether the doctor can accept one more patient without
// breaking the capacity invariant queue_length <= max_per_day - served_today.
func eligible(l DoctorLoad) bool {
	return l.Available && l.RemainingCapacity() > 0
}

// tieBreak reports whether cand beats the current best at equal wait.
func tieBreak(cand, best DoctorLoad) bool {
	if cand.QueueLength != best.QueueLength {
		return cand.QueueLength < best.QueueLength
	}
	return cand.DoctorID < best.DoctorID
}
