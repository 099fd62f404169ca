package queue

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"hospital-queue-server/internal/metrics"
	"hospital-queue-server/internal/models"
)

// Patient is the directory's view of a patient, the only attributes the
// engine needs for scoring.
type Patient struct {
	ID             string
	Age            int
	MedicalHistory string
}

// PatientDirectory resolves patients by ID. Implementations return
// ErrUnknownPatient for missing patients.
type PatientDirectory interface {
	PatientByID(ctx context.Context, id string) (Patient, error)
}

// DoctorCatalog lists the doctors of a department. It is consulted before
// every booking so catalog edits take effect immediately. Implementations
// return ErrUnknownDepartment for missing departments.
type DoctorCatalog interface {
	DoctorsByDepartment(ctx context.Context, departmentID string) ([]CatalogDoctor, error)
}

// Stats is the dashboard aggregate over today's queue activity.
type Stats struct {
	WaitingCount        int     `json:"waitingCount"`
	InProgressCount     int     `json:"inProgressCount"`
	CompletedTodayCount int     `json:"completedTodayCount"`
	AverageWaitMinutes  float64 `json:"averageWaitMinutes"`
}

// Options configures an Engine. Zero values select working defaults.
type Options struct {
	Scorer    *PriorityScorer
	Estimator Estimator
	Tokens    *TokenIssuer
	Metrics   *metrics.QueueMetrics
	Now       func() time.Time
}

// Engine is the queue ledger: the authoritative, lock-guarded record of
// per-doctor queues and doctor load. Selection and enqueue happen inside a
// single critical section so two concurrent bookings can never both land on
// the same least-loaded doctor. The engine does no I/O of its own; the
// patient directory and doctor catalog are consulted before the lock is
// taken, and persistence of the returned records belongs to the caller.
type Engine struct {
	patients PatientDirectory
	catalog  DoctorCatalog
	scorer   *PriorityScorer
	selector *Selector
	tokens   *TokenIssuer
	metrics  *metrics.QueueMetrics
	now      func() time.Time

	mu           sync.Mutex
	day          string
	loads        *loadTracker
	waiting      map[string][]*models.Appointment // doctorID -> ordered waiting queue
	inProgress   map[string]*models.Appointment   // doctorID -> at most one
	appointments map[string]*models.Appointment

	waitingTotal   int
	completedToday int
	waitMinsToday  int
}

// NewEngine creates an engine over the given collaborators.
func NewEngine(patients PatientDirectory, catalog DoctorCatalog, opts Options) *Engine {
	if opts.Scorer == nil {
		opts.Scorer = NewPriorityScorer(nil)
	}
	if opts.Tokens == nil {
		opts.Tokens = NewTokenIssuer("")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Engine{
		patients:     patients,
		catalog:      catalog,
		scorer:       opts.Scorer,
		selector:     NewSelector(opts.Estimator),
		tokens:       opts.Tokens,
		metrics:      opts.Metrics,
		now:          opts.Now,
		loads:        newLoadTracker(),
		waiting:      make(map[string][]*models.Appointment),
		inProgress:   make(map[string]*models.Appointment),
		appointments: make(map[string]*models.Appointment),
	}
}

// Book assigns the patient to the department doctor with the lowest
// predicted wait, issues a token and enqueues the appointment, all as one
// atomic step. The returned record is a copy; persisting it is the caller's
// concern.
func (e *Engine) Book(ctx context.Context, patientID, departmentID string) (models.Appointment, error) {
	patient, err := e.patients.PatientByID(ctx, patientID)
	if err != nil {
		return models.Appointment{}, err
	}
	if patient.Age < 0 || patient.Age > 150 {
		return models.Appointment{}, fmt.Errorf("patient %s has invalid age %d", patientID, patient.Age)
	}

	doctors, err := e.catalog.DoctorsByDepartment(ctx, departmentID)
	if err != nil {
		return models.Appointment{}, err
	}
	if len(doctors) == 0 {
		return models.Appointment{}, ErrUnknownDepartment
	}

	priority := e.scorer.Score(patient.Age, patient.MedicalHistory)
	now := e.now()

	e.mu.Lock()
	e.rollDay(now)
	e.loads.sync(doctors)

	candidates := make([]DoctorLoad, 0, len(doctors))
	for _, d := range doctors {
		if load, ok := e.loads.get(d.ID); ok {
			candidates = append(candidates, *load)
		}
	}

	selection, err := e.selector.Assign(candidates, priority, now)
	if err != nil {
		e.mu.Unlock()
		return models.Appointment{}, err
	}

	appt := &models.Appointment{
		BaseModel: models.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Token:             e.tokens.Next(now),
		PatientID:         patientID,
		DoctorID:          selection.DoctorID,
		DepartmentID:      departmentID,
		Status:            models.StatusWaiting,
		PriorityScore:     priority,
		EstimatedWaitMins: int(math.Round(selection.EstimatedWait)),
		QueuePosition:     selection.QueuePosition,
	}

	e.enqueue(appt)
	e.loads.incQueue(selection.DoctorID)
	e.appointments[appt.ID] = appt
	e.waitingTotal++
	waiting, busy := e.waitingTotal, len(e.inProgress)
	e.mu.Unlock()

	e.metrics.ObserveBooked(departmentID, selection.EstimatedWait)
	e.metrics.SetQueueDepth(waiting, busy)
	return *appt, nil
}

// CallNext pops the highest-priority waiting appointment for the doctor and
// marks it in progress. A doctor serves at most one patient at a time.
func (e *Engine) CallNext(doctorID string) (models.Appointment, error) {
	now := e.now()

	e.mu.Lock()
	e.rollDay(now)

	if e.inProgress[doctorID] != nil {
		e.mu.Unlock()
		return models.Appointment{}, ErrAlreadyInProgress
	}
	q := e.waiting[doctorID]
	if len(q) == 0 {
		e.mu.Unlock()
		return models.Appointment{}, ErrEmptyQueue
	}

	appt := q[0]
	e.waiting[doctorID] = q[1:]
	appt.Status = models.StatusInProgress
	appt.UpdatedAt = now
	calledAt := now
	appt.CalledAt = &calledAt
	waitMins := int(now.Sub(appt.CreatedAt).Minutes())
	if waitMins < 0 {
		waitMins = 0
	}
	appt.ActualWaitMins = &waitMins

	e.inProgress[doctorID] = appt
	e.loads.decQueue(doctorID)
	e.waitingTotal--
	waiting, busy := e.waitingTotal, len(e.inProgress)
	e.mu.Unlock()

	e.metrics.ObserveCalled(float64(waitMins))
	e.metrics.SetQueueDepth(waiting, busy)
	return *appt, nil
}

// Complete finishes an in-progress appointment and counts the consultation
// against the doctor's daily capacity. Completed records are immutable:
// completing twice fails with ErrInvalidState and served counts stay put.
func (e *Engine) Complete(appointmentID string) (models.Appointment, error) {
	now := e.now()

	e.mu.Lock()
	e.rollDay(now)

	appt, ok := e.appointments[appointmentID]
	if !ok {
		e.mu.Unlock()
		return models.Appointment{}, ErrNotFound
	}
	if appt.Status != models.StatusInProgress {
		e.mu.Unlock()
		return models.Appointment{}, fmt.Errorf("%w: cannot complete appointment in status %q", ErrInvalidState, appt.Status)
	}

	appt.Status = models.StatusCompleted
	appt.UpdatedAt = now
	completedAt := now
	appt.CompletedAt = &completedAt

	delete(e.inProgress, appt.DoctorID)
	e.loads.incServed(appt.DoctorID)
	e.completedToday++
	if appt.ActualWaitMins != nil {
		e.waitMinsToday += *appt.ActualWaitMins
	}
	waiting, busy := e.waitingTotal, len(e.inProgress)
	e.mu.Unlock()

	e.metrics.ObserveCompleted()
	e.metrics.SetQueueDepth(waiting, busy)
	return *appt, nil
}

// Cancel removes a waiting appointment from its doctor's queue. Only
// waiting appointments can be cancelled.
func (e *Engine) Cancel(appointmentID string) (models.Appointment, error) {
	now := e.now()

	e.mu.Lock()
	e.rollDay(now)

	appt, ok := e.appointments[appointmentID]
	if !ok {
		e.mu.Unlock()
		return models.Appointment{}, ErrNotFound
	}
	if appt.Status != models.StatusWaiting {
		e.mu.Unlock()
		return models.Appointment{}, fmt.Errorf("%w: cannot cancel appointment in status %q", ErrInvalidState, appt.Status)
	}

	appt.Status = models.StatusCancelled
	appt.UpdatedAt = now
	e.removeWaiting(appt)
	e.loads.decQueue(appt.DoctorID)
	e.waitingTotal--
	waiting, busy := e.waitingTotal, len(e.inProgress)
	e.mu.Unlock()

	e.metrics.ObserveCancelled()
	e.metrics.SetQueueDepth(waiting, busy)
	return *appt, nil
}

// QueueSnapshot returns the active appointments for one doctor, or for all
// doctors when doctorID is empty: the in-progress appointment first, then
// the waiting queue in service order. The result is a consistent copy taken
// under the lock; positions shown are booking-time snapshots.
func (e *Engine) QueueSnapshot(doctorID string) []models.Appointment {
	e.mu.Lock()
	defer e.mu.Unlock()

	if doctorID != "" {
		return e.snapshotDoctor(doctorID)
	}

	ids := make([]string, 0, len(e.loads.doctors))
	for id := range e.loads.doctors {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []models.Appointment
	for _, id := range ids {
		out = append(out, e.snapshotDoctor(id)...)
	}
	return out
}

// DashboardStats returns today's aggregate queue figures.
func (e *Engine) DashboardStats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	stats := Stats{
		WaitingCount:        e.waitingTotal,
		InProgressCount:     len(e.inProgress),
		CompletedTodayCount: e.completedToday,
	}
	if e.completedToday > 0 {
		stats.AverageWaitMinutes = float64(e.waitMinsToday) / float64(e.completedToday)
	}
	return stats
}

// LoadOf exposes a doctor's live load for read-only display.
func (e *Engine) LoadOf(doctorID string) (DoctorLoad, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	load, ok := e.loads.get(doctorID)
	if !ok {
		return DoctorLoad{}, false
	}
	return *load, true
}

func (e *Engine) snapshotDoctor(doctorID string) []models.Appointment {
	var out []models.Appointment
	if appt := e.inProgress[doctorID]; appt != nil {
		out = append(out, *appt)
	}
	for _, appt := range e.waiting[doctorID] {
		out = append(out, *appt)
	}
	return out
}

// enqueue inserts into the doctor's waiting queue keeping the service
// order: priority descending, then arrival (token order) ascending.
func (e *Engine) enqueue(appt *models.Appointment) {
	q := e.waiting[appt.DoctorID]
	idx := sort.Search(len(q), func(i int) bool {
		if q[i].PriorityScore != appt.PriorityScore {
			return q[i].PriorityScore < appt.PriorityScore
		}
		return q[i].Token > appt.Token
	})
	q = append(q, nil)
	copy(q[idx+1:], q[idx:])
	q[idx] = appt
	e.waiting[appt.DoctorID] = q
}

func (e *Engine) removeWaiting(appt *models.Appointment) {
	q := e.waiting[appt.DoctorID]
	for i, a := range q {
		if a.ID == appt.ID {
			e.waiting[appt.DoctorID] = append(q[:i], q[i+1:]...)
			return
		}
	}
}

// rollDay resets daily counters when the calendar day changes. Must be
// called with the lock held.
func (e *Engine) rollDay(now time.Time) {
	day := now.Format(tokenDayFormat)
	if day == e.day {
		return
	}
	e.day = day
	e.loads.resetDay()
	e.completedToday = 0
	e.waitMinsToday = 0
}
