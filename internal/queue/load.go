package queue

// CatalogDoctor is the static doctor record the catalog supplies. The
// catalog is refreshed before every booking.
type CatalogDoctor struct {
	ID                     string
	DepartmentID           string
	AvgConsultationMinutes int
	MaxPatientsPerDay      int
	Available              bool
}

// DoctorLoad is the live view of one doctor: the catalog's static fields
// plus the queue state the engine maintains.
type DoctorLoad struct {
	DoctorID               string
	DepartmentID           string
	AvgConsultationMinutes int
	MaxPerDay              int
	Available              bool
	QueueLength            int
	ServedToday            int
}

// RemainingCapacity is the number of patients the doctor can still accept
// today, counting both queued and served.
func (l DoctorLoad) RemainingCapacity() int {
	remaining := l.MaxPerDay - l.ServedToday - l.QueueLength
	if remaining < 0 {
		return 0
	}
	return remaining
}

// loadTracker holds per-doctor load state. It carries no lock of its own;
// every access happens inside the engine's critical section.
type loadTracker struct {
	doctors map[string]*DoctorLoad
}

func newLoadTracker() *loadTracker {
	return &loadTracker{doctors: make(map[string]*DoctorLoad)}
}

// sync folds a fresh catalog snapshot into the tracker, updating static
// fields while preserving queue lengths and served counts.
func (t *loadTracker) sync(docs []CatalogDoctor) {
	for _, d := range docs {
		load, ok := t.doctors[d.ID]
		if !ok {
			load = &DoctorLoad{DoctorID: d.ID}
			t.doctors[d.ID] = load
		}
		load.DepartmentID = d.DepartmentID
		load.AvgConsultationMinutes = d.AvgConsultationMinutes
		load.MaxPerDay = d.MaxPatientsPerDay
		load.Available = d.Available
	}
}

func (t *loadTracker) get(doctorID string) (*DoctorLoad, bool) {
	load, ok := t.doctors[doctorID]
	return load, ok
}

func (t *loadTracker) incQueue(doctorID string) {
	if load, ok := t.doctors[doctorID]; ok {
		load.QueueLength++
	}
}

func (t *loadTracker) decQueue(doctorID string) {
	if load, ok := t.doctors[doctorID]; ok && load.QueueLength > 0 {
		load.QueueLength--
	}
}

func (t *loadTracker) incServed(doctorID string) {
	if load, ok := t.doctors[doctorID]; ok {
		load.ServedToday++
	}
}

// resetDay clears the daily served counters at the day boundary.
func (t *loadTracker) resetDay() {
	for _, load := range t.doctors {
		load.ServedToday = 0
	}
}
