package queue

import "errors"

// Engine errors. All are terminal values surfaced to the caller; the engine
// never retries on its own.
var (
	// ErrNotFound indicates an unknown doctor or appointment reference.
	ErrNotFound = errors.New("not found")

	// ErrUnknownPatient indicates the patient directory has no such patient.
	ErrUnknownPatient = errors.New("patient not found")

	// ErrUnknownDepartment indicates the catalog has no doctors for the department.
	ErrUnknownDepartment = errors.New("unknown department")

	// ErrNoCapacity indicates no doctor in the department can take another patient.
	ErrNoCapacity = errors.New("no doctor with remaining capacity")

	// ErrEmptyQueue indicates the doctor has no waiting appointments to call.
	ErrEmptyQueue = errors.New("no waiting appointments")

	// ErrAlreadyInProgress indicates the doctor is still with a patient.
	ErrAlreadyInProgress = errors.New("doctor already has an appointment in progress")

	// ErrInvalidState indicates an illegal appointment status transition.
	ErrInvalidState = errors.New("invalid appointment state")
)
