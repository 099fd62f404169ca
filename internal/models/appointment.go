package models

import (
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusWaiting    AppointmentStatus = "waiting"
	StatusInProgress AppointmentStatus = "in-progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
)

// Appointment represents a queue entry issued at booking time. Records are
// immutable once completed or cancelled and are retained for audit and for
// recomputing average wait statistics.
type Appointment struct {
	BaseModel
	Token             string            `gorm:"uniqueIndex;size:20;not null" json:"token"`
	PatientID         string            `gorm:"size:36;index;not null" json:"patientId"`
	DoctorID          string            `gorm:"size:36;index;not null" json:"doctorId"`
	DepartmentID      string            `gorm:"size:36;index;not null" json:"departmentId"`
	Status            AppointmentStatus `gorm:"size:20;default:'waiting'" json:"status"`
	PriorityScore     float64           `json:"priorityScore"`
	EstimatedWaitMins int               `json:"estimatedWaitMins"`
	ActualWaitMins    *int              `json:"actualWaitMins,omitempty"`
	QueuePosition     int               `json:"queuePosition"` // snapshot at booking, display only
	CalledAt          *time.Time        `json:"calledAt,omitempty"`
	CompletedAt       *time.Time        `json:"completedAt,omitempty"`

	// Relations
	Patient    Patient    `gorm:"foreignKey:PatientID" json:"-"`
	Doctor     Doctor     `gorm:"foreignKey:DoctorID" json:"-"`
	Department Department `gorm:"foreignKey:DepartmentID" json:"-"`
}
