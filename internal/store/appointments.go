package store

import (
	"context"

	"gorm.io/gorm"

	"hospital-queue-server/internal/models"
)

// Appointments persists appointment records for audit. The engine's
// in-memory ledger stays authoritative for queue order; these rows retain
// every booking-time field so wait statistics can be recomputed offline.
type Appointments struct {
	DB *gorm.DB
}

// NewAppointments creates an appointment store over the given database.
func NewAppointments(db *gorm.DB) *Appointments {
	return &Appointments{DB: db}
}

// Save inserts a freshly booked appointment.
func (a *Appointments) Save(ctx context.Context, appt *models.Appointment) error {
	return a.DB.WithContext(ctx).Create(appt).Error
}

// Update writes a status transition back to the audit record.
func (a *Appointments) Update(ctx context.Context, appt *models.Appointment) error {
	return a.DB.WithContext(ctx).Save(appt).Error
}
