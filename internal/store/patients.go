package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hospital-queue-server/internal/models"
	"hospital-queue-server/internal/queue"
)

// Patients is the GORM-backed patient directory the engine consults.
type Patients struct {
	DB *gorm.DB
}

// NewPatients creates a patient directory over the given database.
func NewPatients(db *gorm.DB) *Patients {
	return &Patients{DB: db}
}

// PatientByID implements queue.PatientDirectory.
func (p *Patients) PatientByID(ctx context.Context, id string) (queue.Patient, error) {
	var patient models.Patient
	if err := p.DB.WithContext(ctx).First(&patient, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return queue.Patient{}, queue.ErrUnknownPatient
		}
		return queue.Patient{}, err
	}
	return queue.Patient{
		ID:             patient.ID,
		Age:            patient.Age,
		MedicalHistory: patient.MedicalHistory,
	}, nil
}
