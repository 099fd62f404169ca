package models

import (
	"golang.org/x/crypto/bcrypt"
)

// Doctor represents a doctor in the catalog. The mutable queue state
// (current queue length, patients served today) is owned by the queue
// engine, not by this table.
type Doctor struct {
	BaseModel
	Name                   string `gorm:"size:100;not null" json:"name"`
	Email                  string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password               string `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	DepartmentID           string `gorm:"size:36;index;not null" json:"departmentId"`
	Specialization         string `gorm:"size:100" json:"specialization"`
	AvgConsultationMinutes int    `gorm:"default:15" json:"avgConsultationMinutes"`
	MaxPatientsPerDay      int    `gorm:"default:40" json:"maxPatientsPerDay"`
	IsAvailable            bool   `gorm:"default:true" json:"isAvailable"`

	// Relations (not always preloaded)
	Department   Department    `gorm:"foreignKey:DepartmentID" json:"-"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"-"`
}

// DoctorSanitized represents the doctor data that is safe to send in API responses.
type DoctorSanitized struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Email                  string `json:"email"`
	DepartmentID           string `json:"departmentId"`
	Specialization         string `json:"specialization"`
	AvgConsultationMinutes int    `json:"avgConsultationMinutes"`
	MaxPatientsPerDay      int    `json:"maxPatientsPerDay"`
	IsAvailable            bool   `json:"isAvailable"`
}

// SetPassword hashes a password and sets it on the doctor
func (d *Doctor) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	d.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the doctor's hashed password
func (d *Doctor) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(d.Password), []byte(password))
	return err == nil
}

// Sanitize creates a DoctorSanitized struct from a Doctor model, excluding sensitive data.
func (d *Doctor) Sanitize() DoctorSanitized {
	return DoctorSanitized{
		ID:                     d.ID,
		Name:                   d.Name,
		Email:                  d.Email,
		DepartmentID:           d.DepartmentID,
		Specialization:         d.Specialization,
		AvgConsultationMinutes: d.AvgConsultationMinutes,
		MaxPatientsPerDay:      d.MaxPatientsPerDay,
		IsAvailable:            d.IsAvailable,
	}
}
