package models

// Prescription holds the outcome of a consultation, attached to the
// appointment it was issued for. One prescription per appointment.
type Prescription struct {
	BaseModel
	AppointmentID string `gorm:"size:36;uniqueIndex;not null" json:"appointmentId"`
	Diagnosis     string `gorm:"type:text;not null" json:"diagnosis"`
	Medications   string `gorm:"type:text;not null" json:"medications"`
	Instructions  string `gorm:"type:text" json:"instructions"`
	Notes         string `gorm:"type:text" json:"notes"`

	// Relations
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"-"`
}
