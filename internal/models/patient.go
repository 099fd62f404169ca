package models

// Patient represents a registered patient.
type Patient struct {
	BaseModel
	Name           string `gorm:"size:100;not null" json:"name"`
	Age            int    `gorm:"not null" json:"age"`
	Gender         string `gorm:"size:10;not null" json:"gender"`
	Phone          string `gorm:"size:15;not null" json:"phone"`
	Email          string `gorm:"size:255" json:"email,omitempty"`
	MedicalHistory string `gorm:"type:text" json:"medicalHistory,omitempty"`

	// Relations (not always preloaded)
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"-"`
}
