package models

import (
	"gorm.io/gorm"
)

// Seed populates an empty database with the initial department and doctor
// roster. It is a no-op when departments already exist.
func Seed(db *gorm.DB, defaultDoctorPassword string) error {
	var count int64
	if err := db.Model(&Department{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	departments := []Department{
		{Name: "General Medicine", Description: "General health consultations"},
		{Name: "Cardiology", Description: "Heart and cardiovascular care"},
		{Name: "Orthopedics", Description: "Bone and joint treatments"},
		{Name: "Pediatrics", Description: "Child healthcare"},
		{Name: "Dermatology", Description: "Skin conditions"},
		{Name: "ENT", Description: "Ear, Nose, and Throat"},
	}
	if err := db.Create(&departments).Error; err != nil {
		return err
	}

	type seedDoctor struct {
		name           string
		email          string
		dept           int // index into departments
		specialization string
		avgMinutes     int
	}
	seedDoctors := []seedDoctor{
		{"Dr. Sarah Johnson", "sarah.johnson@hospital.local", 0, "Internal Medicine", 15},
		{"Dr. Michael Chen", "michael.chen@hospital.local", 0, "Family Medicine", 12},
		{"Dr. Emily Davis", "emily.davis@hospital.local", 1, "Interventional Cardiology", 20},
		{"Dr. Robert Wilson", "robert.wilson@hospital.local", 1, "Cardiac Electrophysiology", 18},
		{"Dr. Lisa Anderson", "lisa.anderson@hospital.local", 2, "Sports Medicine", 15},
		{"Dr. James Martinez", "james.martinez@hospital.local", 2, "Joint Replacement", 25},
		{"Dr. Jennifer Taylor", "jennifer.taylor@hospital.local", 3, "Neonatology", 20},
		{"Dr. David Brown", "david.brown@hospital.local", 3, "Pediatric Cardiology", 18},
		{"Dr. Amanda White", "amanda.white@hospital.local", 4, "Cosmetic Dermatology", 15},
		{"Dr. Christopher Lee", "christopher.lee@hospital.local", 5, "Rhinology", 15},
	}

	for _, sd := range seedDoctors {
		doctor := Doctor{
			Name:                   sd.name,
			Email:                  sd.email,
			DepartmentID:           departments[sd.dept].ID,
			Specialization:         sd.specialization,
			AvgConsultationMinutes: sd.avgMinutes,
			MaxPatientsPerDay:      40,
			IsAvailable:            true,
		}
		if err := doctor.SetPassword(defaultDoctorPassword); err != nil {
			return err
		}
		if err := db.Create(&doctor).Error; err != nil {
			return err
		}
	}

	return nil
}
