package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hospital-queue-server/internal/middleware"
	"hospital-queue-server/internal/models"
	"hospital-queue-server/internal/utils"
)

// PrescriptionHandler handles prescription storage per appointment.
type PrescriptionHandler struct {
	DB *gorm.DB
}

// NewPrescriptionHandler creates a new PrescriptionHandler.
func NewPrescriptionHandler(db *gorm.DB) *PrescriptionHandler {
	return &PrescriptionHandler{DB: db}
}

// SavePrescriptionRequest represents the request body for saving a prescription.
type SavePrescriptionRequest struct {
	Diagnosis    string `json:"diagnosis" binding:"required"`
	Medications  string `json:"medications" binding:"required"`
	Instructions string `json:"instructions"`
	Notes        string `json:"notes"`
}

// SavePrescription handles creating or replacing the prescription for an
// appointment. Only the doctor the appointment is assigned to may write it.
func (h *PrescriptionHandler) SavePrescription(c *gin.Context) {
	appointmentID := c.Param("id")

	var req SavePrescriptionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	doctorID, _ := middleware.GetDoctorIDFromContext(c)
	if doctorID != appointment.DoctorID {
		utils.Forbidden(c, "Only the assigned doctor can write this prescription")
		return
	}

	// Replace any existing prescription for this appointment
	if err := h.DB.Where("appointment_id = ?", appointmentID).Delete(&models.Prescription{}).Error; err != nil {
		utils.InternalServerError(c, "Failed to replace prescription: "+err.Error())
		return
	}

	prescription := models.Prescription{
		AppointmentID: appointmentID,
		Diagnosis:     req.Diagnosis,
		Medications:   req.Medications,
		Instructions:  req.Instructions,
		Notes:         req.Notes,
	}

	if err := h.DB.Create(&prescription).Error; err != nil {
		utils.InternalServerError(c, "Failed to save prescription: "+err.Error())
		return
	}

	utils.Created(c, "Prescription saved", prescription)
}

// GetPrescription handles fetching the prescription for an appointment.
func (h *PrescriptionHandler) GetPrescription(c *gin.Context) {
	appointmentID := c.Param("id")

	var prescription models.Prescription
	if err := h.DB.First(&prescription, "appointment_id = ?", appointmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Prescription not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Prescription fetched successfully", prescription)
}
