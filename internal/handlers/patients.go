package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hospital-queue-server/internal/models"
	"hospital-queue-server/internal/utils"
)

// PatientHandler handles patient registration and lookup.
type PatientHandler struct {
	DB *gorm.DB
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(db *gorm.DB) *PatientHandler {
	return &PatientHandler{DB: db}
}

// RegisterPatientRequest represents the request body for patient registration.
type RegisterPatientRequest struct {
	ID             string `json:"id"` // optional external ID (e.g. hospital card number)
	Name           string `json:"name" binding:"required"`
	Age            int    `json:"age" binding:"gte=0,lte=130"`
	Gender         string `json:"gender" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	MedicalHistory string `json:"medicalHistory"`
}

// RegisterPatient handles registering a new patient.
func (h *PatientHandler) RegisterPatient(c *gin.Context) {
	var req RegisterPatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if req.ID != "" {
		var existing models.Patient
		if err := h.DB.First(&existing, "id = ?", req.ID).Error; err == nil {
			utils.BadRequest(c, "Patient ID already exists")
			return
		} else if err != gorm.ErrRecordNotFound {
			utils.InternalServerError(c, "Database error: "+err.Error())
			return
		}
	}

	patient := models.Patient{
		BaseModel:      models.BaseModel{ID: req.ID},
		Name:           req.Name,
		Age:            req.Age,
		Gender:         req.Gender,
		Phone:          req.Phone,
		Email:          req.Email,
		MedicalHistory: req.MedicalHistory,
	}

	if err := h.DB.Create(&patient).Error; err != nil {
		utils.InternalServerError(c, "Failed to register patient: "+err.Error())
		return
	}

	utils.Created(c, "Patient registered successfully", patient)
}

// GetPatient handles fetching a patient by ID.
func (h *PatientHandler) GetPatient(c *gin.Context) {
	patientID := c.Param("id")

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", patientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Patient fetched successfully", patient)
}
