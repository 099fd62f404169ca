package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hospital-queue-server/internal/models"
	"hospital-queue-server/internal/queue"
	"hospital-queue-server/internal/utils"
)

// DepartmentHandler handles department and doctor catalog views.
type DepartmentHandler struct {
	DB     *gorm.DB
	Engine *queue.Engine
}

// NewDepartmentHandler creates a new DepartmentHandler.
func NewDepartmentHandler(db *gorm.DB, engine *queue.Engine) *DepartmentHandler {
	return &DepartmentHandler{DB: db, Engine: engine}
}

// DepartmentSummary is a department with its doctor headcounts.
type DepartmentSummary struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	DoctorCount      int    `json:"doctorCount"`
	AvailableDoctors int    `json:"availableDoctors"`
}

// GetDepartments handles listing all departments with doctor counts.
func (h *DepartmentHandler) GetDepartments(c *gin.Context) {
	var departments []models.Department
	if err := h.DB.Preload("Doctors").Find(&departments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch departments: "+err.Error())
		return
	}

	summaries := make([]DepartmentSummary, 0, len(departments))
	for _, dept := range departments {
		summary := DepartmentSummary{
			ID:          dept.ID,
			Name:        dept.Name,
			Description: dept.Description,
			DoctorCount: len(dept.Doctors),
		}
		for _, doc := range dept.Doctors {
			if doc.IsAvailable {
				summary.AvailableDoctors++
			}
		}
		summaries = append(summaries, summary)
	}

	utils.Success(c, "Departments fetched successfully", summaries)
}

// DoctorSummary is a doctor with the live queue state attached.
type DoctorSummary struct {
	models.DoctorSanitized
	CurrentQueueLength int `json:"currentQueueLength"`
	ServedToday        int `json:"servedToday"`
}

// GetDepartmentDoctors handles listing the doctors of a department with
// their current load.
func (h *DepartmentHandler) GetDepartmentDoctors(c *gin.Context) {
	departmentID := c.Param("id")

	var department models.Department
	if err := h.DB.First(&department, "id = ?", departmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Department not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var doctors []models.Doctor
	if err := h.DB.Where("department_id = ?", departmentID).Find(&doctors).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch doctors: "+err.Error())
		return
	}

	summaries := make([]DoctorSummary, 0, len(doctors))
	for _, doc := range doctors {
		summary := DoctorSummary{DoctorSanitized: doc.Sanitize()}
		if load, ok := h.Engine.LoadOf(doc.ID); ok {
			summary.CurrentQueueLength = load.QueueLength
			summary.ServedToday = load.ServedToday
		}
		summaries = append(summaries, summary)
	}

	utils.Success(c, "Doctors fetched successfully", summaries)
}
