package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hospital-queue-server/internal/models"
	"hospital-queue-server/internal/queue"
)

// Catalog is the GORM-backed doctor/department catalog. The engine refreshes
// from it before every booking, so catalog edits take effect immediately.
type Catalog struct {
	DB *gorm.DB
}

// NewCatalog creates a catalog over the given database.
func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{DB: db}
}

// DoctorsByDepartment implements queue.DoctorCatalog.
func (c *Catalog) DoctorsByDepartment(ctx context.Context, departmentID string) ([]queue.CatalogDoctor, error) {
	var department models.Department
	if err := c.DB.WithContext(ctx).First(&department, "id = ?", departmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, queue.ErrUnknownDepartment
		}
		return nil, err
	}

	var doctors []models.Doctor
	if err := c.DB.WithContext(ctx).Where("department_id = ?", departmentID).Find(&doctors).Error; err != nil {
		return nil, err
	}

	out := make([]queue.CatalogDoctor, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, queue.CatalogDoctor{
			ID:                     d.ID,
			DepartmentID:           d.DepartmentID,
			AvgConsultationMinutes: d.AvgConsultationMinutes,
			MaxPatientsPerDay:      d.MaxPatientsPerDay,
			Available:              d.IsAvailable,
		})
	}
	return out, nil
}
