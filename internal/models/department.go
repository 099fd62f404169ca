package models

// Department groups doctors by medical specialty.
type Department struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// Relations
	Doctors []Doctor `gorm:"foreignKey:DepartmentID" json:"-"`
}
