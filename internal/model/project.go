package model

import "time"

// Project represents a construction project in the portfolio. Images are
// loaded through the has-many association and replaced wholesale when a
// project is updated with a new image list.
type Project struct {
	ID             uint64         `gorm:"primaryKey" json:"id"`
	Title          string         `gorm:"size:255;not null" json:"title"`
	Description    string         `gorm:"type:text;not null" json:"description"`
	Category       string         `gorm:"size:100;not null;index:idx_projects_category" json:"category"`
	CompletionDate time.Time      `gorm:"column:completion_date;not null;index:idx_projects_completion_date" json:"completionDate"`
	Location       string         `gorm:"size:255;not null" json:"location"`
	Images         []ProjectImage `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"images"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
