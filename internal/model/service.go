package model

import "time"

// Service is a construction service offered by the company. Icon is the
// name of the frontend icon rendered on the services page.
type Service struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null;index:idx_services_title" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Icon        string    `gorm:"size:255;not null" json:"icon"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
