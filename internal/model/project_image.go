package model

import "time"

// ProjectImage is an image attached to a project. Src holds the public URL
// of the underlying media file; media deletion is blocked while any
// project image still points at the same URL.
type ProjectImage struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	ProjectID uint64    `gorm:"column:project_id;not null;index:idx_project_images_project_id" json:"projectId"`
	Src       string    `gorm:"size:500;not null" json:"src"`
	Alt       string    `gorm:"size:255" json:"alt"`
	Thumbnail string    `gorm:"size:500" json:"thumbnail"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
