package model

import "time"

// Media is the metadata record for an uploaded file. Filename is the
// storage-generated unique name on disk, OriginalName the client-provided
// one, and URL the public path under /uploads the frontend references.
type Media struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Filename     string    `gorm:"size:255;not null;index:idx_media_filename" json:"filename"`
	OriginalName string    `gorm:"column:original_name;size:255;not null" json:"originalName"`
	MimeType     string    `gorm:"column:mime_type;size:100;not null;index:idx_media_mime_type" json:"mimeType"`
	Size         int64     `gorm:"not null" json:"size"`
	URL          string    `gorm:"column:url;size:500;not null" json:"url"`
	UploadedAt   time.Time `gorm:"column:uploaded_at;not null;index:idx_media_uploaded_at" json:"uploadedAt"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName pins the table name; gorm would otherwise pluralize "media".
func (Media) TableName() string { return "media" }
