package model

import "time"

// Inquiry status values. New submissions start unread and move through
// read to resolved as admins triage them.
const (
	InquiryStatusUnread   = "unread"
	InquiryStatusRead     = "read"
	InquiryStatusResolved = "resolved"
)

// ValidInquiryStatus reports whether s is one of the allowed status values.
func ValidInquiryStatus(s string) bool {
	switch s {
	case InquiryStatusUnread, InquiryStatusRead, InquiryStatusResolved:
		return true
	}
	return false
}

// Inquiry is a contact-form submission from a site visitor.
type Inquiry struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;index:idx_inquiries_email" json:"email"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"size:20;not null;default:unread;index:idx_inquiries_status" json:"status"`
	CreatedAt time.Time `gorm:"index:idx_inquiries_created_at" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
