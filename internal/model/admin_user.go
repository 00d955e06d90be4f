package model

import "time"

// AdminUser represents an administrator who can manage site content.
// The Password column always holds a bcrypt hash; hashing happens in the
// repository write path so no caller can persist a plaintext value.
type AdminUser struct {
	ID        uint64     `gorm:"primaryKey" json:"id"`
	Username  string     `gorm:"size:100;not null;uniqueIndex:idx_admin_users_username" json:"username"`
	Email     string     `gorm:"size:255;index:idx_admin_users_email" json:"email"`
	Password  string     `gorm:"size:255;not null" json:"-"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	Role      string     `gorm:"size:50;not null;default:admin" json:"role"`
	LastLogin *time.Time `gorm:"column:last_login" json:"lastLogin"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// TableName pins the table name GORM would otherwise pluralize differently.
func (AdminUser) TableName() string { return "admin_users" }
