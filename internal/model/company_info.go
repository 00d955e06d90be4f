package model

import "time"

// CompanyInfo holds the single row of company details rendered on the
// about page. The table is expected to contain at most one record.
type CompanyInfo struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	CompanyName string    `gorm:"column:company_name;size:255;not null" json:"companyName"`
	History     string    `gorm:"type:text;not null" json:"history"`
	Mission     string    `gorm:"type:text;not null" json:"mission"`
	TeamInfo    string    `gorm:"column:team_info;type:text" json:"teamInfo"`
	Address     string    `gorm:"size:500" json:"address"`
	Phone       string    `gorm:"size:50" json:"phone"`
	Email       string    `gorm:"size:255" json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName keeps the table singular; the record is a singleton.
func (CompanyInfo) TableName() string { return "company_info" }
