package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dbgeneral/construction-api/internal/model"
)

// CompanyRepo persists the single company-info record.
type CompanyRepo struct{ db *gorm.DB }

func NewCompanyRepo(db *gorm.DB) *CompanyRepo { return &CompanyRepo{db: db} }

// Get returns the company record, or ErrNotFound when none exists yet.
func (r *CompanyRepo) Get(ctx context.Context) (model.CompanyInfo, error) {
	var info model.CompanyInfo
	err := r.db.WithContext(ctx).First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return info, ErrNotFound
	}
	return info, err
}

// Upsert updates the existing record or creates the first one. The
// table holds at most one row.
func (r *CompanyRepo) Upsert(ctx context.Context, info *model.CompanyInfo) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.CompanyInfo
		err := tx.First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(info).Error
		}
		if err != nil {
			return err
		}
		info.ID = existing.ID
		info.CreatedAt = existing.CreatedAt
		return tx.Save(info).Error
	})
}
