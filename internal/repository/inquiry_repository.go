package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dbgeneral/construction-api/internal/model"
)

// InquiryRepo persists contact-form submissions.
type InquiryRepo struct{ db *gorm.DB }

func NewInquiryRepo(db *gorm.DB) *InquiryRepo { return &InquiryRepo{db: db} }

// List returns inquiries newest first, optionally filtered by status.
// Unknown status values are ignored rather than rejected, matching the
// permissive query handling of the admin dashboard.
func (r *InquiryRepo) List(ctx context.Context, status string) ([]model.Inquiry, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if model.ValidInquiryStatus(status) {
		q = q.Where("status = ?", status)
	}
	var inquiries []model.Inquiry
	err := q.Find(&inquiries).Error
	return inquiries, err
}

func (r *InquiryRepo) GetByID(ctx context.Context, id uint64) (model.Inquiry, error) {
	var in model.Inquiry
	err := r.db.WithContext(ctx).First(&in, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return in, ErrNotFound
	}
	return in, err
}

func (r *InquiryRepo) Create(ctx context.Context, in *model.Inquiry) error {
	if in.Status == "" {
		in.Status = model.InquiryStatusUnread
	}
	return r.db.WithContext(ctx).Create(in).Error
}

// UpdateStatus moves an inquiry through the triage flow.
func (r *InquiryRepo) UpdateStatus(ctx context.Context, id uint64, status string) (model.Inquiry, error) {
	var in model.Inquiry
	if !model.ValidInquiryStatus(status) {
		return in, &ValidationError{Field: "status", Message: "Status must be unread, read, or resolved"}
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&in, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		in.Status = status
		return tx.Model(&in).Update("status", status).Error
	})
	return in, err
}

func (r *InquiryRepo) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&model.Inquiry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountUnread powers the dashboard badge.
func (r *InquiryRepo) CountUnread(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Inquiry{}).
		Where("status = ?", model.InquiryStatusUnread).Count(&n).Error
	return n, err
}
