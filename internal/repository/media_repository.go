package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dbgeneral/construction-api/internal/model"
)

// MediaRepo persists upload metadata and enforces the reference-integrity
// rule: a media record may not disappear while project images still point
// at its URL.
type MediaRepo struct{ db *gorm.DB }

func NewMediaRepo(db *gorm.DB) *MediaRepo { return &MediaRepo{db: db} }

// List returns all media records, most recently uploaded first.
func (r *MediaRepo) List(ctx context.Context) ([]model.Media, error) {
	var media []model.Media
	err := r.db.WithContext(ctx).Order("uploaded_at DESC").Find(&media).Error
	return media, err
}

func (r *MediaRepo) GetByID(ctx context.Context, id uint64) (model.Media, error) {
	var m model.Media
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m, ErrNotFound
	}
	return m, err
}

func (r *MediaRepo) Create(ctx context.Context, m *model.Media) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// CountUsage counts project images whose src equals the given URL.
// Matching is by URL string value, not by record id.
func (r *MediaRepo) CountUsage(ctx context.Context, url string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ProjectImage{}).
		Where("src = ?", url).Count(&n).Error
	return n, err
}

// DeleteIfUnused removes the media record when nothing references its URL.
// The reference count, the record delete and the physical file removal run
// inside one transaction so a concurrent delete cannot slip between the
// check and the act. removeFile must be idempotent with respect to an
// already-absent file; any other file error aborts the transaction and the
// record survives.
func (r *MediaRepo) DeleteIfUnused(ctx context.Context, id uint64, removeFile func(filename string) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.Media
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		var refs int64
		if err := tx.Model(&model.ProjectImage{}).Where("src = ?", m.URL).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return &MediaInUseError{Count: refs}
		}
		if err := tx.Delete(&m).Error; err != nil {
			return err
		}
		return removeFile(m.Filename)
	})
}
