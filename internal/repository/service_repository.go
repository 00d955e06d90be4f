package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dbgeneral/construction-api/internal/model"
)

// ServiceRepo persists the company's service catalog.
type ServiceRepo struct{ db *gorm.DB }

func NewServiceRepo(db *gorm.DB) *ServiceRepo { return &ServiceRepo{db: db} }

// List returns all services, newest first.
func (r *ServiceRepo) List(ctx context.Context) ([]model.Service, error) {
	var services []model.Service
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&services).Error
	return services, err
}

func (r *ServiceRepo) GetByID(ctx context.Context, id uint64) (model.Service, error) {
	var s model.Service
	err := r.db.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s, ErrNotFound
	}
	return s, err
}

func (r *ServiceRepo) Create(ctx context.Context, s *model.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ServiceRepo) Update(ctx context.Context, s *model.Service) error {
	return r.db.WithContext(ctx).Model(s).
		Updates(map[string]interface{}{
			"title":       s.Title,
			"description": s.Description,
			"icon":        s.Icon,
		}).Error
}

func (r *ServiceRepo) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&model.Service{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
