package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dbgeneral/construction-api/internal/model"
)

// ProjectRepo persists portfolio projects and their image associations.
type ProjectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) *ProjectRepo { return &ProjectRepo{db: db} }

// List returns all projects with their images, newest completion first.
func (r *ProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).Preload("Images").
		Order("completion_date DESC").Find(&projects).Error
	return projects, err
}

// GetByID fetches a single project with its images.
func (r *ProjectRepo) GetByID(ctx context.Context, id uint64) (model.Project, error) {
	var p model.Project
	err := r.db.WithContext(ctx).Preload("Images").First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return p, ErrNotFound
	}
	return p, err
}

// Create inserts a project together with any attached images.
func (r *ProjectRepo) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Update saves the project's scalar fields, and when replaceImages is set
// swaps the whole image list for the provided one inside one transaction.
func (r *ProjectRepo) Update(ctx context.Context, p *model.Project, images []model.ProjectImage, replaceImages bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(p).Select("title", "description", "category", "completion_date", "location").
			Updates(map[string]interface{}{
				"title":           p.Title,
				"description":     p.Description,
				"category":        p.Category,
				"completion_date": p.CompletionDate,
				"location":        p.Location,
			}).Error; err != nil {
			return err
		}
		if !replaceImages {
			return nil
		}
		if err := tx.Where("project_id = ?", p.ID).Delete(&model.ProjectImage{}).Error; err != nil {
			return err
		}
		for i := range images {
			images[i].ID = 0
			images[i].ProjectID = p.ID
		}
		if len(images) == 0 {
			return nil
		}
		return tx.Create(&images).Error
	})
}

// Delete removes a project and cascades to its images.
func (r *ProjectRepo) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.Project
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.ProjectImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
}
