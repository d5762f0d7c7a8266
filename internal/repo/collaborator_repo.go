package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskboard-api/internal/domain"
)

type CollaboratorRepo struct{ db *gorm.DB }

func NewCollaboratorRepo(db *gorm.DB) *CollaboratorRepo { return &CollaboratorRepo{db: db} }

func (r *CollaboratorRepo) Create(ctx context.Context, c *domain.Collaborator) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CollaboratorRepo) FindByID(ctx context.Context, id string) (*domain.Collaborator, error) {
	var c domain.Collaborator
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *CollaboratorRepo) List(ctx context.Context) ([]domain.Collaborator, error) {
	var collabs []domain.Collaborator
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&collabs).Error
	return collabs, err
}

func (r *CollaboratorRepo) Update(ctx context.Context, c *domain.Collaborator) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CollaboratorRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Collaborator{}).Error
}
