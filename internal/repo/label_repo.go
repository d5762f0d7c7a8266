package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskboard-api/internal/domain"
)

type LabelRepo struct{ db *gorm.DB }

func NewLabelRepo(db *gorm.DB) *LabelRepo { return &LabelRepo{db: db} }

func (r *LabelRepo) Create(ctx context.Context, l *domain.Label) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LabelRepo) FindByID(ctx context.Context, id string) (*domain.Label, error) {
	var l domain.Label
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &l, err
}

func (r *LabelRepo) FindByIDs(ctx context.Context, ids []string) (map[string]domain.Label, error) {
	out := make(map[string]domain.Label, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var labels []domain.Label
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&labels).Error; err != nil {
		return nil, err
	}
	for _, l := range labels {
		out[l.ID] = l
	}
	return out, nil
}

func (r *LabelRepo) List(ctx context.Context) ([]domain.Label, error) {
	var labels []domain.Label
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&labels).Error
	return labels, err
}

func (r *LabelRepo) Update(ctx context.Context, l *domain.Label) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LabelRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Label{}).Error
}
