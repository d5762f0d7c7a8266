package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskboard-api/internal/domain"
)

type BoardRepo struct{ db *gorm.DB }

func NewBoardRepo(db *gorm.DB) *BoardRepo { return &BoardRepo{db: db} }

func (r *BoardRepo) Create(ctx context.Context, b *domain.Board) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BoardRepo) FindByID(ctx context.Context, id string) (*domain.Board, error) {
	var b domain.Board
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &b, err
}

func (r *BoardRepo) FindByIDs(ctx context.Context, ids []string) (map[string]domain.Board, error) {
	out := make(map[string]domain.Board, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var boards []domain.Board
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&boards).Error; err != nil {
		return nil, err
	}
	for _, b := range boards {
		out[b.ID] = b
	}
	return out, nil
}

func (r *BoardRepo) List(ctx context.Context) ([]domain.Board, error) {
	var boards []domain.Board
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&boards).Error
	return boards, err
}

func (r *BoardRepo) Update(ctx context.Context, b *domain.Board) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BoardRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Board{}).Error
}
