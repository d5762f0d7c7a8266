package service

import (
	"context"

	"taskboard-api/internal/apperr"
	"taskboard-api/internal/domain"
	"taskboard-api/pkg/utils"
)

type LabelService struct {
	labels domain.LabelRepository
}

func NewLabelService(labels domain.LabelRepository) *LabelService {
	return &LabelService{labels: labels}
}

type LabelInput struct {
	Name  string
	Color string
}

func (s *LabelService) Create(ctx context.Context, in LabelInput) (*domain.Label, error) {
	l := &domain.Label{
		ID:    utils.NewID(),
		Name:  in.Name,
		Color: in.Color,
	}
	if err := s.labels.Create(ctx, l); err != nil {
		return nil, apperr.Internal("creation failed", err)
	}
	return l, nil
}

func (s *LabelService) FindByID(ctx context.Context, id string) (*domain.Label, error) {
	l, err := s.labels.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("finding label by id failed", err)
	}
	if l == nil {
		return nil, apperr.NotFound("label not found")
	}
	return l, nil
}

func (s *LabelService) FindAll(ctx context.Context) ([]domain.Label, error) {
	labels, err := s.labels.List(ctx)
	if err != nil {
		return nil, apperr.Internal("finding all labels failed", err)
	}
	return labels, nil
}

type LabelUpdate struct {
	Name  *string
	Color *string
}

func (s *LabelService) Update(ctx context.Context, id string, in LabelUpdate) (*domain.Label, error) {
	l, err := s.labels.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("updating label failed", err)
	}
	if l == nil {
		return nil, apperr.NotFound("label not found")
	}
	if in.Name != nil {
		l.Name = *in.Name
	}
	if in.Color != nil {
		l.Color = *in.Color
	}
	if err := s.labels.Update(ctx, l); err != nil {
		return nil, apperr.Internal("updating label failed", err)
	}
	return l, nil
}

func (s *LabelService) Delete(ctx context.Context, id string) (*domain.Label, error) {
	l, err := s.labels.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("deleting label failed", err)
	}
	if l == nil {
		return nil, apperr.NotFound("label not found")
	}
	if err := s.labels.Delete(ctx, id); err != nil {
		return nil, apperr.Internal("deleting label failed", err)
	}
	return l, nil
}
