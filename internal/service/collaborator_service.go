package service

import (
	"context"

	"taskboard-api/internal/apperr"
	"taskboard-api/internal/domain"
	"taskboard-api/pkg/utils"
)

type CollaboratorService struct {
	collabs domain.CollaboratorRepository
	users   domain.UserRepository
	boards  domain.BoardRepository
}

func NewCollaboratorService(collabs domain.CollaboratorRepository, users domain.UserRepository, boards domain.BoardRepository) *CollaboratorService {
	return &CollaboratorService{collabs: collabs, users: users, boards: boards}
}

type CollaboratorInput struct {
	User  string
	Board string
	Role  string
}

func (s *CollaboratorService) Create(ctx context.Context, in CollaboratorInput) (*domain.Collaborator, error) {
	c := &domain.Collaborator{
		ID:      utils.NewID(),
		UserID:  in.User,
		BoardID: in.Board,
		Role:    in.Role,
	}
	if c.Role == "" {
		c.Role = domain.CollabViewer
	}
	// 写时不校验 user/board 是否存在，读时才发现悬空
	if err := s.collabs.Create(ctx, c); err != nil {
		return nil, apperr.Internal("creation failed", err)
	}
	return c, nil
}

func (s *CollaboratorService) FindByID(ctx context.Context, id string) (*domain.CollaboratorView, error) {
	c, err := s.collabs.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("finding collaborator by id failed", err)
	}
	if c == nil {
		return nil, apperr.NotFound("collaborator not found")
	}
	view := s.toView(ctx, c)
	return &view, nil
}

func (s *CollaboratorService) FindAll(ctx context.Context) ([]domain.CollaboratorView, error) {
	collabs, err := s.collabs.List(ctx)
	if err != nil {
		return nil, apperr.Internal("finding all collaborators failed", err)
	}
	userIDs := make([]string, 0, len(collabs))
	boardIDs := make([]string, 0, len(collabs))
	for _, c := range collabs {
		userIDs = append(userIDs, c.UserID)
		boardIDs = append(boardIDs, c.BoardID)
	}
	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, apperr.Internal("finding all collaborators failed", err)
	}
	boards, err := s.boards.FindByIDs(ctx, boardIDs)
	if err != nil {
		return nil, apperr.Internal("finding all collaborators failed", err)
	}
	views := make([]domain.CollaboratorView, 0, len(collabs))
	for i := range collabs {
		c := &collabs[i]
		view := domain.CollaboratorView{
			ID:        c.ID,
			User:      domain.UserRef{ID: c.UserID},
			Board:     domain.BoardRef{ID: c.BoardID},
			Role:      c.Role,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		}
		if u, ok := users[c.UserID]; ok {
			view.User = u.Ref()
		}
		if b, ok := boards[c.BoardID]; ok {
			view.Board = b.Ref()
		}
		views = append(views, view)
	}
	return views, nil
}

type CollaboratorUpdate struct {
	User  *string
	Board *string
	Role  *string
}

func (s *CollaboratorService) Update(ctx context.Context, id string, in CollaboratorUpdate) (*domain.Collaborator, error) {
	c, err := s.collabs.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("updating collaborator failed", err)
	}
	if c == nil {
		return nil, apperr.NotFound("collaborator not found")
	}
	if in.User != nil {
		c.UserID = *in.User
	}
	if in.Board != nil {
		c.BoardID = *in.Board
	}
	if in.Role != nil {
		c.Role = *in.Role
	}
	if err := s.collabs.Update(ctx, c); err != nil {
		return nil, apperr.Internal("updating collaborator failed", err)
	}
	return c, nil
}

func (s *CollaboratorService) Delete(ctx context.Context, id string) (*domain.Collaborator, error) {
	c, err := s.collabs.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("deleting collaborator failed", err)
	}
	if c == nil {
		return nil, apperr.NotFound("collaborator not found")
	}
	if err := s.collabs.Delete(ctx, id); err != nil {
		return nil, apperr.Internal("deleting collaborator failed", err)
	}
	return c, nil
}

func (s *CollaboratorService) toView(ctx context.Context, c *domain.Collaborator) domain.CollaboratorView {
	view := domain.CollaboratorView{
		ID:        c.ID,
		User:      domain.UserRef{ID: c.UserID},
		Board:     domain.BoardRef{ID: c.BoardID},
		Role:      c.Role,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if u, err := s.users.FindByID(ctx, c.UserID); err == nil && u != nil {
		view.User = u.Ref()
	}
	if b, err := s.boards.FindByID(ctx, c.BoardID); err == nil && b != nil {
		view.Board = b.Ref()
	}
	return view
}
