package service

import (
	"context"

	"taskboard-api/internal/apperr"
	"taskboard-api/internal/core/cache"
	"taskboard-api/internal/domain"
	"taskboard-api/pkg/utils"
)

type BoardService struct {
	boards domain.BoardRepository
	users  domain.UserRepository
	cache  *cache.Cache // 可为 nil（禁用缓存）
}

func NewBoardService(boards domain.BoardRepository, users domain.UserRepository, c *cache.Cache) *BoardService {
	return &BoardService{boards: boards, users: users, cache: c}
}

type BoardInput struct {
	Name        string
	Owner       string
	Description string
	Visibility  string
}

func (s *BoardService) Create(ctx context.Context, in BoardInput) (*domain.Board, error) {
	b := &domain.Board{
		ID:          utils.NewID(),
		Name:        in.Name,
		OwnerID:     in.Owner,
		Description: in.Description,
		Visibility:  in.Visibility,
	}
	if b.Visibility == "" {
		b.Visibility = domain.VisibilityPrivate
	}
	if err := s.boards.Create(ctx, b); err != nil {
		return nil, apperr.Internal("creation failed", err)
	}
	return b, nil
}

func (s *BoardService) FindByID(ctx context.Context, id string) (*domain.BoardView, error) {
	if s.cache != nil {
		v, err := cache.GetOrLoadJSON[domain.BoardView](s.cache, ctx, boardKey(id), func(ctx context.Context) (*domain.BoardView, error) {
			return s.loadView(ctx, id)
		})
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	return s.loadView(ctx, id)
}

func (s *BoardService) loadView(ctx context.Context, id string) (*domain.BoardView, error) {
	b, err := s.boards.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("finding board by id failed", err)
	}
	if b == nil {
		return nil, apperr.NotFound("board not found")
	}
	view := s.toView(ctx, b)
	return &view, nil
}

func (s *BoardService) FindAll(ctx context.Context) ([]domain.BoardView, error) {
	boards, err := s.boards.List(ctx)
	if err != nil {
		return nil, apperr.Internal("finding all boards failed", err)
	}
	ownerIDs := make([]string, 0, len(boards))
	for _, b := range boards {
		ownerIDs = append(ownerIDs, b.OwnerID)
	}
	owners, err := s.users.FindByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, apperr.Internal("finding all boards failed", err)
	}
	views := make([]domain.BoardView, 0, len(boards))
	for i := range boards {
		views = append(views, viewOfBoard(&boards[i], owners))
	}
	return views, nil
}

type BoardUpdate struct {
	Name        *string
	Owner       *string
	Description *string
	Visibility  *string
}

func (s *BoardService) Update(ctx context.Context, id string, in BoardUpdate) (*domain.Board, error) {
	b, err := s.boards.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("updating board failed", err)
	}
	if b == nil {
		return nil, apperr.NotFound("board not found")
	}
	if in.Name != nil {
		b.Name = *in.Name
	}
	if in.Owner != nil {
		b.OwnerID = *in.Owner
	}
	if in.Description != nil {
		b.Description = *in.Description
	}
	if in.Visibility != nil {
		b.Visibility = *in.Visibility
	}
	if err := s.boards.Update(ctx, b); err != nil {
		return nil, apperr.Internal("updating board failed", err)
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, boardKey(id))
	}
	return b, nil
}

func (s *BoardService) Delete(ctx context.Context, id string) (*domain.Board, error) {
	b, err := s.boards.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("deleting board failed", err)
	}
	if b == nil {
		return nil, apperr.NotFound("board not found")
	}
	// 不做级联：挂在 board 下的 task/collaborator 保留原引用
	if err := s.boards.Delete(ctx, id); err != nil {
		return nil, apperr.Internal("deleting board failed", err)
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, boardKey(id))
	}
	return b, nil
}

func (s *BoardService) toView(ctx context.Context, b *domain.Board) domain.BoardView {
	view := domain.BoardView{
		ID:          b.ID,
		Name:        b.Name,
		Owner:       domain.UserRef{ID: b.OwnerID},
		Description: b.Description,
		Visibility:  b.Visibility,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	// 悬空引用容忍：owner 已被删则只回 id
	if owner, err := s.users.FindByID(ctx, b.OwnerID); err == nil && owner != nil {
		view.Owner = owner.Ref()
	}
	return view
}

func viewOfBoard(b *domain.Board, owners map[string]domain.User) domain.BoardView {
	view := domain.BoardView{
		ID:          b.ID,
		Name:        b.Name,
		Owner:       domain.UserRef{ID: b.OwnerID},
		Description: b.Description,
		Visibility:  b.Visibility,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	if owner, ok := owners[b.OwnerID]; ok {
		view.Owner = owner.Ref()
	}
	return view
}

func boardKey(id string) string { return "board:view:" + id }
