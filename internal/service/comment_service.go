package service

import (
	"context"

	"taskboard-api/internal/apperr"
	"taskboard-api/internal/domain"
	"taskboard-api/pkg/utils"
)

type CommentService struct {
	comments domain.CommentRepository
	users    domain.UserRepository
	tasks    domain.TaskRepository
}

func NewCommentService(comments domain.CommentRepository, users domain.UserRepository, tasks domain.TaskRepository) *CommentService {
	return &CommentService{comments: comments, users: users, tasks: tasks}
}

type CommentInput struct {
	Content string
	User    string
	Task    string
}

func (s *CommentService) Create(ctx context.Context, in CommentInput) (*domain.Comment, error) {
	c := &domain.Comment{
		ID:      utils.NewID(),
		Content: in.Content,
		UserID:  in.User,
		TaskID:  in.Task,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, apperr.Internal("creation failed", err)
	}
	return c, nil
}

func (s *CommentService) FindByID(ctx context.Context, id string) (*domain.CommentView, error) {
	c, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("finding comment by id failed", err)
	}
	if c == nil {
		return nil, apperr.NotFound("comment not found")
	}
	view := s.toView(ctx, c)
	return &view, nil
}

func (s *CommentService) FindAll(ctx context.Context) ([]domain.CommentView, error) {
	comments, err := s.comments.List(ctx)
	if err != nil {
		return nil, apperr.Internal("finding all comments failed", err)
	}
	userIDs := make([]string, 0, len(comments))
	taskIDs := make([]string, 0, len(comments))
	for _, c := range comments {
		userIDs = append(userIDs, c.UserID)
		taskIDs = append(taskIDs, c.TaskID)
	}
	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, apperr.Internal("finding all comments failed", err)
	}
	tasks, err := s.tasks.FindByIDs(ctx, taskIDs)
	if err != nil {
		return nil, apperr.Internal("finding all comments failed", err)
	}
	views := make([]domain.CommentView, 0, len(comments))
	for i := range comments {
		c := &comments[i]
		view := domain.CommentView{
			ID:        c.ID,
			Content:   c.Content,
			User:      domain.UserRef{ID: c.UserID},
			Task:      domain.TaskRef{ID: c.TaskID},
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		}
		if u, ok := users[c.UserID]; ok {
			view.User = u.Ref()
		}
		if t, ok := tasks[c.TaskID]; ok {
			view.Task = t.Ref()
		}
		views = append(views, view)
	}
	return views, nil
}

type CommentUpdate struct {
	Content *string
	User    *string
	Task    *string
}

func (s *CommentService) Update(ctx context.Context, id string, in CommentUpdate) (*domain.Comment, error) {
	c, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("updating comment failed", err)
	}
	if c == nil {
		return nil, apperr.NotFound("comment not found")
	}
	if in.Content != nil {
		c.Content = *in.Content
	}
	if in.User != nil {
		c.UserID = *in.User
	}
	if in.Task != nil {
		c.TaskID = *in.Task
	}
	if err := s.comments.Update(ctx, c); err != nil {
		return nil, apperr.Internal("updating comment failed", err)
	}
	return c, nil
}

func (s *CommentService) Delete(ctx context.Context, id string) (*domain.Comment, error) {
	c, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("deleting comment failed", err)
	}
	if c == nil {
		return nil, apperr.NotFound("comment not found")
	}
	if err := s.comments.Delete(ctx, id); err != nil {
		return nil, apperr.Internal("deleting comment failed", err)
	}
	return c, nil
}

func (s *CommentService) toView(ctx context.Context, c *domain.Comment) domain.CommentView {
	view := domain.CommentView{
		ID:        c.ID,
		Content:   c.Content,
		User:      domain.UserRef{ID: c.UserID},
		Task:      domain.TaskRef{ID: c.TaskID},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if u, err := s.users.FindByID(ctx, c.UserID); err == nil && u != nil {
		view.User = u.Ref()
	}
	if t, err := s.tasks.FindByID(ctx, c.TaskID); err == nil && t != nil {
		view.Task = t.Ref()
	}
	return view
}
