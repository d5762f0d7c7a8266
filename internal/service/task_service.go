package service

import (
	"context"
	"time"

	"taskboard-api/internal/apperr"
	"taskboard-api/internal/core/cache"
	"taskboard-api/internal/domain"
	"taskboard-api/pkg/utils"
)

type TaskService struct {
	tasks  domain.TaskRepository
	users  domain.UserRepository
	boards domain.BoardRepository
	labels domain.LabelRepository
	cache  *cache.Cache // 可为 nil
}

func NewTaskService(tasks domain.TaskRepository, users domain.UserRepository, boards domain.BoardRepository, labels domain.LabelRepository, c *cache.Cache) *TaskService {
	return &TaskService{tasks: tasks, users: users, boards: boards, labels: labels, cache: c}
}

type TaskInput struct {
	Name        string
	Description string
	Owner       string
	Board       string
	Status      string
	StartDate   *time.Time
	DueDate     *time.Time
	Priority    string
	Label       string
}

func (s *TaskService) Create(ctx context.Context, in TaskInput) (*domain.Task, error) {
	t := &domain.Task{
		ID:          utils.NewID(),
		Name:        in.Name,
		Description: in.Description,
		OwnerID:     in.Owner,
		BoardID:     in.Board,
		Status:      in.Status,
		StartDate:   in.StartDate,
		DueDate:     in.DueDate,
		Priority:    in.Priority,
		LabelID:     in.Label,
	}
	if t.Status == "" {
		t.Status = domain.StatusTodo
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, apperr.Internal("creation failed", err)
	}
	return t, nil
}

func (s *TaskService) FindByID(ctx context.Context, id string) (*domain.TaskView, error) {
	if s.cache != nil {
		return cache.GetOrLoadJSON[domain.TaskView](s.cache, ctx, taskKey(id), func(ctx context.Context) (*domain.TaskView, error) {
			return s.loadView(ctx, id)
		})
	}
	return s.loadView(ctx, id)
}

func (s *TaskService) loadView(ctx context.Context, id string) (*domain.TaskView, error) {
	t, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("finding task by id failed", err)
	}
	if t == nil {
		return nil, apperr.NotFound("task not found")
	}

	view := baseTaskView(t)
	if owner, err := s.users.FindByID(ctx, t.OwnerID); err == nil && owner != nil {
		view.Owner = owner.Ref()
	}
	if board, err := s.boards.FindByID(ctx, t.BoardID); err == nil && board != nil {
		view.Board = board.Ref()
	}
	if t.LabelID != "" {
		if label, err := s.labels.FindByID(ctx, t.LabelID); err == nil && label != nil {
			ref := label.Ref()
			view.Label = &ref
		}
	}
	return &view, nil
}

func (s *TaskService) FindAll(ctx context.Context) ([]domain.TaskView, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, apperr.Internal("finding all tasks failed", err)
	}

	ownerIDs := make([]string, 0, len(tasks))
	boardIDs := make([]string, 0, len(tasks))
	labelIDs := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ownerIDs = append(ownerIDs, t.OwnerID)
		boardIDs = append(boardIDs, t.BoardID)
		if t.LabelID != "" {
			labelIDs = append(labelIDs, t.LabelID)
		}
	}
	owners, err := s.users.FindByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, apperr.Internal("finding all tasks failed", err)
	}
	boards, err := s.boards.FindByIDs(ctx, boardIDs)
	if err != nil {
		return nil, apperr.Internal("finding all tasks failed", err)
	}
	labels, err := s.labels.FindByIDs(ctx, labelIDs)
	if err != nil {
		return nil, apperr.Internal("finding all tasks failed", err)
	}

	views := make([]domain.TaskView, 0, len(tasks))
	for i := range tasks {
		t := &tasks[i]
		view := baseTaskView(t)
		if owner, ok := owners[t.OwnerID]; ok {
			view.Owner = owner.Ref()
		}
		if board, ok := boards[t.BoardID]; ok {
			view.Board = board.Ref()
		}
		if label, ok := labels[t.LabelID]; ok {
			ref := label.Ref()
			view.Label = &ref
		}
		views = append(views, view)
	}
	return views, nil
}

type TaskUpdate struct {
	Name        *string
	Description *string
	Owner       *string
	Board       *string
	Status      *string
	StartDate   *time.Time
	DueDate     *time.Time
	Priority    *string
	Label       *string
}

func (s *TaskService) Update(ctx context.Context, id string, in TaskUpdate) (*domain.Task, error) {
	t, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("updating task failed", err)
	}
	if t == nil {
		return nil, apperr.NotFound("task not found")
	}
	if in.Name != nil {
		t.Name = *in.Name
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Owner != nil {
		t.OwnerID = *in.Owner
	}
	if in.Board != nil {
		t.BoardID = *in.Board
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	if in.StartDate != nil {
		t.StartDate = in.StartDate
	}
	if in.DueDate != nil {
		t.DueDate = in.DueDate
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.Label != nil {
		t.LabelID = *in.Label
	}
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, apperr.Internal("updating task failed", err)
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, taskKey(id))
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) (*domain.Task, error) {
	t, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("deleting task failed", err)
	}
	if t == nil {
		return nil, apperr.NotFound("task not found")
	}
	if err := s.tasks.Delete(ctx, id); err != nil {
		return nil, apperr.Internal("deleting task failed", err)
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, taskKey(id))
	}
	return t, nil
}

func baseTaskView(t *domain.Task) domain.TaskView {
	return domain.TaskView{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Owner:       domain.UserRef{ID: t.OwnerID},
		Board:       domain.BoardRef{ID: t.BoardID},
		Status:      t.Status,
		StartDate:   t.StartDate,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func taskKey(id string) string { return "task:view:" + id }
