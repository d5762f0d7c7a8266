// Package testutil provides in-memory repository implementations for tests.
package testutil

import (
	"context"
	"errors"
	"sync"
	"time"

	"taskboard-api/internal/domain"
)

// ErrForced 注入用的仓储失败
var ErrForced = errors.New("forced repository failure")

var errDup = errors.New("duplicate key value violates unique constraint")

type MemUserRepo struct {
	mu    sync.Mutex
	Users map[string]domain.User
	Err   error // 非空时所有操作直接失败
}

func NewMemUserRepo() *MemUserRepo {
	return &MemUserRepo{Users: make(map[string]domain.User)}
}

func (r *MemUserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for _, ex := range r.Users {
		if ex.Email == u.Email || ex.Username == u.Username {
			return errDup
		}
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.Users[u.ID] = *u
	return nil
}

func (r *MemUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	if u, ok := r.Users[id]; ok {
		cp := u
		return &cp, nil
	}
	return nil, nil
}

func (r *MemUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.Users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemUserRepo) FindByIDs(_ context.Context, ids []string) (map[string]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make(map[string]domain.User, len(ids))
	for _, id := range ids {
		if u, ok := r.Users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (r *MemUserRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]domain.User, 0, len(r.Users))
	for _, u := range r.Users {
		out = append(out, u)
	}
	return out, nil
}

func (r *MemUserRepo) Update(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for id, ex := range r.Users {
		if id != u.ID && (ex.Email == u.Email || ex.Username == u.Username) {
			return errDup
		}
	}
	u.UpdatedAt = time.Now()
	r.Users[u.ID] = *u
	return nil
}

func (r *MemUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	delete(r.Users, id)
	return nil
}

type MemBoardRepo struct {
	mu     sync.Mutex
	Boards map[string]domain.Board
	Err    error
}

func NewMemBoardRepo() *MemBoardRepo {
	return &MemBoardRepo{Boards: make(map[string]domain.Board)}
}

func (r *MemBoardRepo) Create(_ context.Context, b *domain.Board) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	r.Boards[b.ID] = *b
	return nil
}

func (r *MemBoardRepo) FindByID(_ context.Context, id string) (*domain.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	if b, ok := r.Boards[id]; ok {
		cp := b
		return &cp, nil
	}
	return nil, nil
}

func (r *MemBoardRepo) FindByIDs(_ context.Context, ids []string) (map[string]domain.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make(map[string]domain.Board, len(ids))
	for _, id := range ids {
		if b, ok := r.Boards[id]; ok {
			out[id] = b
		}
	}
	return out, nil
}

func (r *MemBoardRepo) List(_ context.Context) ([]domain.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]domain.Board, 0, len(r.Boards))
	for _, b := range r.Boards {
		out = append(out, b)
	}
	return out, nil
}

func (r *MemBoardRepo) Update(_ context.Context, b *domain.Board) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	b.UpdatedAt = time.Now()
	r.Boards[b.ID] = *b
	return nil
}

func (r *MemBoardRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	delete(r.Boards, id)
	return nil
}

type MemTaskRepo struct {
	mu    sync.Mutex
	Tasks map[string]domain.Task
	Err   error
}

func NewMemTaskRepo() *MemTaskRepo {
	return &MemTaskRepo{Tasks: make(map[string]domain.Task)}
}

func (r *MemTaskRepo) Create(_ context.Context, t *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	r.Tasks[t.ID] = *t
	return nil
}

func (r *MemTaskRepo) FindByID(_ context.Context, id string) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	if t, ok := r.Tasks[id]; ok {
		cp := t
		return &cp, nil
	}
	return nil, nil
}

func (r *MemTaskRepo) FindByIDs(_ context.Context, ids []string) (map[string]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make(map[string]domain.Task, len(ids))
	for _, id := range ids {
		if t, ok := r.Tasks[id]; ok {
			out[id] = t
		}
	}
	return out, nil
}

func (r *MemTaskRepo) List(_ context.Context) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]domain.Task, 0, len(r.Tasks))
	for _, t := range r.Tasks {
		out = append(out, t)
	}
	return out, nil
}

func (r *MemTaskRepo) Update(_ context.Context, t *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	t.UpdatedAt = time.Now()
	r.Tasks[t.ID] = *t
	return nil
}

func (r *MemTaskRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	delete(r.Tasks, id)
	return nil
}

type MemLabelRepo struct {
	mu     sync.Mutex
	Labels map[string]domain.Label
	Err    error
}

func NewMemLabelRepo() *MemLabelRepo {
	return &MemLabelRepo{Labels: make(map[string]domain.Label)}
}

func (r *MemLabelRepo) Create(_ context.Context, l *domain.Label) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	l.CreatedAt = time.Now()
	l.UpdatedAt = l.CreatedAt
	r.Labels[l.ID] = *l
	return nil
}

func (r *MemLabelRepo) FindByID(_ context.Context, id string) (*domain.Label, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	if l, ok := r.Labels[id]; ok {
		cp := l
		return &cp, nil
	}
	return nil, nil
}

func (r *MemLabelRepo) FindByIDs(_ context.Context, ids []string) (map[string]domain.Label, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make(map[string]domain.Label, len(ids))
	for _, id := range ids {
		if l, ok := r.Labels[id]; ok {
			out[id] = l
		}
	}
	return out, nil
}

func (r *MemLabelRepo) List(_ context.Context) ([]domain.Label, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]domain.Label, 0, len(r.Labels))
	for _, l := range r.Labels {
		out = append(out, l)
	}
	return out, nil
}

func (r *MemLabelRepo) Update(_ context.Context, l *domain.Label) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	l.UpdatedAt = time.Now()
	r.Labels[l.ID] = *l
	return nil
}

func (r *MemLabelRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	delete(r.Labels, id)
	return nil
}

type MemCommentRepo struct {
	mu       sync.Mutex
	Comments map[string]domain.Comment
	Err      error
}

func NewMemCommentRepo() *MemCommentRepo {
	return &MemCommentRepo{Comments: make(map[string]domain.Comment)}
}

func (r *MemCommentRepo) Create(_ context.Context, c *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.Comments[c.ID] = *c
	return nil
}

func (r *MemCommentRepo) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	if c, ok := r.Comments[id]; ok {
		cp := c
		return &cp, nil
	}
	return nil, nil
}

func (r *MemCommentRepo) List(_ context.Context) ([]domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]domain.Comment, 0, len(r.Comments))
	for _, c := range r.Comments {
		out = append(out, c)
	}
	return out, nil
}

func (r *MemCommentRepo) Update(_ context.Context, c *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	c.UpdatedAt = time.Now()
	r.Comments[c.ID] = *c
	return nil
}

func (r *MemCommentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	delete(r.Comments, id)
	return nil
}

type MemCollaboratorRepo struct {
	mu      sync.Mutex
	Collabs map[string]domain.Collaborator
	Err     error
}

func NewMemCollaboratorRepo() *MemCollaboratorRepo {
	return &MemCollaboratorRepo{Collabs: make(map[string]domain.Collaborator)}
}

func (r *MemCollaboratorRepo) Create(_ context.Context, c *domain.Collaborator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.Collabs[c.ID] = *c
	return nil
}

func (r *MemCollaboratorRepo) FindByID(_ context.Context, id string) (*domain.Collaborator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	if c, ok := r.Collabs[id]; ok {
		cp := c
		return &cp, nil
	}
	return nil, nil
}

func (r *MemCollaboratorRepo) List(_ context.Context) ([]domain.Collaborator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]domain.Collaborator, 0, len(r.Collabs))
	for _, c := range r.Collabs {
		out = append(out, c)
	}
	return out, nil
}

func (r *MemCollaboratorRepo) Update(_ context.Context, c *domain.Collaborator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	c.UpdatedAt = time.Now()
	r.Collabs[c.ID] = *c
	return nil
}

func (r *MemCollaboratorRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	delete(r.Collabs, id)
	return nil
}
