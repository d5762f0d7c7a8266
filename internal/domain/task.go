package domain

import (
	"context"
	"time"
)

const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

func ValidStatus(s string) bool {
	return s == StatusTodo || s == StatusInProgress || s == StatusDone
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type Task struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Name        string     `gorm:"size:128;not null" json:"name"`
	Description string     `gorm:"size:1024;not null" json:"description"`
	OwnerID     string     `gorm:"column:owner_id;size:36;not null;index" json:"owner"`
	BoardID     string     `gorm:"column:board_id;size:36;not null;index" json:"board"`
	Status      string     `gorm:"size:16;not null;default:todo" json:"status"`
	StartDate   *time.Time `gorm:"column:start_date" json:"start_date,omitempty"`
	DueDate     *time.Time `gorm:"column:due_date" json:"due_date,omitempty"`
	Priority    string     `gorm:"size:16;not null;default:medium" json:"priority"`
	LabelID     string     `gorm:"column:label_id;size:36;index" json:"label,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Task) TableName() string { return "tasks" }

type TaskRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (t *Task) Ref() TaskRef { return TaskRef{ID: t.ID, Name: t.Name} }

type TaskView struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Owner       UserRef    `json:"owner"`
	Board       BoardRef   `json:"board"`
	Status      string     `json:"status"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    string     `json:"priority"`
	Label       *LabelRef  `json:"label,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type TaskRepository interface {
	Create(ctx context.Context, t *Task) error
	FindByID(ctx context.Context, id string) (*Task, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]Task, error)
	List(ctx context.Context) ([]Task, error)
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id string) error
}
