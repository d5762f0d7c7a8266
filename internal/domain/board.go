package domain

import (
	"context"
	"time"
)

const (
	VisibilityPrivate = "private"
	VisibilityPublic  = "public"
	VisibilityTeam    = "team"
)

func ValidVisibility(v string) bool {
	return v == VisibilityPrivate || v == VisibilityPublic || v == VisibilityTeam
}

type Board struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:128;not null" json:"name"`
	OwnerID     string    `gorm:"column:owner_id;size:36;not null;index" json:"owner"`
	Description string    `gorm:"size:512" json:"description,omitempty"`
	Visibility  string    `gorm:"size:16;not null;default:private" json:"visibility"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Board) TableName() string { return "boards" }

type BoardRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (b *Board) Ref() BoardRef { return BoardRef{ID: b.ID, Name: b.Name} }

// BoardView getById/getAll 的响应形态，owner 解引用为投影
type BoardView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Owner       UserRef   `json:"owner"`
	Description string    `json:"description,omitempty"`
	Visibility  string    `json:"visibility"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type BoardRepository interface {
	Create(ctx context.Context, b *Board) error
	FindByID(ctx context.Context, id string) (*Board, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]Board, error)
	List(ctx context.Context) ([]Board, error)
	Update(ctx context.Context, b *Board) error
	Delete(ctx context.Context, id string) error
}
