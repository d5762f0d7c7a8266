package domain

import (
	"context"
	"time"
)

// 成员角色以落盘枚举为准（owner/editor/viewer）
const (
	CollabOwner  = "owner"
	CollabEditor = "editor"
	CollabViewer = "viewer"
)

func ValidCollabRole(r string) bool {
	return r == CollabOwner || r == CollabEditor || r == CollabViewer
}

type Collaborator struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"column:user_id;size:36;not null;index" json:"user"`
	BoardID   string    `gorm:"column:board_id;size:36;not null;index" json:"board"`
	Role      string    `gorm:"size:16;not null;default:viewer" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Collaborator) TableName() string { return "collaborators" }

type CollaboratorView struct {
	ID        string    `json:"id"`
	User      UserRef   `json:"user"`
	Board     BoardRef  `json:"board"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CollaboratorRepository interface {
	Create(ctx context.Context, c *Collaborator) error
	FindByID(ctx context.Context, id string) (*Collaborator, error)
	List(ctx context.Context) ([]Collaborator, error)
	Update(ctx context.Context, c *Collaborator) error
	Delete(ctx context.Context, id string) error
}
