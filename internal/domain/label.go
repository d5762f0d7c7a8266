package domain

import (
	"context"
	"time"
)

// Label 不落盘关联 board，标签全局复用
type Label struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:64;not null" json:"name"`
	Color     string    `gorm:"size:16;not null" json:"color"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Label) TableName() string { return "labels" }

type LabelRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (l *Label) Ref() LabelRef { return LabelRef{ID: l.ID, Name: l.Name, Color: l.Color} }

type LabelRepository interface {
	Create(ctx context.Context, l *Label) error
	FindByID(ctx context.Context, id string) (*Label, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]Label, error)
	List(ctx context.Context) ([]Label, error)
	Update(ctx context.Context, l *Label) error
	Delete(ctx context.Context, id string) error
}
