package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID       string `gorm:"type:uuid;primary_key" json:"id"`
	AuthorID string `gorm:"type:uuid;not null;index" json:"author_id"`
	Title    string `gorm:"type:varchar(255);not null" json:"title"`
	Body     string `gorm:"type:text;not null" json:"body"`
	// Seq breaks created_at ties so listing order stays stable across
	// re-queries for posts inserted within the same timestamp.
	Seq       int64          `gorm:"autoIncrement;uniqueIndex" json:"-"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
