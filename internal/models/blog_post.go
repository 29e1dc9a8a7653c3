package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// BlogPost is addressed by slug, not by numeric id, on the public API.
type BlogPost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Title     string    `gorm:"not null" json:"title" validate:"required"`
	Slug      string    `gorm:"uniqueIndex;not null" json:"slug" validate:"required"`
	Excerpt   string    `gorm:"size:300;not null" json:"excerpt" validate:"required,max=300"`
	Content   string    `gorm:"type:text;not null" json:"content" validate:"required"`
	Image     string    `gorm:"not null" json:"image" validate:"required"`
	Author    string    `gorm:"not null" json:"author" validate:"required"`
	Date      string    `gorm:"not null;index" json:"date" validate:"required"`
	Category  string    `gorm:"not null;index" json:"category" validate:"required"`
	ReadTime  string    `gorm:"not null" json:"readTime" validate:"required"`
}

func (b *BlogPost) BeforeSave(tx *gorm.DB) error {
	b.Slug = strings.ToLower(strings.TrimSpace(b.Slug))
	return nil
}

type BlogPostPatch struct {
	Title    *string `json:"title" validate:"omitempty,min=1"`
	Slug     *string `json:"slug" validate:"omitempty,min=1"`
	Excerpt  *string `json:"excerpt" validate:"omitempty,min=1,max=300"`
	Content  *string `json:"content" validate:"omitempty,min=1"`
	Image    *string `json:"image" validate:"omitempty,min=1"`
	Author   *string `json:"author" validate:"omitempty,min=1"`
	Date     *string `json:"date" validate:"omitempty,min=1"`
	Category *string `json:"category" validate:"omitempty,min=1"`
	ReadTime *string `json:"readTime" validate:"omitempty,min=1"`
}

func (p *BlogPostPatch) Apply(m *BlogPost) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Slug != nil {
		m.Slug = *p.Slug
	}
	if p.Excerpt != nil {
		m.Excerpt = *p.Excerpt
	}
	if p.Content != nil {
		m.Content = *p.Content
	}
	if p.Image != nil {
		m.Image = *p.Image
	}
	if p.Author != nil {
		m.Author = *p.Author
	}
	if p.Date != nil {
		m.Date = *p.Date
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.ReadTime != nil {
		m.ReadTime = *p.ReadTime
	}
}
