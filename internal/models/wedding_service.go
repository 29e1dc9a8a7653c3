package models

import "time"

type WeddingService struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Name        string    `gorm:"not null" json:"name" validate:"required"`
	Category    string    `gorm:"not null;index" json:"category" validate:"required"`
	Description string    `gorm:"size:500;not null" json:"description" validate:"required,max=500"`
	Icon        string    `gorm:"not null" json:"icon" validate:"required"`
	Image       string    `gorm:"not null" json:"image" validate:"required"`
	PriceRange  string    `gorm:"not null" json:"priceRange" validate:"required"`
	Rating      float64   `gorm:"not null;default:0;index" json:"rating" validate:"gte=0,lte=5"`
	Reviews     int       `gorm:"default:0" json:"reviews" validate:"gte=0"`
}

type WeddingServicePatch struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Category    *string  `json:"category" validate:"omitempty,min=1"`
	Description *string  `json:"description" validate:"omitempty,min=1,max=500"`
	Icon        *string  `json:"icon" validate:"omitempty,min=1"`
	Image       *string  `json:"image" validate:"omitempty,min=1"`
	PriceRange  *string  `json:"priceRange" validate:"omitempty,min=1"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Reviews     *int     `json:"reviews" validate:"omitempty,gte=0"`
}

func (p *WeddingServicePatch) Apply(m *WeddingService) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Icon != nil {
		m.Icon = *p.Icon
	}
	if p.Image != nil {
		m.Image = *p.Image
	}
	if p.PriceRange != nil {
		m.PriceRange = *p.PriceRange
	}
	if p.Rating != nil {
		m.Rating = *p.Rating
	}
	if p.Reviews != nil {
		m.Reviews = *p.Reviews
	}
}
