package models

import "time"

type SuccessStory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	CoupleName  string    `gorm:"not null" json:"coupleName" validate:"required"`
	WeddingDate string    `gorm:"not null;index" json:"weddingDate" validate:"required"`
	Location    string    `gorm:"not null" json:"location" validate:"required"`
	Story       string    `gorm:"size:2000;not null" json:"story" validate:"required,max=2000"`
	Quote       string    `gorm:"size:300;not null" json:"quote" validate:"required,max=300"`
	Image       string    `gorm:"not null" json:"image" validate:"required"`
}

type SuccessStoryPatch struct {
	CoupleName  *string `json:"coupleName" validate:"omitempty,min=1"`
	WeddingDate *string `json:"weddingDate" validate:"omitempty,min=1"`
	Location    *string `json:"location" validate:"omitempty,min=1"`
	Story       *string `json:"story" validate:"omitempty,min=1,max=2000"`
	Quote       *string `json:"quote" validate:"omitempty,min=1,max=300"`
	Image       *string `json:"image" validate:"omitempty,min=1"`
}

func (p *SuccessStoryPatch) Apply(m *SuccessStory) {
	if p.CoupleName != nil {
		m.CoupleName = *p.CoupleName
	}
	if p.WeddingDate != nil {
		m.WeddingDate = *p.WeddingDate
	}
	if p.Location != nil {
		m.Location = *p.Location
	}
	if p.Story != nil {
		m.Story = *p.Story
	}
	if p.Quote != nil {
		m.Quote = *p.Quote
	}
	if p.Image != nil {
		m.Image = *p.Image
	}
}
