package models

import "time"

// Profile is a public matrimonial listing. It is linked to a User only through
// User.ProfileID; deleting one never cascades to the other.
type Profile struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	Name       string    `gorm:"not null" json:"name" validate:"required"`
	Age        int       `gorm:"not null;index" json:"age" validate:"required,gte=18,lte=100"`
	Gender     string    `gorm:"not null;index" json:"gender" validate:"required,oneof=male female"`
	Height     string    `gorm:"not null" json:"height" validate:"required"`
	Religion   string    `gorm:"not null;index" json:"religion" validate:"required"`
	Community  string    `gorm:"not null;index" json:"community" validate:"required"`
	Location   string    `gorm:"not null" json:"location" validate:"required"`
	Education  string    `gorm:"not null" json:"education" validate:"required"`
	Occupation string    `gorm:"not null" json:"occupation" validate:"required"`
	About      string    `gorm:"size:1000;not null" json:"about" validate:"required,max=1000"`
	Image      string    `gorm:"not null" json:"image" validate:"required"`
	Verified   bool      `gorm:"default:false" json:"verified"`
	Premium    bool      `gorm:"default:false" json:"premium"`
}

type ProfilePatch struct {
	Name       *string `json:"name" validate:"omitempty,min=1"`
	Age        *int    `json:"age" validate:"omitempty,gte=18,lte=100"`
	Gender     *string `json:"gender" validate:"omitempty,oneof=male female"`
	Height     *string `json:"height" validate:"omitempty,min=1"`
	Religion   *string `json:"religion" validate:"omitempty,min=1"`
	Community  *string `json:"community" validate:"omitempty,min=1"`
	Location   *string `json:"location" validate:"omitempty,min=1"`
	Education  *string `json:"education" validate:"omitempty,min=1"`
	Occupation *string `json:"occupation" validate:"omitempty,min=1"`
	About      *string `json:"about" validate:"omitempty,min=1,max=1000"`
	Image      *string `json:"image" validate:"omitempty,min=1"`
	Verified   *bool   `json:"verified"`
	Premium    *bool   `json:"premium"`
}

func (p *ProfilePatch) Apply(m *Profile) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Age != nil {
		m.Age = *p.Age
	}
	if p.Gender != nil {
		m.Gender = *p.Gender
	}
	if p.Height != nil {
		m.Height = *p.Height
	}
	if p.Religion != nil {
		m.Religion = *p.Religion
	}
	if p.Community != nil {
		m.Community = *p.Community
	}
	if p.Location != nil {
		m.Location = *p.Location
	}
	if p.Education != nil {
		m.Education = *p.Education
	}
	if p.Occupation != nil {
		m.Occupation = *p.Occupation
	}
	if p.About != nil {
		m.About = *p.About
	}
	if p.Image != nil {
		m.Image = *p.Image
	}
	if p.Verified != nil {
		m.Verified = *p.Verified
	}
	if p.Premium != nil {
		m.Premium = *p.Premium
	}
}
