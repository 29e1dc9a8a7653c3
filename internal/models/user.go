package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	FirstName       string     `gorm:"size:50;not null" json:"firstName" validate:"required,max=50"`
	LastName        string     `gorm:"size:50;not null" json:"lastName" validate:"required,max=50"`
	Email           string     `gorm:"uniqueIndex;not null" json:"email" validate:"required,email"`
	Phone           string     `gorm:"uniqueIndex;not null" json:"phone" validate:"required,phone"`
	Password        string     `gorm:"not null" json:"-" validate:"required,min=8"`
	Gender          string     `gorm:"not null;index" json:"gender" validate:"required,oneof=male female other"`
	DateOfBirth     time.Time  `gorm:"not null" json:"dateOfBirth"`
	ProfileID       *uint      `json:"profileId,omitempty"`
	Role            string     `gorm:"default:user;index" json:"role" validate:"omitempty,oneof=user admin"`
	IsEmailVerified bool       `gorm:"default:false" json:"isEmailVerified"`
	IsPhoneVerified bool       `gorm:"default:false" json:"isPhoneVerified"`
	IsActive        bool       `gorm:"default:true;index" json:"isActive"`
	LastLogin       *time.Time `json:"lastLogin,omitempty"`
}

// Age in whole years as of now.
func (u *User) Age() int {
	return AgeAt(u.DateOfBirth, time.Now())
}

func AgeAt(dob, at time.Time) int {
	years := at.Year() - dob.Year()
	if at.YearDay() < dob.YearDay() {
		years--
	}
	return years
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return nil
}

// UserPatch carries the fields a user may change through the profile-update
// path. Email, password and role are deliberately absent.
type UserPatch struct {
	FirstName       *string `json:"firstName" validate:"omitempty,min=1,max=50"`
	LastName        *string `json:"lastName" validate:"omitempty,min=1,max=50"`
	Phone           *string `json:"phone" validate:"omitempty,phone"`
	Gender          *string `json:"gender" validate:"omitempty,oneof=male female other"`
	ProfileID       *uint   `json:"profileId"`
	IsEmailVerified *bool   `json:"isEmailVerified"`
	IsPhoneVerified *bool   `json:"isPhoneVerified"`
	IsActive        *bool   `json:"isActive"`
}

func (p *UserPatch) Apply(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Gender != nil {
		u.Gender = *p.Gender
	}
	if p.ProfileID != nil {
		u.ProfileID = p.ProfileID
	}
	if p.IsEmailVerified != nil {
		u.IsEmailVerified = *p.IsEmailVerified
	}
	if p.IsPhoneVerified != nil {
		u.IsPhoneVerified = *p.IsPhoneVerified
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
}
