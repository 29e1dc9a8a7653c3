package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringSlice stores a list of strings as a JSONB column.
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *StringSlice) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = nil
		return nil
	default:
		return errors.New("unsupported type for StringSlice")
	}
}

func (StringSlice) GormDataType() string { return "jsonb" }

type PricingPlan struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Name      string      `gorm:"not null" json:"name" validate:"required"`
	Price     float64     `gorm:"not null" json:"price" validate:"gte=0"`
	Period    string      `gorm:"not null" json:"period" validate:"required"`
	Popular   bool        `gorm:"default:false" json:"popular"`
	Features  StringSlice `gorm:"not null" json:"features" validate:"required,min=1,dive,required"`
}

type PricingPlanPatch struct {
	Name     *string      `json:"name" validate:"omitempty,min=1"`
	Price    *float64     `json:"price" validate:"omitempty,gte=0"`
	Period   *string      `json:"period" validate:"omitempty,min=1"`
	Popular  *bool        `json:"popular"`
	Features *StringSlice `json:"features" validate:"omitempty,min=1,dive,required"`
}

func (p *PricingPlanPatch) Apply(m *PricingPlan) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Price != nil {
		m.Price = *p.Price
	}
	if p.Period != nil {
		m.Period = *p.Period
	}
	if p.Popular != nil {
		m.Popular = *p.Popular
	}
	if p.Features != nil {
		m.Features = *p.Features
	}
}
