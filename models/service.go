package models

import (
	"errors"
	"fmt"
)

type ServiceCategory string

const (
	CategoryHaircut   ServiceCategory = "haircut"
	CategoryColoring  ServiceCategory = "coloring"
	CategoryStyling   ServiceCategory = "styling"
	CategoryTreatment ServiceCategory = "treatment"
	CategoryOther     ServiceCategory = "other"
)

func (c ServiceCategory) Valid() bool {
	switch c {
	case CategoryHaircut, CategoryColoring, CategoryStyling, CategoryTreatment, CategoryOther:
		return true
	}
	return false
}

type Service struct {
	ID          string          `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       float64         `gorm:"type:decimal(10,2);not null" json:"price"`
	Duration    int             `json:"duration"` // in minutes
	Category    ServiceCategory `gorm:"type:varchar(20);default:'other'" json:"category"`
	IsActive    bool            `gorm:"default:true" json:"isActive"`
}

func (s *Service) Validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	if s.Price < 0 {
		return errors.New("price must not be negative")
	}
	if s.Duration <= 0 {
		return errors.New("duration must be greater than 0")
	}
	if !s.Category.Valid() {
		return fmt.Errorf("invalid service category %q", s.Category)
	}
	return nil
}
