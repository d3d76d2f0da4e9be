package models

import (
	"errors"
	"fmt"

	"trimz-backend/utils"
)

const (
	PlanBasic   = "basic"
	PlanPremium = "premium"
	PlanGold    = "gold"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	ZipCode   string  `json:"zipCode"`
}

// Availability is one weekly working window.
type Availability struct {
	DayOfWeek   int    `json:"dayOfWeek"` // 0-6 (Sunday-Saturday)
	StartTime   string `json:"startTime"` // "09:00"
	EndTime     string `json:"endTime"`   // "17:00"
	IsAvailable bool   `json:"isAvailable"`
}

func (a *Availability) Validate() error {
	if a.DayOfWeek < 0 || a.DayOfWeek > 6 {
		return fmt.Errorf("day of week must be 0-6, got %d", a.DayOfWeek)
	}
	if !utils.ValidateTimeOfDay(a.StartTime) {
		return fmt.Errorf("invalid start time %q", a.StartTime)
	}
	if !utils.ValidateTimeOfDay(a.EndTime) {
		return fmt.Errorf("invalid end time %q", a.EndTime)
	}
	return nil
}

type Hairdresser struct {
	Person `gorm:"embedded"`

	BusinessName string `gorm:"not null" json:"businessName"`
	Bio          string `gorm:"type:text" json:"bio"`

	// ServiceIDs references the services catalog; services are looked up
	// by ID, not embedded.
	ServiceIDs StringList `gorm:"type:jsonb;default:'[]'" json:"serviceIds"`

	Location     Location         `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	Availability AvailabilityList `gorm:"type:jsonb;default:'[]'" json:"availability"`

	SubscriptionPlan string      `gorm:"type:varchar(20);default:'basic'" json:"subscriptionPlan"`
	SocialMedia      SocialMedia `gorm:"type:jsonb;default:'{}'" json:"socialMedia"`
	Portfolio        StringList  `gorm:"type:jsonb;default:'[]'" json:"portfolio"`

	IsAvailableToday bool `gorm:"default:false" json:"isAvailableToday"`

	// Distance from the viewer in miles, populated externally. Nil when
	// the viewer's position is unknown.
	Distance *float64 `gorm:"type:decimal(5,1)" json:"distance,omitempty"`
}

func (h *Hairdresser) Validate() error {
	if h.Rating < 0 || h.Rating > 5 {
		return fmt.Errorf("rating must be within [0,5], got %.1f", h.Rating)
	}
	if h.ReviewCount < 0 {
		return errors.New("review count must not be negative")
	}
	if h.BusinessName == "" {
		return errors.New("business name is required")
	}
	for _, window := range h.Availability {
		if err := window.Validate(); err != nil {
			return err
		}
	}
	return nil
}
