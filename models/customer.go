package models

import (
	"errors"
	"fmt"
)

type Customer struct {
	Person `gorm:"embedded"`

	// Favorite and previous hairdresser IDs have set semantics: unique,
	// order irrelevant.
	FavoriteHairdressers StringList `gorm:"type:jsonb;default:'[]'" json:"favoriteHairdressers"`
	PreviousHairdressers StringList `gorm:"type:jsonb;default:'[]'" json:"previousHairdressers"`

	BookingHistory []Booking `gorm:"foreignKey:CustomerID" json:"bookingHistory,omitempty"`
}

func (c *Customer) Validate() error {
	if c.Rating < 0 || c.Rating > 5 {
		return fmt.Errorf("rating must be within [0,5], got %.1f", c.Rating)
	}
	if c.ReviewCount < 0 {
		return errors.New("review count must not be negative")
	}
	return nil
}

// AddFavorite inserts a hairdresser ID, keeping the list duplicate-free.
func (c *Customer) AddFavorite(hairdresserID string) {
	for _, id := range c.FavoriteHairdressers {
		if id == hairdresserID {
			return
		}
	}
	c.FavoriteHairdressers = append(c.FavoriteHairdressers, hairdresserID)
}

// RemoveFavorite drops a hairdresser ID; no-op when absent.
func (c *Customer) RemoveFavorite(hairdresserID string) {
	kept := c.FavoriteHairdressers[:0]
	for _, id := range c.FavoriteHairdressers {
		if id != hairdresserID {
			kept = append(kept, id)
		}
	}
	c.FavoriteHairdressers = kept
}
