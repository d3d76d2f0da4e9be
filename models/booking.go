package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo is the single place the booking lifecycle is defined:
// pending -> confirmed | cancelled, confirmed -> completed | cancelled.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

type Booking struct {
	ID            string `gorm:"primaryKey" json:"id"`
	CustomerID    string `gorm:"index;not null" json:"customerId"`
	HairdresserID string `gorm:"index;not null" json:"hairdresserId"`
	ServiceID     string `gorm:"index;not null" json:"serviceId"`

	Date   time.Time     `gorm:"not null" json:"date"`
	Status BookingStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	TotalPrice float64 `gorm:"type:decimal(10,2);not null" json:"totalPrice"`
	Notes      string  `json:"notes,omitempty"`

	// Rating and Review are set after completion only.
	Rating *int   `json:"rating,omitempty"`
	Review string `json:"review,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return
}

func (b *Booking) Validate() error {
	if b.CustomerID == "" || b.HairdresserID == "" || b.ServiceID == "" {
		return errors.New("customer, hairdresser and service IDs are required")
	}
	if b.Date.IsZero() {
		return errors.New("date is required")
	}
	if !b.Status.Valid() {
		return fmt.Errorf("invalid booking status %q", b.Status)
	}
	if b.TotalPrice < 0 {
		return errors.New("total price must not be negative")
	}
	if b.Rating != nil || b.Review != "" {
		if b.Status != StatusCompleted {
			return errors.New("rating and review are only allowed on completed bookings")
		}
	}
	if b.Rating != nil && (*b.Rating < 1 || *b.Rating > 5) {
		return fmt.Errorf("rating must be within [1,5], got %d", *b.Rating)
	}
	return nil
}

// TransitionTo moves the booking to the next status, enforcing the
// lifecycle centrally rather than per caller.
func (b *Booking) TransitionTo(next BookingStatus) error {
	if !next.Valid() {
		return fmt.Errorf("invalid booking status %q", next)
	}
	if !b.Status.CanTransitionTo(next) {
		return fmt.Errorf("cannot transition booking from %s to %s", b.Status, next)
	}
	b.Status = next
	return nil
}
