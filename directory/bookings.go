package directory

import (
	"fmt"
	"sort"
	"time"

	"trimz-backend/models"
	"trimz-backend/utils"
)

// Perspective selects which actor is viewing booking buckets. The
// hairdresser dashboard has a dedicated Today bucket; the customer view
// folds same-day bookings into Upcoming and leaves Today empty.
type Perspective string

const (
	PerspectiveCustomer    Perspective = "customer"
	PerspectiveHairdresser Perspective = "hairdresser"
)

func (p Perspective) Valid() bool {
	return p == PerspectiveCustomer || p == PerspectiveHairdresser
}

// Buckets is the total, disjoint partition of a booking list. Today and
// Upcoming are ordered by date ascending, Past by date descending.
type Buckets struct {
	Today    []models.Booking `json:"today"`
	Upcoming []models.Booking `json:"upcoming"`
	Past     []models.Booking `json:"past"`
}

// ClassifyBookings partitions bookings relative to a fixed reference
// instant. Precedence: completed or cancelled bookings are past; earlier
// calendar days are past; the reference day itself is Today for the
// hairdresser perspective and Upcoming for the customer; later days are
// Upcoming.
func ClassifyBookings(bookings []models.Booking, referenceInstant time.Time, perspective Perspective) (Buckets, error) {
	if !perspective.Valid() {
		return Buckets{}, fmt.Errorf("%w: unknown perspective %q", ErrInvalidArgument, perspective)
	}
	if referenceInstant.IsZero() {
		return Buckets{}, fmt.Errorf("%w: reference instant is required", ErrInvalidArgument)
	}

	refDay := utils.BeginningOfDay(referenceInstant)

	var buckets Buckets
	for _, b := range bookings {
		day := utils.BeginningOfDay(b.Date.In(referenceInstant.Location()))
		switch {
		case b.Status.Terminal() || day.Before(refDay):
			buckets.Past = append(buckets.Past, b)
		case day.Equal(refDay) && perspective == PerspectiveHairdresser:
			buckets.Today = append(buckets.Today, b)
		default:
			buckets.Upcoming = append(buckets.Upcoming, b)
		}
	}

	sortByDate(buckets.Today, true)
	sortByDate(buckets.Upcoming, true)
	sortByDate(buckets.Past, false)
	return buckets, nil
}

func sortByDate(bookings []models.Booking, ascending bool) {
	sort.SliceStable(bookings, func(i, j int) bool {
		if ascending {
			return bookings[i].Date.Before(bookings[j].Date)
		}
		return bookings[i].Date.After(bookings[j].Date)
	})
}

// NextUpcomingBooking returns the customer's earliest pending or confirmed
// booking strictly after the reference instant, or false when none qualify.
func NextUpcomingBooking(bookings []models.Booking, customerID string, referenceInstant time.Time) (*models.Booking, bool) {
	var next *models.Booking
	for i := range bookings {
		b := &bookings[i]
		if b.CustomerID != customerID {
			continue
		}
		if b.Status != models.StatusPending && b.Status != models.StatusConfirmed {
			continue
		}
		if !b.Date.After(referenceInstant) {
			continue
		}
		if next == nil || b.Date.Before(next.Date) {
			next = b
		}
	}
	return next, next != nil
}
