package directory_test

import (
	"testing"
	"time"

	"trimz-backend/directory"
	"trimz-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking(id string, date time.Time, status models.BookingStatus) models.Booking {
	return models.Booking{
		ID:            id,
		CustomerID:    "customer1",
		HairdresserID: "1",
		ServiceID:     "s1",
		Date:          date,
		Status:        status,
		TotalPrice:    35,
	}
}

func TestClassifyBookings(t *testing.T) {
	ref := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)

	bookings := []models.Booking{
		booking("future-confirmed", ref.Add(2*24*time.Hour), models.StatusConfirmed),
		booking("old-completed", ref.Add(-10*24*time.Hour), models.StatusCompleted),
		booking("today-pending", ref.Add(2*time.Hour), models.StatusPending),
	}

	t.Run("hairdresser perspective has a today bucket", func(t *testing.T) {
		buckets, err := directory.ClassifyBookings(bookings, ref, directory.PerspectiveHairdresser)
		require.NoError(t, err)

		require.Len(t, buckets.Today, 1)
		assert.Equal(t, "today-pending", buckets.Today[0].ID)
		require.Len(t, buckets.Upcoming, 1)
		assert.Equal(t, "future-confirmed", buckets.Upcoming[0].ID)
		require.Len(t, buckets.Past, 1)
		assert.Equal(t, "old-completed", buckets.Past[0].ID)
	})

	t.Run("customer perspective folds same-day into upcoming", func(t *testing.T) {
		buckets, err := directory.ClassifyBookings(bookings, ref, directory.PerspectiveCustomer)
		require.NoError(t, err)

		assert.Empty(t, buckets.Today)
		require.Len(t, buckets.Upcoming, 2)
		assert.Equal(t, "today-pending", buckets.Upcoming[0].ID)
		assert.Equal(t, "future-confirmed", buckets.Upcoming[1].ID)
	})

	t.Run("terminal status wins over date", func(t *testing.T) {
		cancelled := booking("future-cancelled", ref.Add(3*24*time.Hour), models.StatusCancelled)
		sameDayCompleted := booking("today-completed", ref.Add(-2*time.Hour), models.StatusCompleted)

		buckets, err := directory.ClassifyBookings(
			[]models.Booking{cancelled, sameDayCompleted}, ref, directory.PerspectiveHairdresser)
		require.NoError(t, err)

		assert.Empty(t, buckets.Today)
		assert.Empty(t, buckets.Upcoming)
		require.Len(t, buckets.Past, 2)
	})

	t.Run("earlier day pending goes to past", func(t *testing.T) {
		stale := booking("yesterday-pending", ref.Add(-24*time.Hour), models.StatusPending)
		buckets, err := directory.ClassifyBookings([]models.Booking{stale}, ref, directory.PerspectiveCustomer)
		require.NoError(t, err)
		require.Len(t, buckets.Past, 1)
	})

	t.Run("partition is total and disjoint", func(t *testing.T) {
		statuses := []models.BookingStatus{
			models.StatusPending, models.StatusConfirmed, models.StatusCompleted, models.StatusCancelled,
		}
		offsets := []time.Duration{
			-30 * 24 * time.Hour, -2 * time.Hour, 0, 2 * time.Hour, 30 * 24 * time.Hour,
		}

		var all []models.Booking
		for i, status := range statuses {
			for j, offset := range offsets {
				all = append(all, booking(
					string(rune('a'+i))+string(rune('0'+j)), ref.Add(offset), status))
			}
		}

		for _, perspective := range []directory.Perspective{directory.PerspectiveCustomer, directory.PerspectiveHairdresser} {
			buckets, err := directory.ClassifyBookings(all, ref, perspective)
			require.NoError(t, err)

			seen := make(map[string]int)
			for _, b := range buckets.Today {
				seen[b.ID]++
			}
			for _, b := range buckets.Upcoming {
				seen[b.ID]++
			}
			for _, b := range buckets.Past {
				seen[b.ID]++
			}

			require.Len(t, seen, len(all), "perspective %s", perspective)
			for id, count := range seen {
				assert.Equal(t, 1, count, "booking %s bucketed %d times", id, count)
			}
		}
	})

	t.Run("ordering inside buckets", func(t *testing.T) {
		unordered := []models.Booking{
			booking("u2", ref.Add(5*24*time.Hour), models.StatusConfirmed),
			booking("u1", ref.Add(1*24*time.Hour), models.StatusPending),
			booking("p1", ref.Add(-1*24*time.Hour), models.StatusCompleted),
			booking("p2", ref.Add(-5*24*time.Hour), models.StatusCompleted),
		}

		buckets, err := directory.ClassifyBookings(unordered, ref, directory.PerspectiveCustomer)
		require.NoError(t, err)

		// Upcoming ascending, past descending (most recent first).
		require.Len(t, buckets.Upcoming, 2)
		assert.Equal(t, "u1", buckets.Upcoming[0].ID)
		assert.Equal(t, "u2", buckets.Upcoming[1].ID)
		require.Len(t, buckets.Past, 2)
		assert.Equal(t, "p1", buckets.Past[0].ID)
		assert.Equal(t, "p2", buckets.Past[1].ID)
	})

	t.Run("invalid perspective rejected", func(t *testing.T) {
		_, err := directory.ClassifyBookings(bookings, ref, "stylist")
		require.ErrorIs(t, err, directory.ErrInvalidArgument)
	})

	t.Run("zero reference instant rejected", func(t *testing.T) {
		_, err := directory.ClassifyBookings(bookings, time.Time{}, directory.PerspectiveCustomer)
		require.ErrorIs(t, err, directory.ErrInvalidArgument)
	})
}

func TestNextUpcomingBooking(t *testing.T) {
	ref := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)

	t.Run("earliest qualifying booking wins", func(t *testing.T) {
		bookings := []models.Booking{
			booking("later", ref.Add(7*24*time.Hour), models.StatusPending),
			booking("sooner", ref.Add(2*24*time.Hour), models.StatusConfirmed),
			booking("past", ref.Add(-24*time.Hour), models.StatusConfirmed),
			booking("done", ref.Add(24*time.Hour), models.StatusCompleted),
		}

		next, ok := directory.NextUpcomingBooking(bookings, "customer1", ref)
		require.True(t, ok)
		assert.Equal(t, "sooner", next.ID)
	})

	t.Run("other customers are ignored", func(t *testing.T) {
		other := booking("other", ref.Add(time.Hour), models.StatusConfirmed)
		other.CustomerID = "customer2"

		next, ok := directory.NextUpcomingBooking([]models.Booking{other}, "customer1", ref)
		assert.False(t, ok)
		assert.Nil(t, next)
	})

	t.Run("absent when nothing qualifies", func(t *testing.T) {
		bookings := []models.Booking{
			booking("past", ref.Add(-time.Hour), models.StatusConfirmed),
			booking("cancelled", ref.Add(time.Hour), models.StatusCancelled),
		}
		next, ok := directory.NextUpcomingBooking(bookings, "customer1", ref)
		assert.False(t, ok)
		assert.Nil(t, next)
	})

	t.Run("date must be strictly after the reference", func(t *testing.T) {
		exact := booking("exact", ref, models.StatusConfirmed)
		next, ok := directory.NextUpcomingBooking([]models.Booking{exact}, "customer1", ref)
		assert.False(t, ok)
		assert.Nil(t, next)
	})
}
