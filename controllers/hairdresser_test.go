package controllers

import (
	"testing"

	"trimz-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestApplyHairdresserUpdate(t *testing.T) {
	base := func() models.Hairdresser {
		return models.Hairdresser{
			Person: models.Person{
				ID:    "1",
				Name:  "Sarah Johnson",
				Phone: "+15550100",
			},
			BusinessName: "Sarah's Styles",
			Bio:          "Color specialist",
		}
	}

	t.Run("only provided fields change", func(t *testing.T) {
		h := base()
		err := applyHairdresserUpdate(&h, &UpdateHairdresserInput{
			Bio: strPtr("Balayage and color"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Balayage and color", h.Bio)
		assert.Equal(t, "Sarah Johnson", h.Name)
		assert.Equal(t, "Sarah's Styles", h.BusinessName)
		assert.Equal(t, "+15550100", h.Phone)
	})

	t.Run("updates every settable field", func(t *testing.T) {
		h := base()
		available := true
		err := applyHairdresserUpdate(&h, &UpdateHairdresserInput{
			Name:         strPtr("Sarah J."),
			Phone:        strPtr("+15550199"),
			Avatar:       strPtr("https://cdn.example.com/sarah.png"),
			BusinessName: strPtr("Studio Sarah"),
			Availability: &models.AvailabilityList{
				{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsAvailable: true},
			},
			SocialMedia:      &models.SocialMedia{Instagram: "@studiosarah"},
			Portfolio:        &models.StringList{"cut1.jpg"},
			IsAvailableToday: &available,
		})
		require.NoError(t, err)
		assert.Equal(t, "Sarah J.", h.Name)
		assert.Equal(t, "+15550199", h.Phone)
		assert.Equal(t, "Studio Sarah", h.BusinessName)
		assert.Len(t, h.Availability, 1)
		assert.Equal(t, "@studiosarah", h.SocialMedia.Instagram)
		assert.Equal(t, models.StringList{"cut1.jpg"}, h.Portfolio)
		assert.True(t, h.IsAvailableToday)
	})

	t.Run("rejects invalid phone", func(t *testing.T) {
		h := base()
		err := applyHairdresserUpdate(&h, &UpdateHairdresserInput{Phone: strPtr("not-a-phone")})
		require.Error(t, err)
		assert.Equal(t, "+15550100", h.Phone)
	})

	t.Run("rejects empty business name", func(t *testing.T) {
		h := base()
		err := applyHairdresserUpdate(&h, &UpdateHairdresserInput{BusinessName: strPtr("")})
		require.Error(t, err)
		assert.Equal(t, "Sarah's Styles", h.BusinessName)
	})

	t.Run("rejects malformed availability window", func(t *testing.T) {
		h := base()
		err := applyHairdresserUpdate(&h, &UpdateHairdresserInput{
			Availability: &models.AvailabilityList{
				{DayOfWeek: 9, StartTime: "09:00", EndTime: "17:00"},
			},
		})
		require.Error(t, err)
		assert.Empty(t, h.Availability)
	})
}
