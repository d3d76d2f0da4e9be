package models_test

import (
	"testing"

	"trimz-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestFavoritesSetSemantics(t *testing.T) {
	c := models.Customer{
		FavoriteHairdressers: models.StringList{"1", "2"},
	}

	t.Run("duplicate add is a no-op", func(t *testing.T) {
		c.AddFavorite("2")
		assert.Equal(t, models.StringList{"1", "2"}, c.FavoriteHairdressers)
	})

	t.Run("new id appended", func(t *testing.T) {
		c.AddFavorite("3")
		assert.Equal(t, models.StringList{"1", "2", "3"}, c.FavoriteHairdressers)
	})

	t.Run("remove drops the id", func(t *testing.T) {
		c.RemoveFavorite("2")
		assert.Equal(t, models.StringList{"1", "3"}, c.FavoriteHairdressers)
	})

	t.Run("removing an absent id is a no-op", func(t *testing.T) {
		c.RemoveFavorite("nope")
		assert.Equal(t, models.StringList{"1", "3"}, c.FavoriteHairdressers)
	})
}

func TestAvailabilityValidate(t *testing.T) {
	valid := models.Availability{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsAvailable: true}
	assert.NoError(t, valid.Validate())

	badDay := valid
	badDay.DayOfWeek = 7
	assert.Error(t, badDay.Validate())

	badTime := valid
	badTime.StartTime = "9am"
	assert.Error(t, badTime.Validate())
}
