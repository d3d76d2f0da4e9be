// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"trimz-backend/config"
	"trimz-backend/directory"
	"trimz-backend/models"
	"trimz-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardOverview returns the hairdresser's dashboard stats: today's
// bookings, this week's booking count, rating and review count.
func GetDashboardOverview(c *gin.Context) {
	personID, exists := c.Get("personId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Person ID not found in context")
		return
	}

	hairdresser, ok := getCatalog().HairdresserByID(personID.(string))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Hairdresser not found")
		return
	}

	var bookings []models.Booking
	if err := config.DB.Where("hairdresser_id = ?", personID).Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	now := time.Now()
	buckets, err := directory.ClassifyBookings(bookings, now, directory.PerspectiveHairdresser)
	if err != nil {
		respondDirectoryError(c, err)
		return
	}

	// Bookings in the 7 days starting today.
	weekEnd := utils.BeginningOfDay(now).AddDate(0, 0, 7)
	weekCount := len(buckets.Today)
	for _, b := range buckets.Upcoming {
		if b.Date.Before(weekEnd) {
			weekCount++
		}
	}

	// Resolve customers and services for today's schedule cards.
	type scheduleEntry struct {
		Booking  models.Booking  `json:"booking"`
		Customer *models.Person  `json:"customer,omitempty"`
		Service  *models.Service `json:"service,omitempty"`
	}
	schedule := make([]scheduleEntry, 0, len(buckets.Today))
	for _, b := range buckets.Today {
		entry := scheduleEntry{Booking: b}
		if customer, found := getCatalog().CustomerByID(b.CustomerID); found {
			entry.Customer = &customer.Person
		}
		if service, found := getCatalog().ServiceByID(b.ServiceID); found {
			entry.Service = service
		}
		schedule = append(schedule, entry)
	}

	c.JSON(http.StatusOK, gin.H{
		"todayBookings": len(buckets.Today),
		"weekBookings":  weekCount,
		"rating":        hairdresser.Rating,
		"reviewCount":   hairdresser.ReviewCount,
		"schedule":      schedule,
	})
}
