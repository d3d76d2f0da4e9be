// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"trimz-backend/config"
	"trimz-backend/directory"
	"trimz-backend/models"
	"trimz-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateBookingInput defines the expected JSON structure for booking a service
type CreateBookingInput struct {
	HairdresserID string    `json:"hairdresserId" binding:"required"`
	ServiceID     string    `json:"serviceId" binding:"required"`
	Date          time.Time `json:"date" binding:"required"`
	Notes         string    `json:"notes"`
}

// UpdateBookingStatusInput defines the expected JSON structure for a
// status transition
type UpdateBookingStatusInput struct {
	Status models.BookingStatus `json:"status" binding:"required,oneof=confirmed completed cancelled"`
}

// ReviewBookingInput defines the expected JSON structure for a
// post-completion review
type ReviewBookingInput struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Review string `json:"review"`
}

// CreateBooking books a service with a hairdresser for the authenticated
// customer. The price is snapshotted from the service at booking time.
func CreateBooking(c *gin.Context) {
	personID, exists := c.Get("personId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Person ID not found in context")
		return
	}

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Date.Before(time.Now()) {
		utils.RespondWithError(c, http.StatusBadRequest, "Booking date must be in the future")
		return
	}

	hairdresser, ok := getCatalog().HairdresserByID(input.HairdresserID)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Hairdresser not found")
		return
	}

	service, ok := getCatalog().ServiceByID(input.ServiceID)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	offered := false
	for _, id := range hairdresser.ServiceIDs {
		if id == service.ID {
			offered = true
			break
		}
	}
	if !offered {
		utils.RespondWithError(c, http.StatusBadRequest, "Hairdresser does not offer this service")
		return
	}

	booking := models.Booking{
		CustomerID:    personID.(string),
		HairdresserID: hairdresser.ID,
		ServiceID:     service.ID,
		Date:          input.Date,
		Status:        models.StatusPending,
		TotalPrice:    service.Price,
		Notes:         input.Notes,
	}

	if err := booking.Validate(); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBookings returns the authenticated actor's bookings bucketed into
// today/upcoming/past. Customers see an empty today bucket with same-day
// bookings folded into upcoming.
func GetBookings(c *gin.Context) {
	personID, exists := c.Get("personId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Person ID not found in context")
		return
	}
	role, _ := c.Get("role")

	perspective := directory.PerspectiveCustomer
	column := "customer_id"
	if role == models.RoleHairdresser {
		perspective = directory.PerspectiveHairdresser
		column = "hairdresser_id"
	}

	var bookings []models.Booking
	if err := config.DB.Where(column+" = ?", personID).Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	buckets, err := directory.ClassifyBookings(bookings, time.Now(), perspective)
	if err != nil {
		respondDirectoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, buckets)
}

// GetNextBooking returns the customer's next upcoming booking, with the
// hairdresser and service resolved for the home-screen card.
func GetNextBooking(c *gin.Context) {
	personID, exists := c.Get("personId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Person ID not found in context")
		return
	}

	var bookings []models.Booking
	if err := config.DB.Where("customer_id = ?", personID).Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	next, ok := directory.NextUpcomingBooking(bookings, personID.(string), time.Now())
	if !ok {
		c.JSON(http.StatusOK, gin.H{"booking": nil})
		return
	}

	response := gin.H{"booking": next}
	if hairdresser, found := getCatalog().HairdresserByID(next.HairdresserID); found {
		response["hairdresser"] = hairdresser
	}
	if service, found := getCatalog().ServiceByID(next.ServiceID); found {
		response["service"] = service
	}

	c.JSON(http.StatusOK, response)
}

// UpdateBookingStatus moves a booking through its lifecycle. Hairdressers
// confirm, complete or decline their own bookings; customers may only
// cancel theirs.
func UpdateBookingStatus(c *gin.Context) {
	personID, exists := c.Get("personId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Person ID not found in context")
		return
	}
	role, _ := c.Get("role")

	var input UpdateBookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	switch role {
	case models.RoleHairdresser:
		if booking.HairdresserID != personID {
			utils.RespondWithError(c, http.StatusForbidden, "Not your booking")
			return
		}
	default:
		if booking.CustomerID != personID {
			utils.RespondWithError(c, http.StatusForbidden, "Not your booking")
			return
		}
		if input.Status != models.StatusCancelled {
			utils.RespondWithError(c, http.StatusForbidden, "Customers may only cancel bookings")
			return
		}
	}

	if err := booking.TransitionTo(input.Status); err != nil {
		utils.RespondWithError(c, http.StatusConflict, err.Error())
		return
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// ReviewBooking attaches a rating and review to a completed booking.
func ReviewBooking(c *gin.Context) {
	personID, exists := c.Get("personId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Person ID not found in context")
		return
	}

	var input ReviewBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if booking.CustomerID != personID {
		utils.RespondWithError(c, http.StatusForbidden, "Not your booking")
		return
	}
	if booking.Status != models.StatusCompleted {
		utils.RespondWithError(c, http.StatusConflict, "Only completed bookings can be reviewed")
		return
	}

	booking.Rating = &input.Rating
	booking.Review = input.Review

	if err := booking.Validate(); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save review")
		return
	}

	c.JSON(http.StatusOK, booking)
}
