// controllers/hairdresser.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"trimz-backend/config"
	"trimz-backend/directory"
	"trimz-backend/models"
	"trimz-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateHairdresserInput defines the expected JSON structure for updating
// the authenticated hairdresser's profile
type UpdateHairdresserInput struct {
	Name             *string                  `json:"name"`
	Phone            *string                  `json:"phone"`
	Avatar           *string                  `json:"avatar"`
	BusinessName     *string                  `json:"businessName"`
	Bio              *string                  `json:"bio"`
	Availability     *models.AvailabilityList `json:"availability"`
	SocialMedia      *models.SocialMedia      `json:"socialMedia"`
	Portfolio        *models.StringList       `json:"portfolio"`
	IsAvailableToday *bool                    `json:"isAvailableToday"`
}

// GetHairdressers lists the hairdresser directory, filtered and sorted by
// query parameters: search, minRating, availableToday, maxDistance, city,
// categories (comma-separated), sortBy (rating|distance), sortDir (asc|desc).
func GetHairdressers(c *gin.Context) {
	criteria, err := criteriaFromQuery(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := getCatalog().FilterHairdressers(criteria)
	if err != nil {
		respondDirectoryError(c, err)
		return
	}

	if sortBy := c.Query("sortBy"); sortBy != "" {
		direction := directory.Descending
		if dir := c.Query("sortDir"); dir != "" {
			direction = directory.SortDirection(dir)
		}
		result, err = directory.SortHairdressers(result, directory.SortKey(sortBy), direction)
		if err != nil {
			respondDirectoryError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"count":        len(result),
		"hairdressers": result,
	})
}

func criteriaFromQuery(c *gin.Context) (directory.Criteria, error) {
	criteria := directory.Criteria{
		SearchText: c.Query("search"),
		City:       c.Query("city"),
	}

	if raw := c.Query("minRating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return criteria, errors.New("minRating must be a number")
		}
		criteria.MinRating = &rating
	}
	if raw := c.Query("maxDistance"); raw != "" {
		distance, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return criteria, errors.New("maxDistance must be a number")
		}
		criteria.MaxDistance = &distance
	}
	if raw := c.Query("availableToday"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			return criteria, errors.New("availableToday must be a boolean")
		}
		criteria.AvailableTodayOnly = available
	}
	if raw := c.Query("categories"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			criteria.Categories = append(criteria.Categories, models.ServiceCategory(strings.TrimSpace(part)))
		}
	}

	return criteria, nil
}

// GetHairdresser retrieves a single hairdresser by ID.
func GetHairdresser(c *gin.Context) {
	hairdresser, ok := getCatalog().HairdresserByID(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Hairdresser not found")
		return
	}

	// Resolve the offered services for the profile screen.
	services := make([]models.Service, 0, len(hairdresser.ServiceIDs))
	for _, id := range hairdresser.ServiceIDs {
		if svc, found := getCatalog().ServiceByID(id); found {
			services = append(services, *svc)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"hairdresser": hairdresser,
		"services":    services,
	})
}

// UpdateHairdresserProfile updates the authenticated hairdresser's profile.
func UpdateHairdresserProfile(c *gin.Context) {
	personID, exists := c.Get("personId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Person ID not found in context")
		return
	}

	var hairdresser models.Hairdresser
	if err := config.DB.First(&hairdresser, "id = ?", personID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Hairdresser not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input UpdateHairdresserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := applyHairdresserUpdate(&hairdresser, &input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := config.DB.Save(&hairdresser).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update hairdresser")
		return
	}

	// Directory lookups serve from the catalog snapshot, so the edit has
	// to be folded back in.
	if err := RefreshCatalog(); err != nil {
		log.Printf("[CATALOG] refresh after profile update failed: %v", err)
	}

	c.JSON(http.StatusOK, hairdresser)
}

func applyHairdresserUpdate(h *models.Hairdresser, input *UpdateHairdresserInput) error {
	if input.Name != nil {
		h.Name = *input.Name
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			return errors.New("invalid phone number format")
		}
		h.Phone = *input.Phone
	}
	if input.Avatar != nil {
		h.Avatar = *input.Avatar
	}
	if input.BusinessName != nil {
		if *input.BusinessName == "" {
			return errors.New("business name cannot be empty")
		}
		h.BusinessName = *input.BusinessName
	}
	if input.Bio != nil {
		h.Bio = *input.Bio
	}
	if input.Availability != nil {
		for _, window := range *input.Availability {
			if err := window.Validate(); err != nil {
				return err
			}
		}
		h.Availability = *input.Availability
	}
	if input.SocialMedia != nil {
		h.SocialMedia = *input.SocialMedia
	}
	if input.Portfolio != nil {
		h.Portfolio = *input.Portfolio
	}
	if input.IsAvailableToday != nil {
		h.IsAvailableToday = *input.IsAvailableToday
	}
	return nil
}

func respondDirectoryError(c *gin.Context, err error) {
	if errors.Is(err, directory.ErrInvalidArgument) {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithError(c, http.StatusInternalServerError, "Query failed")
}
