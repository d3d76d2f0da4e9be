// controllers/customer.go
package controllers

import (
	"errors"
	"net/http"

	"trimz-backend/config"
	"trimz-backend/directory"
	"trimz-backend/models"
	"trimz-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateCustomerInput defines the expected JSON structure for updating
// the authenticated customer's profile
type UpdateCustomerInput struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Avatar *string `json:"avatar"`
}

func currentCustomer(c *gin.Context) (*models.Customer, bool) {
	personID, exists := c.Get("personId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Person ID not found in context")
		return nil, false
	}

	var customer models.Customer
	if err := config.DB.First(&customer, "id = ?", personID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &customer, true
}

// GetCustomerProfile returns the authenticated customer's profile.
func GetCustomerProfile(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, customer)
}

// UpdateCustomerProfile updates the authenticated customer's profile.
func UpdateCustomerProfile(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Update fields if provided
	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		customer.Phone = *input.Phone
	}
	if input.Avatar != nil {
		customer.Avatar = *input.Avatar
	}

	if err := config.DB.Save(customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// AddFavorite marks a hairdresser as a favorite of the authenticated
// customer. Adding an existing favorite is a no-op.
func AddFavorite(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}

	hairdresserID := c.Param("id")
	if _, found := getCatalog().HairdresserByID(hairdresserID); !found {
		utils.RespondWithError(c, http.StatusNotFound, "Hairdresser not found")
		return
	}

	customer.AddFavorite(hairdresserID)
	if err := config.DB.Save(customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update favorites")
		return
	}

	c.JSON(http.StatusOK, gin.H{"favoriteHairdressers": customer.FavoriteHairdressers})
}

// RemoveFavorite removes a hairdresser from the customer's favorites.
func RemoveFavorite(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}

	customer.RemoveFavorite(c.Param("id"))
	if err := config.DB.Save(customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update favorites")
		return
	}

	c.JSON(http.StatusOK, gin.H{"favoriteHairdressers": customer.FavoriteHairdressers})
}

// GetFavorites returns the customer's favorite hairdressers.
func GetFavorites(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}

	result, err := getCatalog().FilterHairdressers(directory.Criteria{
		RestrictToIDs: customer.FavoriteHairdressers,
	})
	if err != nil {
		respondDirectoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"hairdressers": result})
}

// GetRegulars returns the deduplicated union of the customer's favorite
// and previously-used hairdressers.
func GetRegulars(c *gin.Context) {
	customer, ok := currentCustomer(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"hairdressers": getCatalog().RegularHairdressers(customer)})
}
