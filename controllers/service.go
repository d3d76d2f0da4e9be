// controllers/service.go
package controllers

import (
	"net/http"

	"trimz-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetServices lists the service catalog.
func GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, getCatalog().Services())
}

// GetService retrieves a specific service by ID.
func GetService(c *gin.Context) {
	service, ok := getCatalog().ServiceByID(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}
	c.JSON(http.StatusOK, service)
}
