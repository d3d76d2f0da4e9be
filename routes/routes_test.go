package routes_test

import (
	"testing"

	"trimz-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSetupRouterRegistersRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	registered := map[string]bool{}
	for _, route := range routes.SetupRouter().Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"POST /auth/register",
		"POST /auth/login",
		"POST /auth/logout",
		"GET /auth/me",
		"GET /api/hairdressers",
		"PUT /api/hairdressers/me",
		"GET /api/hairdressers/:id",
		"GET /api/services",
		"GET /api/services/:id",
		"GET /api/bookings",
		"POST /api/bookings",
		"GET /api/bookings/next",
		"PUT /api/bookings/:id/status",
		"PUT /api/bookings/:id/review",
		"GET /api/customers/me",
		"PUT /api/customers/me",
		"GET /api/customers/me/favorites",
		"POST /api/customers/me/favorites/:id",
		"DELETE /api/customers/me/favorites/:id",
		"GET /api/customers/me/regulars",
		"GET /api/dashboard",
	}
	for _, want := range expected {
		assert.True(t, registered[want], "missing route %s", want)
	}
}
