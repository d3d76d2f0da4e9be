package routes

import (
	"os"
	"strings"

	"trimz-backend/config"
	"trimz-backend/controllers"
	"trimz-backend/models"
	"trimz-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000", "http://localhost:8081"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.POST("/logout", controllers.Logout)
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Hairdresser directory
		hairdressers := api.Group("/hairdressers")
		{
			hairdressers.GET("", controllers.GetHairdressers)
			hairdressers.PUT("/me", utils.RequireRole(models.RoleHairdresser), controllers.UpdateHairdresserProfile)
			hairdressers.GET("/:id", controllers.GetHairdresser)
		}

		// Service catalog
		services := api.Group("/services")
		{
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
		}

		// Booking routes
		bookings := api.Group("/bookings")
		{
			bookings.GET("", controllers.GetBookings)
			bookings.POST("", utils.RequireRole(models.RoleCustomer), controllers.CreateBooking)
			bookings.GET("/next", utils.RequireRole(models.RoleCustomer), controllers.GetNextBooking)
			bookings.PUT("/:id/status", controllers.UpdateBookingStatus)
			bookings.PUT("/:id/review", utils.RequireRole(models.RoleCustomer), controllers.ReviewBooking)
		}

		// Customer routes
		customers := api.Group("/customers/me", utils.RequireRole(models.RoleCustomer))
		{
			customers.GET("", controllers.GetCustomerProfile)
			customers.PUT("", controllers.UpdateCustomerProfile)
			customers.GET("/favorites", controllers.GetFavorites)
			customers.POST("/favorites/:id", controllers.AddFavorite)
			customers.DELETE("/favorites/:id", controllers.RemoveFavorite)
			customers.GET("/regulars", controllers.GetRegulars)
		}

		// Dashboard routes
		api.GET("/dashboard", utils.RequireRole(models.RoleHairdresser), controllers.GetDashboardOverview)
	}

	return r
}
