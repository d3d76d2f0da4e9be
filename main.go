package main

import (
	"fmt"
	"log"
	"os"

	"trimz-backend/config"
	"trimz-backend/controllers"
	"trimz-backend/data"
	"trimz-backend/models"
	"trimz-backend/routes"
	"trimz-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Hairdresser{},
		&models.Service{},
		&models.Booking{},
		&models.ReminderLog{},
	)

	if err := data.SeedDatabase(config.DB); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
}

func main() {
	catalog, err := data.LoadCatalog(config.DB)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	controllers.SetCatalog(catalog)

	reminders := services.NewReminderService(config.DB)
	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
