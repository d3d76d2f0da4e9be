// Package data seeds an empty database with the Trimz demo catalog and
// loads the directory snapshot at startup.
package data

import (
	"log"
	"os"
	"time"

	"trimz-backend/models"

	"gorm.io/gorm"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func seedServices() []models.Service {
	return []models.Service{
		{
			ID:          "1",
			Name:        "Men's Haircut",
			Description: "Classic men's haircut with styling",
			Price:       35,
			Duration:    45,
			Category:    models.CategoryHaircut,
			IsActive:    true,
		},
		{
			ID:          "2",
			Name:        "Women's Cut & Style",
			Description: "Cut and blow dry styling",
			Price:       65,
			Duration:    90,
			Category:    models.CategoryHaircut,
			IsActive:    true,
		},
		{
			ID:          "3",
			Name:        "Hair Coloring",
			Description: "Full color treatment",
			Price:       120,
			Duration:    180,
			Category:    models.CategoryColoring,
			IsActive:    true,
		},
		{
			ID:          "4",
			Name:        "Beard Trim",
			Description: "Professional beard trimming and shaping",
			Price:       25,
			Duration:    30,
			Category:    models.CategoryHaircut,
			IsActive:    true,
		},
	}
}

func weekdays(days []int, start, end string) models.AvailabilityList {
	windows := make(models.AvailabilityList, 0, len(days))
	for _, day := range days {
		windows = append(windows, models.Availability{
			DayOfWeek:   day,
			StartTime:   start,
			EndTime:     end,
			IsAvailable: true,
		})
	}
	return windows
}

func seedHairdressers() []models.Hairdresser {
	return []models.Hairdresser{
		{
			Person: models.Person{
				ID:          "1",
				Name:        "Sarah Johnson",
				Email:       "sarah@trimz.com",
				Phone:       "+1234567890",
				Avatar:      "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
				Rating:      4.8,
				ReviewCount: 127,
				CreatedAt:   time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
			},
			BusinessName: "Sarah's Style Studio",
			Bio:          "Passionate hairstylist with 8 years of experience specializing in modern cuts and color.",
			ServiceIDs:   models.StringList{"1", "2", "3"},
			Location: models.Location{
				Latitude:  40.7128,
				Longitude: -74.0060,
				Address:   "123 Main St",
				City:      "New York",
				State:     "NY",
				ZipCode:   "10001",
			},
			Availability: append(
				weekdays([]int{1, 2, 3, 4, 5}, "09:00", "17:00"),
				models.Availability{DayOfWeek: 6, StartTime: "10:00", EndTime: "16:00", IsAvailable: true},
			),
			SubscriptionPlan: models.PlanPremium,
			SocialMedia: models.SocialMedia{
				Instagram: "@sarahstyles",
				Facebook:  "SarahStyleStudio",
			},
			Portfolio: models.StringList{
				"https://images.unsplash.com/photo-1562004760-aceed7bb0fe3?w=300&h=300&fit=crop",
				"https://images.unsplash.com/photo-1595476108010-b4d1f102b1b1?w=300&h=300&fit=crop",
			},
			IsAvailableToday: true,
			Distance:         floatPtr(0.8),
		},
		{
			Person: models.Person{
				ID:          "2",
				Name:        "Marcus Williams",
				Email:       "marcus@trimz.com",
				Phone:       "+1234567891",
				Avatar:      "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
				Rating:      4.9,
				ReviewCount: 203,
				CreatedAt:   time.Date(2022, 8, 20, 0, 0, 0, 0, time.UTC),
			},
			BusinessName: "The Barber's Den",
			Bio:          "Master barber specializing in classic and modern men's cuts. 12 years of experience.",
			ServiceIDs:   models.StringList{"1", "4"},
			Location: models.Location{
				Latitude:  40.7589,
				Longitude: -73.9851,
				Address:   "456 Broadway",
				City:      "New York",
				State:     "NY",
				ZipCode:   "10013",
			},
			Availability: append(
				weekdays([]int{1, 2, 3, 4, 5}, "08:00", "18:00"),
				models.Availability{DayOfWeek: 6, StartTime: "09:00", EndTime: "17:00", IsAvailable: true},
			),
			SubscriptionPlan: models.PlanGold,
			SocialMedia: models.SocialMedia{
				Instagram: "@barbersden",
				Website:   "www.barbersden.com",
			},
			Portfolio: models.StringList{
				"https://images.unsplash.com/photo-1503951914875-452162b0f3f1?w=300&h=300&fit=crop",
				"https://images.unsplash.com/photo-1621605815971-fbc98d665033?w=300&h=300&fit=crop",
			},
			IsAvailableToday: true,
			Distance:         floatPtr(1.2),
		},
		{
			Person: models.Person{
				ID:          "3",
				Name:        "Emma Davis",
				Email:       "emma@trimz.com",
				Phone:       "+1234567892",
				Avatar:      "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
				Rating:      4.7,
				ReviewCount: 89,
				CreatedAt:   time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC),
			},
			BusinessName: "Color & Cut Co.",
			Bio:          "Creative colorist and stylist. Specializing in vibrant colors and trendy cuts.",
			ServiceIDs:   models.StringList{"2", "3"},
			Location: models.Location{
				Latitude:  40.7505,
				Longitude: -73.9934,
				Address:   "789 5th Ave",
				City:      "New York",
				State:     "NY",
				ZipCode:   "10022",
			},
			Availability: append(
				weekdays([]int{2, 3, 4, 5}, "10:00", "19:00"),
				models.Availability{DayOfWeek: 6, StartTime: "09:00", EndTime: "18:00", IsAvailable: true},
				models.Availability{DayOfWeek: 0, StartTime: "11:00", EndTime: "16:00", IsAvailable: true},
			),
			SubscriptionPlan: models.PlanBasic,
			SocialMedia: models.SocialMedia{
				Instagram: "@colorandcutco",
				TikTok:    "@emmadaviscolor",
			},
			Portfolio: models.StringList{
				"https://images.unsplash.com/photo-1560869713-7d0b29837c64?w=300&h=300&fit=crop",
				"https://images.unsplash.com/photo-1522337360788-8b13dee7a37e?w=300&h=300&fit=crop",
			},
			IsAvailableToday: false,
			Distance:         floatPtr(2.1),
		},
		{
			Person: models.Person{
				ID:          "4",
				Name:        "Alex Thompson",
				Email:       "alex@trimz.com",
				Phone:       "+1234567894",
				Avatar:      "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
				Rating:      4.6,
				ReviewCount: 156,
				CreatedAt:   time.Date(2023, 5, 12, 0, 0, 0, 0, time.UTC),
			},
			BusinessName: "Modern Cuts",
			Bio:          "Contemporary stylist with expertise in trendy cuts and styling.",
			ServiceIDs:   models.StringList{"1", "2"},
			Location: models.Location{
				Latitude:  40.7282,
				Longitude: -74.0776,
				Address:   "321 West St",
				City:      "New York",
				State:     "NY",
				ZipCode:   "10014",
			},
			Availability:     weekdays([]int{1, 2, 3, 4, 5}, "10:00", "18:00"),
			SubscriptionPlan: models.PlanPremium,
			SocialMedia: models.SocialMedia{
				Instagram: "@moderncuts",
			},
			Portfolio: models.StringList{
				"https://images.unsplash.com/photo-1605497788044-5a32c7078486?w=300&h=300&fit=crop",
			},
			IsAvailableToday: true,
			Distance:         floatPtr(1.5),
		},
	}
}

func seedCustomers() []models.Customer {
	return []models.Customer{
		{
			Person: models.Person{
				ID:          "customer1",
				Name:        "John Smith",
				Email:       "john@example.com",
				Phone:       "+1234567893",
				Avatar:      "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
				Rating:      4.5,
				ReviewCount: 12,
				CreatedAt:   time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			},
			FavoriteHairdressers: models.StringList{"1", "2"},
			PreviousHairdressers: models.StringList{"1", "2", "3"},
		},
	}
}

func seedBookings(now time.Time) []models.Booking {
	return []models.Booking{
		{
			ID:            "1",
			CustomerID:    "customer1",
			HairdresserID: "1",
			ServiceID:     "1",
			Date:          now.Add(2 * 24 * time.Hour),
			Status:        models.StatusConfirmed,
			TotalPrice:    35,
			Notes:         "Please keep it short on the sides",
		},
		{
			ID:            "2",
			CustomerID:    "customer1",
			HairdresserID: "2",
			ServiceID:     "3",
			Date:          time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			Status:        models.StatusCompleted,
			TotalPrice:    25,
			Rating:        intPtr(5),
			Review:        "Great service, very professional!",
		},
		{
			ID:            "3",
			CustomerID:    "customer1",
			HairdresserID: "3",
			ServiceID:     "2",
			Date:          now.Add(7 * 24 * time.Hour),
			Status:        models.StatusPending,
			TotalPrice:    65,
			Notes:         "Looking for a new style",
		},
	}
}

// SeedDatabase inserts the demo catalog into an empty database. Databases
// that already hold hairdressers are left untouched.
func SeedDatabase(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Hairdresser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding demo catalog")

	for _, service := range seedServices() {
		if err := db.Create(&service).Error; err != nil {
			return err
		}
	}

	hairdressers := seedHairdressers()
	for _, hairdresser := range hairdressers {
		if err := db.Create(&hairdresser).Error; err != nil {
			return err
		}
	}

	customers := seedCustomers()
	for _, customer := range customers {
		if err := db.Create(&customer).Error; err != nil {
			return err
		}
	}

	for _, booking := range seedBookings(time.Now()) {
		if err := db.Create(&booking).Error; err != nil {
			return err
		}
	}

	return seedAccounts(db, hairdressers, customers)
}

// seedAccounts creates login accounts for the demo people. Skipped unless
// SEED_PASSWORD is set; the demo never ships a hardcoded credential.
func seedAccounts(db *gorm.DB, hairdressers []models.Hairdresser, customers []models.Customer) error {
	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		log.Println("SEED_PASSWORD not set, skipping demo accounts")
		return nil
	}

	for _, h := range hairdressers {
		user := models.User{
			Email:    h.Email,
			Password: password,
			Name:     h.Name,
			Phone:    h.Phone,
			Role:     models.RoleHairdresser,
			PersonID: h.ID,
			IsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}
	for _, c := range customers {
		user := models.User{
			Email:    c.Email,
			Password: password,
			Name:     c.Name,
			Phone:    c.Phone,
			Role:     models.RoleCustomer,
			PersonID: c.ID,
			IsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}
	return nil
}
