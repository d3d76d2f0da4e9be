package data

import (
	"trimz-backend/directory"
	"trimz-backend/models"

	"gorm.io/gorm"
)

// LoadCatalog reads the full catalogs from the database and builds the
// immutable directory snapshot used by the query engine.
func LoadCatalog(db *gorm.DB) (*directory.Catalog, error) {
	var hairdressers []models.Hairdresser
	if err := db.Order("id").Find(&hairdressers).Error; err != nil {
		return nil, err
	}

	var services []models.Service
	if err := db.Order("id").Find(&services).Error; err != nil {
		return nil, err
	}

	var customers []models.Customer
	if err := db.Order("id").Find(&customers).Error; err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := db.Order("id").Find(&bookings).Error; err != nil {
		return nil, err
	}

	return directory.NewCatalog(hairdressers, services, customers, bookings)
}
