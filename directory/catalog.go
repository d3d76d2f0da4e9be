// Package directory answers read-only queries over the seeded catalogs of
// hairdressers, services, customers and bookings: lookups by ID, hairdresser
// discovery via filter criteria, and booking classification into temporal
// buckets. All operations are pure functions over in-memory data; the
// catalogs are never mutated after construction.
package directory

import (
	"fmt"
	"log"

	"trimz-backend/models"
)

// Catalog holds one immutable snapshot of the seeded entities, indexed by ID.
type Catalog struct {
	hairdressers []models.Hairdresser
	services     []models.Service
	customers    []models.Customer
	bookings     []models.Booking

	hairdresserIndex map[string]int
	serviceIndex     map[string]int
	customerIndex    map[string]int
	bookingIndex     map[string]int
}

// NewCatalog builds an indexed catalog and validates the entity invariants.
// Bookings referencing a missing customer, hairdresser or service are kept
// but logged; lookups of the missing side simply come back absent.
func NewCatalog(hairdressers []models.Hairdresser, services []models.Service, customers []models.Customer, bookings []models.Booking) (*Catalog, error) {
	c := &Catalog{
		hairdressers:     hairdressers,
		services:         services,
		customers:        customers,
		bookings:         bookings,
		hairdresserIndex: make(map[string]int, len(hairdressers)),
		serviceIndex:     make(map[string]int, len(services)),
		customerIndex:    make(map[string]int, len(customers)),
		bookingIndex:     make(map[string]int, len(bookings)),
	}

	for i := range hairdressers {
		if err := hairdressers[i].Validate(); err != nil {
			return nil, fmt.Errorf("hairdresser %s: %w", hairdressers[i].ID, err)
		}
		c.hairdresserIndex[hairdressers[i].ID] = i
	}
	for i := range services {
		if err := services[i].Validate(); err != nil {
			return nil, fmt.Errorf("service %s: %w", services[i].ID, err)
		}
		c.serviceIndex[services[i].ID] = i
	}
	for i := range customers {
		if err := customers[i].Validate(); err != nil {
			return nil, fmt.Errorf("customer %s: %w", customers[i].ID, err)
		}
		c.customerIndex[customers[i].ID] = i
	}
	for i := range bookings {
		if err := bookings[i].Validate(); err != nil {
			return nil, fmt.Errorf("booking %s: %w", bookings[i].ID, err)
		}
		c.bookingIndex[bookings[i].ID] = i
		c.logDanglingRefs(&bookings[i])
	}

	return c, nil
}

func (c *Catalog) logDanglingRefs(b *models.Booking) {
	if _, ok := c.customerIndex[b.CustomerID]; !ok {
		log.Printf("booking %s references missing customer %s", b.ID, b.CustomerID)
	}
	if _, ok := c.hairdresserIndex[b.HairdresserID]; !ok {
		log.Printf("booking %s references missing hairdresser %s", b.ID, b.HairdresserID)
	}
	if _, ok := c.serviceIndex[b.ServiceID]; !ok {
		log.Printf("booking %s references missing service %s", b.ID, b.ServiceID)
	}
}

// HairdresserByID returns the hairdresser with the given ID, or false when
// absent. Absence is a normal result, not an error.
func (c *Catalog) HairdresserByID(id string) (*models.Hairdresser, bool) {
	i, ok := c.hairdresserIndex[id]
	if !ok {
		return nil, false
	}
	return &c.hairdressers[i], true
}

func (c *Catalog) ServiceByID(id string) (*models.Service, bool) {
	i, ok := c.serviceIndex[id]
	if !ok {
		return nil, false
	}
	return &c.services[i], true
}

func (c *Catalog) CustomerByID(id string) (*models.Customer, bool) {
	i, ok := c.customerIndex[id]
	if !ok {
		return nil, false
	}
	return &c.customers[i], true
}

func (c *Catalog) BookingByID(id string) (*models.Booking, bool) {
	i, ok := c.bookingIndex[id]
	if !ok {
		return nil, false
	}
	return &c.bookings[i], true
}

// Hairdressers returns the full catalog in seed order.
func (c *Catalog) Hairdressers() []models.Hairdresser {
	return c.hairdressers
}

func (c *Catalog) Services() []models.Service {
	return c.services
}

func (c *Catalog) Bookings() []models.Booking {
	return c.bookings
}

// RegularHairdressers resolves the deduplicated union of a customer's
// favorite and previously-used hairdresser IDs against the catalog,
// silently dropping IDs that no longer resolve. Result keeps catalog order.
func (c *Catalog) RegularHairdressers(customer *models.Customer) []models.Hairdresser {
	regular := make(map[string]bool, len(customer.FavoriteHairdressers)+len(customer.PreviousHairdressers))
	for _, id := range customer.FavoriteHairdressers {
		regular[id] = true
	}
	for _, id := range customer.PreviousHairdressers {
		regular[id] = true
	}

	var result []models.Hairdresser
	for _, h := range c.hairdressers {
		if regular[h.ID] {
			result = append(result, h)
		}
	}
	return result
}
