package directory

import (
	"fmt"
	"sort"
	"strings"

	"trimz-backend/models"
)

// Criteria is a set of independently-optional filter constraints combined
// with logical AND. A zero-value field means no constraint from that
// dimension.
type Criteria struct {
	// SearchText matches case-insensitively against the hairdresser's
	// name, business name, or any service they offer.
	SearchText string

	// MinRating is an inclusive lower bound on the aggregate rating.
	MinRating *float64

	// AvailableTodayOnly keeps only hairdressers flagged available today.
	AvailableTodayOnly bool

	// MaxDistance is an inclusive upper bound in miles. Hairdressers
	// without a known distance always match.
	MaxDistance *float64

	// City matches case-insensitively against the location city.
	City string

	// Categories keeps hairdressers offering at least one service in the
	// set. Empty means no constraint.
	Categories []models.ServiceCategory

	// RestrictToIDs limits results to the given hairdresser IDs, for
	// favorites-only or previous-only views. Nil means no restriction.
	RestrictToIDs []string
}

func (cr *Criteria) Validate() error {
	if cr.MinRating != nil && (*cr.MinRating < 0 || *cr.MinRating > 5) {
		return fmt.Errorf("%w: min rating must be within [0,5], got %.1f", ErrInvalidArgument, *cr.MinRating)
	}
	if cr.MaxDistance != nil && *cr.MaxDistance < 0 {
		return fmt.Errorf("%w: max distance must not be negative, got %.1f", ErrInvalidArgument, *cr.MaxDistance)
	}
	for _, category := range cr.Categories {
		if !category.Valid() {
			return fmt.Errorf("%w: unknown service category %q", ErrInvalidArgument, category)
		}
	}
	return nil
}

// FilterHairdressers returns the hairdressers matching all supplied
// criteria, in catalog order. Filtering never reorders; use
// SortHairdressers for ordering.
func (c *Catalog) FilterHairdressers(criteria Criteria) ([]models.Hairdresser, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	var allowed map[string]bool
	if criteria.RestrictToIDs != nil {
		allowed = make(map[string]bool, len(criteria.RestrictToIDs))
		for _, id := range criteria.RestrictToIDs {
			allowed[id] = true
		}
	}

	result := make([]models.Hairdresser, 0, len(c.hairdressers))
	for _, h := range c.hairdressers {
		if allowed != nil && !allowed[h.ID] {
			continue
		}
		if criteria.MinRating != nil && h.Rating < *criteria.MinRating {
			continue
		}
		if criteria.AvailableTodayOnly && !h.IsAvailableToday {
			continue
		}
		if criteria.MaxDistance != nil && h.Distance != nil && *h.Distance > *criteria.MaxDistance {
			continue
		}
		if criteria.City != "" && !strings.Contains(strings.ToLower(h.Location.City), strings.ToLower(criteria.City)) {
			continue
		}
		if len(criteria.Categories) > 0 && !c.offersCategory(&h, criteria.Categories) {
			continue
		}
		if criteria.SearchText != "" && !c.matchesSearch(&h, criteria.SearchText) {
			continue
		}
		result = append(result, h)
	}
	return result, nil
}

func (c *Catalog) matchesSearch(h *models.Hairdresser, text string) bool {
	needle := strings.ToLower(text)
	if strings.Contains(strings.ToLower(h.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(h.BusinessName), needle) {
		return true
	}
	for _, id := range h.ServiceIDs {
		if svc, ok := c.ServiceByID(id); ok &&
			strings.Contains(strings.ToLower(svc.Name), needle) {
			return true
		}
	}
	return false
}

func (c *Catalog) offersCategory(h *models.Hairdresser, categories []models.ServiceCategory) bool {
	for _, id := range h.ServiceIDs {
		svc, ok := c.ServiceByID(id)
		if !ok {
			continue
		}
		for _, category := range categories {
			if svc.Category == category {
				return true
			}
		}
	}
	return false
}

type SortKey string

const (
	SortByRating   SortKey = "rating"
	SortByDistance SortKey = "distance"
)

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortHairdressers returns a stably sorted copy of the list: ties keep
// their relative input order. Hairdressers without a distance sort last
// when sorting by distance.
func SortHairdressers(list []models.Hairdresser, key SortKey, direction SortDirection) ([]models.Hairdresser, error) {
	if key != SortByRating && key != SortByDistance {
		return nil, fmt.Errorf("%w: unknown sort key %q", ErrInvalidArgument, key)
	}
	if direction != Ascending && direction != Descending {
		return nil, fmt.Errorf("%w: unknown sort direction %q", ErrInvalidArgument, direction)
	}

	sorted := make([]models.Hairdresser, len(list))
	copy(sorted, list)

	less := func(a, b *models.Hairdresser) bool {
		switch key {
		case SortByDistance:
			if a.Distance == nil || b.Distance == nil {
				// Unknown distance sorts after known, either direction.
				return a.Distance != nil && b.Distance == nil
			}
			if direction == Ascending {
				return *a.Distance < *b.Distance
			}
			return *a.Distance > *b.Distance
		default:
			if direction == Ascending {
				return a.Rating < b.Rating
			}
			return a.Rating > b.Rating
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(&sorted[i], &sorted[j])
	})
	return sorted, nil
}
