// Package filter provides the pure filtering, selection and summary
// functions behind the browse, bookings and wedding tools screens.
package filter

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"hallbook/internal/models"
)

// AvailabilityAll disables filtering on availability
const AvailabilityAll = "all"

// VenueCriteria describes which venue predicates are active. Nil or empty
// fields are inactive; active predicates compose with logical AND.
type VenueCriteria struct {
	BudgetMax    *int   `json:"budgetMax,omitempty"`
	CapacityMin  *int   `json:"capacityMin,omitempty"`
	Availability string `json:"availability,omitempty"`
	SearchText   string `json:"searchText,omitempty"`
	Pincode      string `json:"pincode,omitempty"`
}

// IsEmpty reports whether no predicate is active
func (c VenueCriteria) IsEmpty() bool {
	return c.BudgetMax == nil &&
		c.CapacityMin == nil &&
		(c.Availability == "" || c.Availability == AvailabilityAll) &&
		c.SearchText == "" &&
		c.Pincode == ""
}

// ParseVenueCriteria extracts criteria from query parameters. Non-numeric
// budget or capacity values leave that predicate inactive.
func ParseVenueCriteria(q url.Values) VenueCriteria {
	c := VenueCriteria{
		Availability: strings.ToLower(strings.TrimSpace(q.Get("availability"))),
		SearchText:   q.Get("search"),
		Pincode:      strings.TrimSpace(q.Get("pincode")),
	}
	if c.SearchText == "" {
		c.SearchText = q.Get("search_query")
	}
	if n, ok := parseInt(q.Get("budget")); ok {
		c.BudgetMax = &n
	}
	if n, ok := parseInt(q.Get("capacity")); ok {
		c.CapacityMin = &n
	}
	return c
}

// FilterVenues returns the venues satisfying every active predicate of c,
// in their original order. With no active predicate the input is returned
// unchanged.
func FilterVenues(venues []models.Venue, c VenueCriteria) []models.Venue {
	if c.IsEmpty() {
		return venues
	}

	needle := fold(c.SearchText)
	out := make([]models.Venue, 0, len(venues))
	for _, v := range venues {
		if c.matches(v, needle) {
			out = append(out, v)
		}
	}
	return out
}

// Matches reports whether v satisfies every active predicate of c
func (c VenueCriteria) Matches(v models.Venue) bool {
	return c.matches(v, fold(c.SearchText))
}

func (c VenueCriteria) matches(v models.Venue, needle string) bool {
	if c.BudgetMax != nil && v.Price > *c.BudgetMax {
		return false
	}
	if c.CapacityMin != nil && v.Capacity < *c.CapacityMin {
		return false
	}
	if c.Availability != "" && c.Availability != AvailabilityAll &&
		v.Availability != models.Availability(c.Availability) {
		return false
	}
	if c.Pincode != "" && v.Pincode != c.Pincode {
		return false
	}
	if needle != "" &&
		!strings.Contains(fold(v.Name), needle) &&
		!strings.Contains(fold(v.Location), needle) {
		return false
	}
	return true
}

// fold applies Unicode case folding. A new Caser is used per call since
// Casers are not safe for concurrent use.
func fold(s string) string {
	if s == "" {
		return ""
	}
	return cases.Fold().String(s)
}

func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
