// Package catalog holds the read-only reference data: venues, service
// categories, FAQs and the first-run templates for every persisted slot.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"

	"github.com/goccy/go-yaml"

	"hallbook/internal/models"
)

//go:embed catalog.yaml
var embedded []byte

// Templates are the documents substituted when a slot is missing or corrupt
type Templates struct {
	User     models.UserProfile     `yaml:"user"`
	Budget   models.BudgetPlan      `yaml:"budget"`
	Guests   []models.Guest         `yaml:"guests"`
	Timeline []models.TimelineEvent `yaml:"timeline"`
}

type document struct {
	Venues    []models.Venue           `yaml:"venues"`
	Services  []models.ServiceCategory `yaml:"services"`
	FAQs      []models.FAQ             `yaml:"faqs"`
	Templates Templates                `yaml:"templates"`
}

// Catalog is an immutable reference data set. Every accessor returns a copy.
type Catalog struct {
	doc     document
	venueIx map[string]int
}

// New returns the catalog built from the embedded reference data
func New() (*Catalog, error) {
	return Load(embedded)
}

// MustNew is like New but panics if the embedded data is invalid
func MustNew() *Catalog {
	c, err := New()
	if err != nil {
		panic(err)
	}
	return c
}

// Load parses a catalog YAML document
func Load(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	ix := make(map[string]int, len(doc.Venues))
	for i, v := range doc.Venues {
		if v.ID == "" {
			return nil, fmt.Errorf("venue %d has no id", i)
		}
		if _, dup := ix[v.ID]; dup {
			return nil, fmt.Errorf("duplicate venue id %q", v.ID)
		}
		ix[v.ID] = i
	}

	return &Catalog{doc: doc, venueIx: ix}, nil
}

// ListVenues returns every venue in catalog order
func (c *Catalog) ListVenues() []models.Venue {
	out := make([]models.Venue, len(c.doc.Venues))
	for i, v := range c.doc.Venues {
		out[i] = copyVenue(v)
	}
	return out
}

// Venue looks a venue up by id
func (c *Catalog) Venue(id string) (models.Venue, bool) {
	i, ok := c.venueIx[id]
	if !ok {
		return models.Venue{}, false
	}
	return copyVenue(c.doc.Venues[i]), true
}

// ListServiceCategories returns every service category in catalog order
func (c *Catalog) ListServiceCategories() []models.ServiceCategory {
	out := make([]models.ServiceCategory, len(c.doc.Services))
	for i, s := range c.doc.Services {
		out[i] = copyServiceCategory(s)
	}
	return out
}

// ServiceCategory looks a service category up by id
func (c *Catalog) ServiceCategory(id string) (models.ServiceCategory, bool) {
	for _, s := range c.doc.Services {
		if s.ID == id {
			return copyServiceCategory(s), true
		}
	}
	return models.ServiceCategory{}, false
}

func (c *Catalog) FAQs() []models.FAQ {
	return slices.Clone(c.doc.FAQs)
}

// DefaultUser returns a fresh copy of the first-run profile
func (c *Catalog) DefaultUser() models.UserProfile {
	u := c.doc.Templates.User
	u.Bookings = slices.Clone(u.Bookings)
	if u.Bookings == nil {
		u.Bookings = []string{}
	}
	return u
}

// DefaultBudget returns a fresh copy of the first-run budget
func (c *Catalog) DefaultBudget() models.BudgetPlan {
	b := c.doc.Templates.Budget
	b.Categories = slices.Clone(b.Categories)
	return b
}

// DefaultGuests returns a fresh copy of the first-run guest list
func (c *Catalog) DefaultGuests() []models.Guest {
	g := slices.Clone(c.doc.Templates.Guests)
	if g == nil {
		g = []models.Guest{}
	}
	return g
}

// DefaultTimeline returns a fresh copy of the first-run timeline
func (c *Catalog) DefaultTimeline() []models.TimelineEvent {
	t := slices.Clone(c.doc.Templates.Timeline)
	if t == nil {
		t = []models.TimelineEvent{}
	}
	return t
}

func copyVenue(v models.Venue) models.Venue {
	v.Images = slices.Clone(v.Images)
	v.Amenities = slices.Clone(v.Amenities)
	return v
}

func copyServiceCategory(s models.ServiceCategory) models.ServiceCategory {
	providers := make([]models.Provider, len(s.Providers))
	for i, p := range s.Providers {
		p.Menu = slices.Clone(p.Menu)
		p.Services = slices.Clone(p.Services)
		providers[i] = p
	}
	s.Providers = providers
	return s
}
