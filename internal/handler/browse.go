package handler

import (
	"hallbook/internal/catalog"
	"hallbook/internal/filter"
	"hallbook/internal/models"
)

// VenueDetail is a venue with its pin position on the map view
type VenueDetail struct {
	models.Venue
	Pin catalog.PinPosition `json:"pin"`
}

// BrowseController serves the venue and service catalog screens and holds
// the venue selected for detail display
type BrowseController struct {
	deps      Deps
	bounds    catalog.MapBounds
	selection filter.Selection
}

func NewBrowseController(deps Deps) *BrowseController {
	return &BrowseController{
		deps:   deps,
		bounds: catalog.DefaultMapBounds,
	}
}

// Venues returns the catalog venues matching criteria, in catalog order
func (c *BrowseController) Venues(criteria filter.VenueCriteria) []models.Venue {
	return filter.FilterVenues(c.deps.Catalog.ListVenues(), criteria)
}

// Venue returns the detail view of one venue
func (c *BrowseController) Venue(id string) (VenueDetail, bool) {
	v, ok := c.deps.Catalog.Venue(id)
	if !ok {
		return VenueDetail{}, false
	}
	return c.detail(v), true
}

// Services returns every service category
func (c *BrowseController) Services() []models.ServiceCategory {
	return c.deps.Catalog.ListServiceCategories()
}

// Select makes the venue with the given id the selection. An empty id
// clears it; an unknown id is a no-op.
func (c *BrowseController) Select(id string) (VenueDetail, bool) {
	if id == "" {
		c.selection.Select(nil)
		return VenueDetail{}, true
	}
	v, ok := c.deps.Catalog.Venue(id)
	if !ok {
		return VenueDetail{}, false
	}
	c.selection.Select(&v)
	return c.detail(v), true
}

// Selected returns the selected venue, if any
func (c *BrowseController) Selected() (VenueDetail, bool) {
	v, ok := c.selection.Selected()
	if !ok {
		return VenueDetail{}, false
	}
	return c.detail(v), true
}

func (c *BrowseController) detail(v models.Venue) VenueDetail {
	return VenueDetail{Venue: v, Pin: c.bounds.Project(v.Coordinates)}
}
