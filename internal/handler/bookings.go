package handler

import (
	"context"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"hallbook/internal/filter"
	"hallbook/internal/logging"
	"hallbook/internal/models"
	"hallbook/internal/storage"
)

// BookingsController creates and lists venue bookings
type BookingsController struct {
	deps Deps
	log  zerolog.Logger
	now  func() time.Time
}

func NewBookingsController(deps Deps) *BookingsController {
	return &BookingsController{
		deps: deps,
		log:  logging.Component(deps.Log, "bookings"),
		now:  time.Now,
	}
}

// List returns the persisted bookings shown under tab
func (c *BookingsController) List(ctx context.Context, tab string) []models.Booking {
	return filter.FilterBookings(c.all(ctx), tab)
}

// Get looks a booking up by id
func (c *BookingsController) Get(ctx context.Context, id string) (models.Booking, bool) {
	bookings := c.all(ctx)
	i := slices.IndexFunc(bookings, func(b models.Booking) bool { return b.ID == id })
	if i < 0 {
		return models.Booking{}, false
	}
	return bookings[i], true
}

// Create books a catalog venue. The venue name and location and the service
// prices are copied into the booking; the total is the venue price plus the
// service prices. Unknown venues, negative prices and negative guest counts
// are no-ops.
func (c *BookingsController) Create(ctx context.Context, req models.BookingRequest) (models.Booking, bool) {
	venue, ok := c.deps.Catalog.Venue(req.VenueID)
	if !ok || req.GuestCount < 0 {
		return models.Booking{}, false
	}

	total := venue.Price
	for _, s := range req.Services {
		if s.Price < 0 {
			return models.Booking{}, false
		}
		total += s.Price
	}

	booking := models.Booking{
		ID:              c.deps.IDs.Booking(),
		VenueID:         venue.ID,
		VenueName:       venue.Name,
		VenueLocation:   venue.Location,
		Status:          models.BookingPending,
		EventDate:       req.EventDate,
		BookingDate:     c.now().UTC(),
		GuestCount:      req.GuestCount,
		TotalAmount:     total,
		Services:        slices.Clone(req.Services),
		SpecialRequests: req.SpecialRequests,
	}

	_, changed, err := storage.Update(ctx, c.deps.Store, storage.SlotUserBookings, []models.Booking{},
		func(bookings []models.Booking) ([]models.Booking, bool) {
			return append(bookings, booking), true
		})
	if !applied(c.log, changed, err, "create booking") {
		return models.Booking{}, false
	}

	_, changed, err = storage.Update(ctx, c.deps.Store, storage.SlotCurrentUser, c.deps.Catalog.DefaultUser(),
		func(u models.UserProfile) (models.UserProfile, bool) {
			u.Bookings = append(slices.Clone(u.Bookings), booking.ID)
			return u, true
		})
	applied(c.log, changed, err, "link booking to profile")

	c.log.Info().
		Str("booking_id", booking.ID).
		Str("venue_id", venue.ID).
		Int("total", total).
		Msg("Booking created")
	return booking, true
}

// UpdateStatus moves a booking to status. Unknown ids and statuses are no-ops.
func (c *BookingsController) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (models.Booking, bool) {
	if !status.Valid() {
		return models.Booking{}, false
	}

	var out models.Booking
	_, changed, err := storage.Update(ctx, c.deps.Store, storage.SlotUserBookings, []models.Booking{},
		func(bookings []models.Booking) ([]models.Booking, bool) {
			i := slices.IndexFunc(bookings, func(b models.Booking) bool { return b.ID == id })
			if i < 0 {
				return bookings, false
			}
			bookings = slices.Clone(bookings)
			bookings[i].Status = status
			out = bookings[i]
			return bookings, true
		})
	if !applied(c.log, changed, err, "update booking status") {
		return models.Booking{}, false
	}

	c.log.Info().Str("booking_id", id).Str("status", string(status)).Msg("Booking status updated")
	return out, true
}

func (c *BookingsController) all(ctx context.Context) []models.Booking {
	return storage.Load(ctx, c.deps.Store, storage.SlotUserBookings, []models.Booking{})
}
