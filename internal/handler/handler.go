// Package handler holds one controller per screen. Controllers re-read their
// slot on every call and apply mutations as a single locked read-modify-write.
// Invalid input and missing references are silent no-ops reported as false.
package handler

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"hallbook/internal/catalog"
	"hallbook/internal/ids"
	"hallbook/internal/storage"
)

var (
	ErrNoMessenger   = errors.New("no messenger configured")
	ErrGuestNotFound = errors.New("guest not found")
	ErrNoPhone       = errors.New("guest has no phone number")
)

// Messenger delivers a text message to a phone number
type Messenger interface {
	SendMessage(ctx context.Context, phoneNumber, message string) error
}

// Config carries the wedding details used in invitation messages
type Config struct {
	WeddingDate     string
	WeddingLocation string
	BrideName       string
	GroomName       string
}

// Deps are the collaborators shared by every controller
type Deps struct {
	Catalog *catalog.Catalog
	Store   *storage.Store
	IDs     *ids.Generator
	Log     zerolog.Logger
}

// Controllers bundles the per-screen controllers over one set of Deps
type Controllers struct {
	Browse   *BrowseController
	Bookings *BookingsController
	Guests   *GuestsController
	Timeline *TimelineController
	Budget   *BudgetController
	Profile  *ProfileController
	Tickets  *TicketsController
}

// New builds every controller. messenger may be nil.
func New(deps Deps, cfg Config, messenger Messenger) *Controllers {
	if deps.IDs == nil {
		deps.IDs = ids.New()
	}
	return &Controllers{
		Browse:   NewBrowseController(deps),
		Bookings: NewBookingsController(deps),
		Guests:   NewGuestsController(deps, cfg, messenger),
		Timeline: NewTimelineController(deps),
		Budget:   NewBudgetController(deps),
		Profile:  NewProfileController(deps),
		Tickets:  NewTicketsController(deps),
	}
}

// applied logs a failed write and reports whether the mutation took effect
func applied(log zerolog.Logger, changed bool, err error, action string) bool {
	if err != nil {
		log.Error().Err(err).Str("action", action).Msg("Failed to persist change")
		return false
	}
	return changed
}
