package handler

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"hallbook/internal/filter"
	"hallbook/internal/logging"
	"hallbook/internal/models"
	"hallbook/internal/storage"
)

// GuestsController manages the wedding guest list
type GuestsController struct {
	deps      Deps
	cfg       Config
	messenger Messenger
	log       zerolog.Logger
}

// NewGuestsController creates a new guest list controller. messenger may be
// nil, in which case invitations are unavailable.
func NewGuestsController(deps Deps, cfg Config, messenger Messenger) *GuestsController {
	return &GuestsController{
		deps:      deps,
		cfg:       cfg,
		messenger: messenger,
		log:       logging.Component(deps.Log, "guests"),
	}
}

// List returns the persisted guest list
func (c *GuestsController) List(ctx context.Context) []models.Guest {
	return storage.Load(ctx, c.deps.Store, storage.SlotGuestList, c.deps.Catalog.DefaultGuests())
}

// Stats summarizes the persisted guest list
func (c *GuestsController) Stats(ctx context.Context) filter.GuestStats {
	return filter.SummarizeGuests(c.List(ctx))
}

// Add appends a new guest. It is a no-op when name or relation is blank.
// Every successful call appends a distinct record, even for identical input.
func (c *GuestsController) Add(ctx context.Context, in models.NewGuest) (models.Guest, bool) {
	name := strings.TrimSpace(in.Name)
	relation := strings.TrimSpace(in.Relation)
	if name == "" || relation == "" {
		return models.Guest{}, false
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = models.DefaultGuestCategory
	}
	guest := models.Guest{
		ID:       c.deps.IDs.Guest(),
		Name:     name,
		Relation: relation,
		Phone:    strings.TrimSpace(in.Phone),
		Address:  strings.TrimSpace(in.Address),
		Category: category,
	}

	_, changed, err := storage.Update(ctx, c.deps.Store, storage.SlotGuestList, c.deps.Catalog.DefaultGuests(),
		func(guests []models.Guest) ([]models.Guest, bool) {
			return append(guests, guest), true
		})
	if !applied(c.log, changed, err, "add guest") {
		return models.Guest{}, false
	}

	c.log.Info().Str("guest_id", guest.ID).Str("name", guest.Name).Msg("Guest added")
	return guest, true
}

// Toggle flips field on the guest with the given id. Unknown ids and fields
// leave the list unchanged. The returned list is the current state either way.
func (c *GuestsController) Toggle(ctx context.Context, id string, field models.GuestField) ([]models.Guest, bool) {
	if !field.Valid() {
		return c.List(ctx), false
	}

	guests, changed, err := storage.Update(ctx, c.deps.Store, storage.SlotGuestList, c.deps.Catalog.DefaultGuests(),
		func(guests []models.Guest) ([]models.Guest, bool) {
			i := slices.IndexFunc(guests, func(g models.Guest) bool { return g.ID == id })
			if i < 0 {
				return guests, false
			}
			guests = slices.Clone(guests)
			switch field {
			case models.GuestInvited:
				guests[i].Invited = !guests[i].Invited
			case models.GuestConfirmed:
				guests[i].Confirmed = !guests[i].Confirmed
			}
			return guests, true
		})
	return guests, applied(c.log, changed, err, "toggle guest")
}

// Invite sends a wedding invitation to the guest and marks them invited
func (c *GuestsController) Invite(ctx context.Context, id string) (models.Guest, error) {
	if c.messenger == nil {
		return models.Guest{}, ErrNoMessenger
	}

	guests := c.List(ctx)
	i := slices.IndexFunc(guests, func(g models.Guest) bool { return g.ID == id })
	if i < 0 {
		return models.Guest{}, ErrGuestNotFound
	}
	guest := guests[i]
	if guest.Phone == "" {
		return models.Guest{}, ErrNoPhone
	}

	req := models.InvitationRequest{
		PhoneNumber: guest.Phone,
		Name:        guest.Name,
		Message:     c.invitationMessage(guest.Name),
	}
	if err := c.messenger.SendMessage(ctx, req.PhoneNumber, req.Message); err != nil {
		return models.Guest{}, fmt.Errorf("failed to send invitation: %w", err)
	}

	guest, ok := c.setFlags(ctx, id, func(g *models.Guest) { g.Invited = true })
	if !ok {
		return guest, fmt.Errorf("invitation sent but guest %s was not updated", id)
	}
	c.log.Info().Str("guest_id", id).Msg("Invitation sent")
	return guest, nil
}

func (c *GuestsController) invitationMessage(name string) string {
	return fmt.Sprintf(
		"🎉 *Wedding Invitation*\n\n"+
			"Dear %s,\n\n"+
			"You are cordially invited to celebrate the wedding of\n\n"+
			"*%s* & *%s*\n\n"+
			"📅 Date: %s\n"+
			"📍 Location: %s\n\n"+
			"Reply with:\n✅ *YES* to accept\n❌ *NO* to decline",
		name, c.cfg.BrideName, c.cfg.GroomName, c.cfg.WeddingDate, c.cfg.WeddingLocation,
	)
}

// setFlags applies fn to the guest with the given id and persists the list
func (c *GuestsController) setFlags(ctx context.Context, id string, fn func(*models.Guest)) (models.Guest, bool) {
	var out models.Guest
	_, changed, err := storage.Update(ctx, c.deps.Store, storage.SlotGuestList, c.deps.Catalog.DefaultGuests(),
		func(guests []models.Guest) ([]models.Guest, bool) {
			i := slices.IndexFunc(guests, func(g models.Guest) bool { return g.ID == id })
			if i < 0 {
				return guests, false
			}
			guests = slices.Clone(guests)
			fn(&guests[i])
			out = guests[i]
			return guests, true
		})
	return out, applied(c.log, changed, err, "update guest")
}
