package handler

import (
	"context"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"hallbook/internal/logging"
	"hallbook/internal/models"
	"hallbook/internal/storage"
)

// ProfileController manages the single user profile. Edits are staged in a
// buffer and only reach the store on Commit.
type ProfileController struct {
	deps Deps
	log  zerolog.Logger

	mu     sync.Mutex
	buffer *models.UserProfile
}

func NewProfileController(deps Deps) *ProfileController {
	return &ProfileController{
		deps: deps,
		log:  logging.Component(deps.Log, "profile"),
	}
}

// Profile returns the persisted profile
func (c *ProfileController) Profile(ctx context.Context) models.UserProfile {
	return storage.Load(ctx, c.deps.Store, storage.SlotCurrentUser, c.deps.Catalog.DefaultUser())
}

// BeginEdit starts a new edit buffer from the persisted profile, replacing
// any edit in progress
func (c *ProfileController) BeginEdit(ctx context.Context) models.UserProfile {
	p := c.Profile(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	buf := p
	buf.Bookings = slices.Clone(p.Bookings)
	c.buffer = &buf
	return p
}

// Editing returns the edit buffer, if an edit is in progress
func (c *ProfileController) Editing() (models.UserProfile, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.buffer == nil {
		return models.UserProfile{}, false
	}
	return *c.buffer, true
}

// Stage applies changes to the edit buffer. It is a no-op when no edit is in
// progress.
func (c *ProfileController) Stage(changes models.ProfileChanges) (models.UserProfile, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.buffer == nil {
		return models.UserProfile{}, false
	}
	next := changes.Apply(*c.buffer)
	c.buffer = &next
	return next, true
}

// Commit replaces the persisted profile with the edit buffer and ends the
// edit. It is a no-op when no edit is in progress.
func (c *ProfileController) Commit(ctx context.Context) (models.UserProfile, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.buffer == nil {
		return c.Profile(ctx), false
	}

	edited := *c.buffer
	// Bookings are owned by the bookings screen; keep whatever was added
	// while the edit was open.
	profile, changed, err := storage.Update(ctx, c.deps.Store, storage.SlotCurrentUser, c.deps.Catalog.DefaultUser(),
		func(current models.UserProfile) (models.UserProfile, bool) {
			edited.Bookings = current.Bookings
			return edited, true
		})
	if !applied(c.log, changed, err, "commit profile") {
		return profile, false
	}

	c.buffer = nil
	c.log.Info().Str("user_id", profile.ID).Msg("Profile updated")
	return profile, true
}

// Cancel discards the edit buffer. It reports whether an edit was in progress.
func (c *ProfileController) Cancel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	had := c.buffer != nil
	c.buffer = nil
	return had
}
