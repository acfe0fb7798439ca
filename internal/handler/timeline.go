package handler

import (
	"context"
	"slices"

	"github.com/rs/zerolog"

	"hallbook/internal/logging"
	"hallbook/internal/models"
	"hallbook/internal/storage"
)

// TimelineController manages the wedding planning timeline
type TimelineController struct {
	deps Deps
	log  zerolog.Logger
}

func NewTimelineController(deps Deps) *TimelineController {
	return &TimelineController{
		deps: deps,
		log:  logging.Component(deps.Log, "timeline"),
	}
}

// List returns the persisted timeline
func (c *TimelineController) List(ctx context.Context) []models.TimelineEvent {
	return storage.Load(ctx, c.deps.Store, storage.SlotWeddingTimeline, c.deps.Catalog.DefaultTimeline())
}

// UpdateStatus sets the status of the event with the given id. Unknown ids
// and statuses are no-ops. Setting the current status again rewrites the
// same document.
func (c *TimelineController) UpdateStatus(ctx context.Context, id string, status models.TimelineStatus) ([]models.TimelineEvent, bool) {
	if !status.Valid() {
		return c.List(ctx), false
	}

	events, changed, err := storage.Update(ctx, c.deps.Store, storage.SlotWeddingTimeline, c.deps.Catalog.DefaultTimeline(),
		func(events []models.TimelineEvent) ([]models.TimelineEvent, bool) {
			i := slices.IndexFunc(events, func(e models.TimelineEvent) bool { return e.ID == id })
			if i < 0 {
				return events, false
			}
			events = slices.Clone(events)
			events[i].Status = status
			return events, true
		})
	if !applied(c.log, changed, err, "update timeline") {
		return events, false
	}

	c.log.Info().Str("event_id", id).Str("status", string(status)).Msg("Timeline status updated")
	return events, true
}
