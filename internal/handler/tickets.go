package handler

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"hallbook/internal/logging"
	"hallbook/internal/models"
	"hallbook/internal/storage"
)

// TicketsController manages support tickets raised from the contact form
type TicketsController struct {
	deps Deps
	now  func() time.Time
	log  zerolog.Logger
}

func NewTicketsController(deps Deps) *TicketsController {
	return &TicketsController{
		deps: deps,
		now:  time.Now,
		log:  logging.Component(deps.Log, "tickets"),
	}
}

// List returns every ticket, oldest first
func (c *TicketsController) List(ctx context.Context) []models.SupportTicket {
	return storage.Load(ctx, c.deps.Store, storage.SlotSupportTickets, []models.SupportTicket{})
}

// Get returns the ticket with the given id
func (c *TicketsController) Get(ctx context.Context, id string) (models.SupportTicket, bool) {
	tickets := c.List(ctx)
	i := slices.IndexFunc(tickets, func(t models.SupportTicket) bool { return t.ID == id })
	if i < 0 {
		return models.SupportTicket{}, false
	}
	return tickets[i], true
}

// Create opens a ticket whose first message is the form's message. A blank
// subject or message is a no-op.
func (c *TicketsController) Create(ctx context.Context, in models.NewTicket) (models.SupportTicket, bool) {
	subject := strings.TrimSpace(in.Subject)
	message := strings.TrimSpace(in.Message)
	if subject == "" || message == "" {
		return models.SupportTicket{}, false
	}

	profile := storage.Load(ctx, c.deps.Store, storage.SlotCurrentUser, c.deps.Catalog.DefaultUser())
	now := c.now().UTC()
	ticket := models.SupportTicket{
		ID:      c.deps.IDs.Ticket(),
		UserID:  profile.ID,
		Subject: subject,
		Status:  models.TicketOpen,
		Messages: []models.ChatMessage{
			{ID: 1, Type: models.SenderUser, Message: message, Timestamp: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, changed, err := storage.Update(ctx, c.deps.Store, storage.SlotSupportTickets, []models.SupportTicket{},
		func(tickets []models.SupportTicket) ([]models.SupportTicket, bool) {
			return append(slices.Clone(tickets), ticket), true
		})
	if !applied(c.log, changed, err, "create ticket") {
		return models.SupportTicket{}, false
	}

	c.log.Info().Str("ticket_id", ticket.ID).Str("subject", subject).Msg("Support ticket created")
	return ticket, true
}

// AddMessage appends a message to the ticket. Unknown ids, blank messages
// and senders other than user or agent are no-ops.
func (c *TicketsController) AddMessage(ctx context.Context, id string, in models.TicketReply) (models.SupportTicket, bool) {
	message := strings.TrimSpace(in.Message)
	sender := in.Type
	if sender == "" {
		sender = models.SenderUser
	}
	if message == "" || (sender != models.SenderUser && sender != models.SenderAgent) {
		return models.SupportTicket{}, false
	}

	return c.update(ctx, id, "add ticket message", func(t *models.SupportTicket, now time.Time) {
		t.Messages = append(slices.Clone(t.Messages), models.ChatMessage{
			ID:        len(t.Messages) + 1,
			Type:      sender,
			Message:   message,
			Timestamp: now,
		})
	})
}

// SetStatus moves the ticket to status. Unknown ids and statuses are no-ops.
func (c *TicketsController) SetStatus(ctx context.Context, id string, status models.TicketStatus) (models.SupportTicket, bool) {
	if !status.Valid() {
		return models.SupportTicket{}, false
	}
	return c.update(ctx, id, "update ticket status", func(t *models.SupportTicket, _ time.Time) {
		t.Status = status
	})
}

func (c *TicketsController) update(ctx context.Context, id, action string, fn func(*models.SupportTicket, time.Time)) (models.SupportTicket, bool) {
	var out models.SupportTicket
	_, changed, err := storage.Update(ctx, c.deps.Store, storage.SlotSupportTickets, []models.SupportTicket{},
		func(tickets []models.SupportTicket) ([]models.SupportTicket, bool) {
			i := slices.IndexFunc(tickets, func(t models.SupportTicket) bool { return t.ID == id })
			if i < 0 {
				return tickets, false
			}
			tickets = slices.Clone(tickets)
			now := c.now().UTC()
			fn(&tickets[i], now)
			tickets[i].UpdatedAt = now
			out = tickets[i]
			return tickets, true
		})
	if !applied(c.log, changed, err, action) {
		return models.SupportTicket{}, false
	}

	c.log.Info().Str("ticket_id", id).Str("action", action).Msg("Support ticket updated")
	return out, true
}
