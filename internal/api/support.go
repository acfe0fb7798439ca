package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hallbook/internal/models"
	"hallbook/internal/support"
)

type openSessionResponse struct {
	ID       string               `json:"id"`
	Messages []models.ChatMessage `json:"messages"`
}

type messageRequest struct {
	Message string `json:"message"`
}

func (s *Server) listFAQs(w http.ResponseWriter, r *http.Request) {
	ok(w, "FAQs retrieved successfully", s.faqs)
}

func (s *Server) listContacts(w http.ResponseWriter, r *http.Request) {
	ok(w, "Contact options retrieved successfully", s.contacts)
}

// openSession handles POST /api/support/sessions
func (s *Server) openSession(w http.ResponseWriter, r *http.Request) {
	session := s.hub.Open()
	created(w, "Support session opened", openSessionResponse{
		ID:       session.ID(),
		Messages: session.Messages(),
	})
}

// listMessages handles GET /api/support/sessions/{id}/messages
func (s *Server) listMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := s.hub.Messages(chi.URLParam(r, "id"))
	if err != nil {
		s.sessionError(w, err)
		return
	}
	ok(w, "Messages retrieved successfully", msgs)
}

// sendMessage handles POST /api/support/sessions/{id}/messages. The bot
// reply appears in the message list after the reply delay.
func (s *Server) sendMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	session, err := s.hub.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.sessionError(w, err)
		return
	}

	msg, err := session.Send(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, support.ErrEmptyMessage) {
			notApplied(w, "Empty message ignored", session.Messages())
			return
		}
		s.sessionError(w, err)
		return
	}
	created(w, "Message sent", msg)
}

// closeSession handles DELETE /api/support/sessions/{id}
func (s *Server) closeSession(w http.ResponseWriter, r *http.Request) {
	if err := s.hub.Close(chi.URLParam(r, "id")); err != nil {
		s.sessionError(w, err)
		return
	}
	ok(w, "Support session closed", nil)
}

func (s *Server) sessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, support.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "support session not found")
	case errors.Is(err, support.ErrSessionClosed):
		writeError(w, http.StatusGone, "support session closed")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) listTickets(w http.ResponseWriter, r *http.Request) {
	ok(w, "Support tickets retrieved successfully", s.controllers.Tickets.List(r.Context()))
}

func (s *Server) getTicket(w http.ResponseWriter, r *http.Request) {
	t, found := s.controllers.Tickets.Get(r.Context(), chi.URLParam(r, "id"))
	if !found {
		writeError(w, http.StatusNotFound, "support ticket not found")
		return
	}
	ok(w, "Support ticket retrieved successfully", t)
}

// createTicket handles POST /api/support/tickets
func (s *Server) createTicket(w http.ResponseWriter, r *http.Request) {
	var req models.NewTicket
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	t, applied := s.controllers.Tickets.Create(r.Context(), req)
	if !applied {
		notApplied(w, "Subject and message are required", nil)
		return
	}
	created(w, "Support ticket created successfully", t)
}

// addTicketMessage handles POST /api/support/tickets/{id}/messages
func (s *Server) addTicketMessage(w http.ResponseWriter, r *http.Request) {
	var req models.TicketReply
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	id := chi.URLParam(r, "id")
	current, found := s.controllers.Tickets.Get(r.Context(), id)
	if !found {
		writeError(w, http.StatusNotFound, "support ticket not found")
		return
	}

	t, applied := s.controllers.Tickets.AddMessage(r.Context(), id, req)
	if !applied {
		notApplied(w, "Message not added", current)
		return
	}
	ok(w, "Message added successfully", t)
}

// updateTicketStatus handles PUT /api/support/tickets/{id}/status
func (s *Server) updateTicketStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	id := chi.URLParam(r, "id")
	current, found := s.controllers.Tickets.Get(r.Context(), id)
	if !found {
		writeError(w, http.StatusNotFound, "support ticket not found")
		return
	}

	t, applied := s.controllers.Tickets.SetStatus(r.Context(), id, models.TicketStatus(req.Status))
	if !applied {
		notApplied(w, "Support ticket status not updated", current)
		return
	}
	ok(w, "Support ticket status updated", t)
}
