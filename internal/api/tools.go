package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hallbook/internal/filter"
	"hallbook/internal/handler"
	"hallbook/internal/models"
)

type amountRequest struct {
	Amount int `json:"amount"`
}

type guestListResponse struct {
	Guests []models.Guest    `json:"guests"`
	Stats  filter.GuestStats `json:"stats"`
}

// getBudget handles GET /api/wedding-tools/budget
func (s *Server) getBudget(w http.ResponseWriter, r *http.Request) {
	ok(w, "Budget retrieved successfully", s.controllers.Budget.Summary(r.Context()))
}

func (s *Server) setBudgetTotal(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	plan, applied := s.controllers.Budget.SetTotal(r.Context(), req.Amount)
	if !applied {
		notApplied(w, "Budget not updated", plan)
		return
	}
	ok(w, "Budget updated successfully", plan)
}

// setBudgetSpent handles PUT /api/wedding-tools/budget/categories/{name}/spent
func (s *Server) setBudgetSpent(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	plan, applied := s.controllers.Budget.SetSpent(r.Context(), chi.URLParam(r, "name"), req.Amount)
	if !applied {
		notApplied(w, "Budget not updated", plan)
		return
	}
	ok(w, "Budget updated successfully", plan)
}

func guestList(guests []models.Guest) guestListResponse {
	return guestListResponse{Guests: guests, Stats: filter.SummarizeGuests(guests)}
}

// listGuests handles GET /api/wedding-tools/guests
func (s *Server) listGuests(w http.ResponseWriter, r *http.Request) {
	ok(w, "Guest list retrieved successfully", guestList(s.controllers.Guests.List(r.Context())))
}

// addGuest handles POST /api/wedding-tools/guests
func (s *Server) addGuest(w http.ResponseWriter, r *http.Request) {
	var req models.NewGuest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	guest, applied := s.controllers.Guests.Add(r.Context(), req)
	if !applied {
		notApplied(w, "Guest not added", guestList(s.controllers.Guests.List(r.Context())))
		return
	}
	created(w, "Guest added successfully", guest)
}

// toggleGuest handles POST /api/wedding-tools/guests/{id}/toggle/{field}
func (s *Server) toggleGuest(w http.ResponseWriter, r *http.Request) {
	field := models.GuestField(chi.URLParam(r, "field"))
	guests, applied := s.controllers.Guests.Toggle(r.Context(), chi.URLParam(r, "id"), field)
	if !applied {
		notApplied(w, "Guest not updated", guestList(guests))
		return
	}
	ok(w, "Guest updated successfully", guestList(guests))
}

// inviteGuest handles POST /api/wedding-tools/guests/{id}/invite
func (s *Server) inviteGuest(w http.ResponseWriter, r *http.Request) {
	guest, err := s.controllers.Guests.Invite(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, handler.ErrGuestNotFound):
			writeError(w, http.StatusNotFound, "guest not found")
		case errors.Is(err, handler.ErrNoMessenger):
			writeError(w, http.StatusServiceUnavailable, "invitations are not available")
		case errors.Is(err, handler.ErrNoPhone):
			writeError(w, http.StatusUnprocessableEntity, "guest has no phone number")
		default:
			s.log.Error().Err(err).Msg("Failed to send invitation")
			writeError(w, http.StatusBadGateway, "failed to send invitation")
		}
		return
	}
	ok(w, "Invitation sent successfully", guest)
}

// listTimeline handles GET /api/wedding-tools/timeline
func (s *Server) listTimeline(w http.ResponseWriter, r *http.Request) {
	ok(w, "Timeline retrieved successfully", s.controllers.Timeline.List(r.Context()))
}

// updateTimelineStatus handles PUT /api/wedding-tools/timeline/{id}/status
func (s *Server) updateTimelineStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	events, applied := s.controllers.Timeline.UpdateStatus(r.Context(), chi.URLParam(r, "id"), models.TimelineStatus(req.Status))
	if !applied {
		notApplied(w, "Timeline not updated", events)
		return
	}
	ok(w, "Timeline updated successfully", events)
}
