package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hallbook/internal/models"
)

// listBookings handles GET /api/bookings?tab=
func (s *Server) listBookings(w http.ResponseWriter, r *http.Request) {
	ok(w, "Bookings retrieved successfully", s.controllers.Bookings.List(r.Context(), r.URL.Query().Get("tab")))
}

func (s *Server) getBooking(w http.ResponseWriter, r *http.Request) {
	b, found := s.controllers.Bookings.Get(r.Context(), chi.URLParam(r, "id"))
	if !found {
		writeError(w, http.StatusNotFound, "booking not found")
		return
	}
	ok(w, "Booking retrieved successfully", b)
}

// createBooking handles POST /api/bookings
func (s *Server) createBooking(w http.ResponseWriter, r *http.Request) {
	var req models.BookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	b, applied := s.controllers.Bookings.Create(r.Context(), req)
	if !applied {
		notApplied(w, "Booking not created", nil)
		return
	}
	created(w, "Booking created successfully", b)
}

type statusRequest struct {
	Status string `json:"status"`
}

// updateBookingStatus handles PUT /api/bookings/{id}/status
func (s *Server) updateBookingStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	id := chi.URLParam(r, "id")
	b, applied := s.controllers.Bookings.UpdateStatus(r.Context(), id, models.BookingStatus(req.Status))
	if !applied {
		var data any
		if current, found := s.controllers.Bookings.Get(r.Context(), id); found {
			data = current
		}
		notApplied(w, "Booking status not updated", data)
		return
	}
	ok(w, "Booking status updated successfully", b)
}
