package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hallbook/internal/filter"
)

// listVenues handles GET /api/venues
func (s *Server) listVenues(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	venues := s.controllers.Browse.Venues(filter.ParseVenueCriteria(q))

	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	p := filter.Paginate(venues, page, perPage)

	writeJSON(w, http.StatusOK, PaginatedResponse{
		Response:   Response{Success: true, Message: "Venues retrieved successfully", Data: p.Items},
		Total:      p.Total,
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalPages: p.TotalPages,
	})
}

// getVenue handles GET /api/venues/{id}
func (s *Server) getVenue(w http.ResponseWriter, r *http.Request) {
	v, found := s.controllers.Browse.Venue(chi.URLParam(r, "id"))
	if !found {
		writeError(w, http.StatusNotFound, "venue not found")
		return
	}
	ok(w, "Venue retrieved successfully", v)
}

func (s *Server) listServices(w http.ResponseWriter, r *http.Request) {
	ok(w, "Services retrieved successfully", s.controllers.Browse.Services())
}

type selectionRequest struct {
	VenueID string `json:"venue_id"`
}

// getSelection handles GET /api/selection. Data is null when nothing is
// selected.
func (s *Server) getSelection(w http.ResponseWriter, r *http.Request) {
	v, selected := s.controllers.Browse.Selected()
	if !selected {
		ok(w, "No venue selected", nil)
		return
	}
	ok(w, "Selected venue retrieved successfully", v)
}

func (s *Server) putSelection(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.VenueID == "" {
		s.controllers.Browse.Select("")
		ok(w, "Selection cleared", nil)
		return
	}

	v, applied := s.controllers.Browse.Select(req.VenueID)
	if !applied {
		var data any
		if current, selected := s.controllers.Browse.Selected(); selected {
			data = current
		}
		notApplied(w, "Unknown venue, selection unchanged", data)
		return
	}
	ok(w, "Venue selected", v)
}

func (s *Server) clearSelection(w http.ResponseWriter, r *http.Request) {
	s.controllers.Browse.Select("")
	ok(w, "Selection cleared", nil)
}
