package api

import (
	"net/http"

	"hallbook/internal/models"
)

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	ok(w, "Profile retrieved successfully", s.controllers.Profile.Profile(r.Context()))
}

// beginProfileEdit handles POST /api/profile/edit
func (s *Server) beginProfileEdit(w http.ResponseWriter, r *http.Request) {
	ok(w, "Profile edit started", s.controllers.Profile.BeginEdit(r.Context()))
}

// stageProfileEdit handles PATCH /api/profile/edit
func (s *Server) stageProfileEdit(w http.ResponseWriter, r *http.Request) {
	var changes models.ProfileChanges
	if err := decodeJSON(r, &changes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	buf, applied := s.controllers.Profile.Stage(changes)
	if !applied {
		notApplied(w, "No profile edit in progress", nil)
		return
	}
	ok(w, "Profile changes staged", buf)
}

// commitProfileEdit handles POST /api/profile/edit/commit
func (s *Server) commitProfileEdit(w http.ResponseWriter, r *http.Request) {
	profile, applied := s.controllers.Profile.Commit(r.Context())
	if !applied {
		notApplied(w, "Profile not updated", profile)
		return
	}
	ok(w, "Profile updated successfully", profile)
}

// cancelProfileEdit handles DELETE /api/profile/edit
func (s *Server) cancelProfileEdit(w http.ResponseWriter, r *http.Request) {
	profile := s.controllers.Profile.Profile(r.Context())
	if !s.controllers.Profile.Cancel() {
		notApplied(w, "No profile edit in progress", profile)
		return
	}
	ok(w, "Profile edit discarded", profile)
}
