package filter

import (
	"sync"

	"hallbook/internal/models"
)

// Selection tracks the single venue chosen for detail display. The last
// Select wins; there is no history.
type Selection struct {
	mu    sync.RWMutex
	venue *models.Venue
}

// Select replaces the selection. A nil venue clears it.
func (s *Selection) Select(v *models.Venue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v == nil {
		s.venue = nil
		return
	}
	cp := *v
	s.venue = &cp
}

// Selected returns the selected venue, if any
func (s *Selection) Selected() (models.Venue, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.venue == nil {
		return models.Venue{}, false
	}
	return *s.venue, true
}
