// Package api exposes the screen controllers as a JSON HTTP API.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"hallbook/internal/handler"
	"hallbook/internal/logging"
	"hallbook/internal/models"
	"hallbook/internal/support"
)

// Server holds everything the HTTP handlers need
type Server struct {
	controllers *handler.Controllers
	hub         *support.Hub
	faqs        []models.FAQ
	contacts    []models.ContactOption
	log         zerolog.Logger
}

// NewServer creates a new API server over the given controllers and
// support hub
func NewServer(controllers *handler.Controllers, hub *support.Hub, faqs []models.FAQ, contacts []models.ContactOption, log zerolog.Logger) *Server {
	return &Server{
		controllers: controllers,
		hub:         hub,
		faqs:        faqs,
		contacts:    contacts,
		log:         logging.Component(log, "api"),
	}
}

// Router builds the chi router for every API route
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(cors)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.health)

		r.Get("/venues", s.listVenues)
		r.Get("/venues/{id}", s.getVenue)
		r.Get("/services", s.listServices)

		r.Route("/selection", func(r chi.Router) {
			r.Get("/", s.getSelection)
			r.Put("/", s.putSelection)
			r.Delete("/", s.clearSelection)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", s.getProfile)
			r.Post("/edit", s.beginProfileEdit)
			r.Patch("/edit", s.stageProfileEdit)
			r.Delete("/edit", s.cancelProfileEdit)
			r.Post("/edit/commit", s.commitProfileEdit)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", s.listBookings)
			r.Post("/", s.createBooking)
			r.Get("/{id}", s.getBooking)
			r.Put("/{id}/status", s.updateBookingStatus)
		})

		r.Route("/wedding-tools", func(r chi.Router) {
			r.Get("/budget", s.getBudget)
			r.Put("/budget/total", s.setBudgetTotal)
			r.Put("/budget/categories/{name}/spent", s.setBudgetSpent)

			r.Get("/guests", s.listGuests)
			r.Post("/guests", s.addGuest)
			r.Post("/guests/{id}/toggle/{field}", s.toggleGuest)
			r.Post("/guests/{id}/invite", s.inviteGuest)

			r.Get("/timeline", s.listTimeline)
			r.Put("/timeline/{id}/status", s.updateTimelineStatus)
		})

		r.Route("/support", func(r chi.Router) {
			r.Get("/faqs", s.listFAQs)
			r.Get("/contacts", s.listContacts)
			r.Post("/sessions", s.openSession)
			r.Get("/sessions/{id}/messages", s.listMessages)
			r.Post("/sessions/{id}/messages", s.sendMessage)
			r.Delete("/sessions/{id}", s.closeSession)

			r.Get("/tickets", s.listTickets)
			r.Post("/tickets", s.createTicket)
			r.Get("/tickets/{id}", s.getTicket)
			r.Post("/tickets/{id}/messages", s.addTicketMessage)
			r.Put("/tickets/{id}/status", s.updateTicketStatus)
		})
	})

	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	ok(w, "ok", map[string]string{"status": "ok"})
}
