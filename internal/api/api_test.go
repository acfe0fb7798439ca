package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hallbook/internal/catalog"
	"hallbook/internal/config"
	"hallbook/internal/handler"
	"hallbook/internal/models"
	"hallbook/internal/storage"
	"hallbook/internal/support"
)

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
	TotalPages int             `json:"total_pages"`
}

type nopMessenger struct{ sent int }

func (m *nopMessenger) SendMessage(context.Context, string, string) error {
	m.sent++
	return nil
}

func newTestServer(t *testing.T, messenger handler.Messenger) *httptest.Server {
	t.Helper()

	cat := catalog.MustNew()
	deps := handler.Deps{
		Catalog: cat,
		Store:   storage.NewStore(storage.NewMemoryBackend(), zerolog.Nop()),
		Log:     zerolog.Nop(),
	}
	controllers := handler.New(deps, handler.Config{BrideName: "Priya", GroomName: "Arjun"}, messenger)
	hub := support.NewHub(support.Options{
		ReplyDelay: 10 * time.Millisecond,
		Answers:    support.NewAnswers(cat.FAQs()),
		Log:        zerolog.Nop(),
	})
	t.Cleanup(hub.CloseAll)

	contacts := support.Contacts(config.SupportConfig{Phone: "+919876543210"})
	srv := httptest.NewServer(NewServer(controllers, hub, cat.FAQs(), contacts, zerolog.Nop()).Router())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (int, envelope) {
	t.Helper()

	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, nil)
	status, env := do(t, srv, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
}

func TestVenues_FilterAndPaginate(t *testing.T) {
	srv := newTestServer(t, nil)

	status, env := do(t, srv, http.MethodGet, "/api/venues?budget=50000&availability=available", "")
	require.Equal(t, http.StatusOK, status)
	venues := decode[[]models.Venue](t, env.Data)
	require.Len(t, venues, 3)
	assert.Equal(t, "1", venues[0].ID)
	assert.Equal(t, 3, env.Total)

	_, env = do(t, srv, http.MethodGet, "/api/venues?search_query=JAGIR&per_page=1&page=2", "")
	venues = decode[[]models.Venue](t, env.Data)
	require.Len(t, venues, 1)
	assert.Equal(t, "3", venues[0].ID)
	assert.Equal(t, 2, env.Total)
	assert.Equal(t, 2, env.TotalPages)
	assert.Equal(t, 1, env.PerPage)
}

func TestVenues_HugePage(t *testing.T) {
	srv := newTestServer(t, nil)

	status, env := do(t, srv, http.MethodGet, "/api/venues?page=9223372036854775807", "")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	assert.Empty(t, decode[[]models.Venue](t, env.Data))
	assert.Equal(t, 4, env.Total)
}

func TestVenues_Detail(t *testing.T) {
	srv := newTestServer(t, nil)

	status, env := do(t, srv, http.MethodGet, "/api/venues/1", "")
	require.Equal(t, http.StatusOK, status)
	detail := decode[handler.VenueDetail](t, env.Data)
	assert.Equal(t, "R K Function Hall", detail.Name)
	assert.InDelta(t, 31.33, detail.Pin.X, 0.01)

	status, env = do(t, srv, http.MethodGet, "/api/venues/nope", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
}

func TestSelection(t *testing.T) {
	srv := newTestServer(t, nil)

	_, env := do(t, srv, http.MethodGet, "/api/selection", "")
	assert.Equal(t, "null", string(env.Data))

	_, env = do(t, srv, http.MethodPut, "/api/selection", `{"venue_id":"2"}`)
	assert.True(t, env.Success)

	_, env = do(t, srv, http.MethodPut, "/api/selection", `{"venue_id":"99"}`)
	assert.False(t, env.Success)
	assert.Equal(t, "2", decode[handler.VenueDetail](t, env.Data).ID)

	_, env = do(t, srv, http.MethodDelete, "/api/selection", "")
	assert.True(t, env.Success)
	_, env = do(t, srv, http.MethodGet, "/api/selection", "")
	assert.Equal(t, "null", string(env.Data))
}

func TestGuests(t *testing.T) {
	srv := newTestServer(t, nil)

	status, env := do(t, srv, http.MethodPost, "/api/wedding-tools/guests", `{"name":"","relation":"Friend"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.False(t, env.Success)
	assert.Len(t, decode[guestListResponse](t, env.Data).Guests, 3)

	status, env = do(t, srv, http.MethodPost, "/api/wedding-tools/guests", `{"name":"Ravi","relation":"Cousin"}`)
	require.Equal(t, http.StatusCreated, status)
	ravi := decode[models.Guest](t, env.Data)
	assert.Equal(t, "Family", ravi.Category)

	_, env = do(t, srv, http.MethodPost, "/api/wedding-tools/guests/"+ravi.ID+"/toggle/confirmed", "")
	require.True(t, env.Success)
	list := decode[guestListResponse](t, env.Data)
	assert.True(t, list.Guests[3].Confirmed)
	assert.Equal(t, 3, list.Stats.Confirmed)

	_, env = do(t, srv, http.MethodPost, "/api/wedding-tools/guests/missing/toggle/confirmed", "")
	assert.False(t, env.Success)
	_, env = do(t, srv, http.MethodPost, "/api/wedding-tools/guests/g1/toggle/vip", "")
	assert.False(t, env.Success)

	status, _ = do(t, srv, http.MethodPost, "/api/wedding-tools/guests", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGuests_Invite(t *testing.T) {
	status, _ := do(t, newTestServer(t, nil), http.MethodPost, "/api/wedding-tools/guests/g1/invite", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)

	m := &nopMessenger{}
	srv := newTestServer(t, m)
	status, env := do(t, srv, http.MethodPost, "/api/wedding-tools/guests/g1/invite", "")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, decode[models.Guest](t, env.Data).Invited)
	assert.Equal(t, 1, m.sent)

	status, _ = do(t, srv, http.MethodPost, "/api/wedding-tools/guests/zzz/invite", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestTimelineAndBudget(t *testing.T) {
	srv := newTestServer(t, nil)

	_, env := do(t, srv, http.MethodPut, "/api/wedding-tools/timeline/t2/status", `{"status":"completed"}`)
	require.True(t, env.Success)
	events := decode[[]models.TimelineEvent](t, env.Data)
	assert.Equal(t, models.TimelineCompleted, events[1].Status)

	_, env = do(t, srv, http.MethodPut, "/api/wedding-tools/timeline/t2/status", `{"status":"later"}`)
	assert.False(t, env.Success)

	_, env = do(t, srv, http.MethodPut, "/api/wedding-tools/budget/categories/Catering/spent", `{"amount":150000}`)
	require.True(t, env.Success)
	_, env = do(t, srv, http.MethodPut, "/api/wedding-tools/budget/categories/Unknown/spent", `{"amount":1}`)
	assert.False(t, env.Success)

	_, env = do(t, srv, http.MethodGet, "/api/wedding-tools/budget", "")
	var sum struct {
		Spent      int `json:"spent"`
		Categories []struct {
			Name  string `json:"name"`
			Level string `json:"level"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sum))
	assert.Equal(t, 150000, sum.Spent)
	assert.Equal(t, "warning", sum.Categories[1].Level)
}

func TestProfileEdit(t *testing.T) {
	srv := newTestServer(t, nil)

	_, env := do(t, srv, http.MethodPatch, "/api/profile/edit", `{"name":"X"}`)
	assert.False(t, env.Success)

	do(t, srv, http.MethodPost, "/api/profile/edit", "")
	_, env = do(t, srv, http.MethodPatch, "/api/profile/edit", `{"phone":"+91 90000 00000"}`)
	require.True(t, env.Success)

	_, env = do(t, srv, http.MethodGet, "/api/profile", "")
	assert.Equal(t, "+91 9876543210", decode[models.UserProfile](t, env.Data).Phone)

	_, env = do(t, srv, http.MethodPost, "/api/profile/edit/commit", "")
	require.True(t, env.Success)
	assert.Equal(t, "+91 90000 00000", decode[models.UserProfile](t, env.Data).Phone)

	_, env = do(t, srv, http.MethodDelete, "/api/profile/edit", "")
	assert.False(t, env.Success)
}

func TestBookings(t *testing.T) {
	srv := newTestServer(t, nil)

	status, env := do(t, srv, http.MethodPost, "/api/bookings",
		`{"venueId":"2","eventDate":"2025-02-14T00:00:00Z","guestCount":250,"services":[{"serviceId":"photography","providerId":"p1","name":"Wedding Moments Studio","price":30000}]}`)
	require.Equal(t, http.StatusCreated, status)
	b := decode[models.Booking](t, env.Data)
	assert.Equal(t, 35000+30000, b.TotalAmount)

	_, env = do(t, srv, http.MethodPost, "/api/bookings", `{"venueId":"missing"}`)
	assert.False(t, env.Success)

	_, env = do(t, srv, http.MethodPut, "/api/bookings/"+b.ID+"/status", `{"status":"cancelled"}`)
	require.True(t, env.Success)

	_, env = do(t, srv, http.MethodGet, "/api/bookings?tab=cancelled", "")
	assert.Len(t, decode[[]models.Booking](t, env.Data), 1)
	_, env = do(t, srv, http.MethodGet, "/api/bookings?tab=upcoming", "")
	assert.Empty(t, decode[[]models.Booking](t, env.Data))

	_, env = do(t, srv, http.MethodGet, "/api/profile", "")
	assert.Equal(t, []string{b.ID}, decode[models.UserProfile](t, env.Data).Bookings)
}

func TestSupportChat(t *testing.T) {
	srv := newTestServer(t, nil)

	_, env := do(t, srv, http.MethodGet, "/api/support/contacts", "")
	assert.Len(t, decode[[]models.ContactOption](t, env.Data), 2)
	_, env = do(t, srv, http.MethodGet, "/api/support/faqs", "")
	assert.Len(t, decode[[]models.FAQ](t, env.Data), 6)

	status, env := do(t, srv, http.MethodPost, "/api/support/sessions", "")
	require.Equal(t, http.StatusCreated, status)
	opened := decode[openSessionResponse](t, env.Data)
	require.Len(t, opened.Messages, 1)

	path := "/api/support/sessions/" + opened.ID + "/messages"
	status, _ = do(t, srv, http.MethodPost, path, `{"message":"Can I cancel my booking?"}`)
	require.Equal(t, http.StatusCreated, status)

	assert.Eventually(t, func() bool {
		_, env := do(t, srv, http.MethodGet, path, "")
		return len(decode[[]models.ChatMessage](t, env.Data)) == 3
	}, time.Second, 10*time.Millisecond)

	_, env = do(t, srv, http.MethodPost, path, `{"message":"  "}`)
	assert.False(t, env.Success)

	status, _ = do(t, srv, http.MethodDelete, "/api/support/sessions/"+opened.ID, "")
	assert.Equal(t, http.StatusOK, status)
	status, _ = do(t, srv, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSupportTickets(t *testing.T) {
	srv := newTestServer(t, nil)

	status, env := do(t, srv, http.MethodPost, "/api/support/tickets", `{"subject":"Refund","message":"Booking HHB1 was cancelled"}`)
	require.Equal(t, http.StatusCreated, status)
	ticket := decode[models.SupportTicket](t, env.Data)
	assert.Equal(t, models.TicketOpen, ticket.Status)
	require.Len(t, ticket.Messages, 1)

	_, env = do(t, srv, http.MethodPost, "/api/support/tickets", `{"subject":"  ","message":"hi"}`)
	assert.False(t, env.Success)

	path := "/api/support/tickets/" + ticket.ID
	status, env = do(t, srv, http.MethodPost, path+"/messages", `{"message":"We are looking into it","type":"agent"}`)
	require.Equal(t, http.StatusOK, status)
	ticket = decode[models.SupportTicket](t, env.Data)
	require.Len(t, ticket.Messages, 2)
	assert.Equal(t, models.SenderAgent, ticket.Messages[1].Type)

	_, env = do(t, srv, http.MethodPost, path+"/messages", `{"message":"spoof","type":"bot"}`)
	assert.False(t, env.Success)
	assert.Len(t, decode[models.SupportTicket](t, env.Data).Messages, 2)

	_, env = do(t, srv, http.MethodPut, path+"/status", `{"status":"resolved"}`)
	assert.Equal(t, models.TicketResolved, decode[models.SupportTicket](t, env.Data).Status)

	status, _ = do(t, srv, http.MethodPost, "/api/support/tickets/TKT0/messages", `{"message":"hello"}`)
	assert.Equal(t, http.StatusNotFound, status)

	_, env = do(t, srv, http.MethodGet, "/api/support/tickets", "")
	assert.Len(t, decode[[]models.SupportTicket](t, env.Data), 1)
}

func TestUnknownRoute(t *testing.T) {
	status, env := do(t, newTestServer(t, nil), http.MethodGet, "/api/nothing", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
}
