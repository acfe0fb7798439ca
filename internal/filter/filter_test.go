package filter

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"hallbook/internal/models"
)

func intPtr(n int) *int { return &n }

func testVenues() []models.Venue {
	return []models.Venue{
		{ID: "1", Name: "R K Function Hall", Location: "Bandlaguda Jagir", Pincode: "500086", Price: 40000, Capacity: 500, Availability: models.AvailabilityAvailable},
		{ID: "2", Name: "Sri Lakshmi Convention", Location: "Chandrayangutta", Pincode: "500005", Price: 35000, Capacity: 400, Availability: models.AvailabilityAvailable},
		{ID: "3", Name: "Golden Palace", Location: "Bandlaguda Jagir", Pincode: "500086", Price: 55000, Capacity: 800, Availability: models.AvailabilityBooked},
		{ID: "4", Name: "Marigold Gardens", Location: "Chandrayangutta", Pincode: "500005", Price: 30000, Capacity: 300, Availability: models.AvailabilityAvailable},
	}
}

func ids(vs []models.Venue) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID
	}
	return out
}

func TestFilterVenues_BudgetScenario(t *testing.T) {
	venues := []models.Venue{{ID: "a", Price: 40000}, {ID: "b", Price: 55000}}
	got := FilterVenues(venues, VenueCriteria{BudgetMax: intPtr(50000)})
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestFilterVenues_SearchScenario(t *testing.T) {
	venues := []models.Venue{{ID: "a", Name: "R K Function Hall", Location: "Bandlaguda Jagir"}}
	got := FilterVenues(venues, VenueCriteria{SearchText: "jagir"})
	assert.Equal(t, venues, got)
}

func TestFilterVenues_EmptyCriteriaIsIdentity(t *testing.T) {
	venues := testVenues()
	assert.Equal(t, venues, FilterVenues(venues, VenueCriteria{}))
	assert.Equal(t, venues, FilterVenues(venues, VenueCriteria{Availability: AvailabilityAll}))
	assert.Empty(t, FilterVenues(nil, VenueCriteria{}))
}

func TestFilterVenues(t *testing.T) {
	tests := []struct {
		name     string
		criteria VenueCriteria
		want     []string
	}{
		{"budget inclusive", VenueCriteria{BudgetMax: intPtr(35000)}, []string{"2", "4"}},
		{"capacity inclusive", VenueCriteria{CapacityMin: intPtr(500)}, []string{"1", "3"}},
		{"available only", VenueCriteria{Availability: "available"}, []string{"1", "2", "4"}},
		{"search by name, mixed case", VenueCriteria{SearchText: "GOLDEN"}, []string{"3"}},
		{"search by location", VenueCriteria{SearchText: "chandra"}, []string{"2", "4"}},
		{"pincode", VenueCriteria{Pincode: "500086"}, []string{"1", "3"}},
		{"and composition", VenueCriteria{BudgetMax: intPtr(50000), SearchText: "jagir"}, []string{"1"}},
		{"nothing matches", VenueCriteria{BudgetMax: intPtr(1000)}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterVenues(testVenues(), tt.criteria)))
		})
	}
}

// Every kept venue matches and every matching venue is kept, in input order.
func TestFilterVenues_SoundAndComplete(t *testing.T) {
	venues := testVenues()
	criteria := []VenueCriteria{
		{BudgetMax: intPtr(45000)},
		{CapacityMin: intPtr(350), Availability: "available"},
		{SearchText: "hall", CapacityMin: intPtr(100)},
		{Pincode: "500005", BudgetMax: intPtr(32000)},
	}
	for _, c := range criteria {
		got := FilterVenues(venues, c)

		var want []models.Venue
		for _, v := range venues {
			if c.Matches(v) {
				want = append(want, v)
			}
		}
		if want == nil {
			want = []models.Venue{}
		}
		assert.Equal(t, want, got)
	}
}

func TestParseVenueCriteria(t *testing.T) {
	q := url.Values{
		"budget":       {"50000"},
		"capacity":     {"abc"},
		"availability": {" Available "},
		"search_query": {"jagir"},
		"pincode":      {"500086"},
	}
	c := ParseVenueCriteria(q)

	assert.Equal(t, intPtr(50000), c.BudgetMax)
	assert.Nil(t, c.CapacityMin)
	assert.Equal(t, "available", c.Availability)
	assert.Equal(t, "jagir", c.SearchText)
	assert.Equal(t, "500086", c.Pincode)

	c = ParseVenueCriteria(url.Values{"search": {"hall"}, "search_query": {"other"}})
	assert.Equal(t, "hall", c.SearchText)
	assert.True(t, ParseVenueCriteria(url.Values{}).IsEmpty())
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	p := Paginate(items, 2, 3)
	assert.Equal(t, []int{4, 5, 6}, p.Items)
	assert.Equal(t, 7, p.Total)
	assert.Equal(t, 3, p.TotalPages)

	p = Paginate(items, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)
	assert.Len(t, p.Items, 7)

	p = Paginate(items, 9, 3)
	assert.Empty(t, p.Items)

	p = Paginate(items, 1, 500)
	assert.Equal(t, MaxPerPage, p.PerPage)

	p = Paginate([]int{}, 1, 10)
	assert.Equal(t, 0, p.TotalPages)
}

func TestPaginate_HugePageIsEmpty(t *testing.T) {
	items := []int{1, 2, 3}
	for _, page := range []int{math.MaxInt, 368934881474191033, math.MaxInt / 3} {
		p := Paginate(items, page, 50)
		assert.Empty(t, p.Items, "page %d", page)
		assert.Equal(t, page, p.Page)
		assert.Equal(t, 3, p.Total)
	}
}

func TestSelection(t *testing.T) {
	var s Selection
	_, ok := s.Selected()
	assert.False(t, ok)

	venues := testVenues()
	s.Select(&venues[0])
	s.Select(&venues[2])
	got, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, "3", got.ID)

	venues[2].Name = "changed"
	got, _ = s.Selected()
	assert.Equal(t, "Golden Palace", got.Name)

	s.Select(nil)
	_, ok = s.Selected()
	assert.False(t, ok)
}

func TestFilterBookings(t *testing.T) {
	bookings := []models.Booking{
		{ID: "b1", Status: models.BookingPending},
		{ID: "b2", Status: models.BookingCompleted},
		{ID: "b3", Status: models.BookingConfirmed},
		{ID: "b4", Status: models.BookingCancelled},
	}
	bookingIDs := func(bs []models.Booking) []string {
		out := []string{}
		for _, b := range bs {
			out = append(out, b.ID)
		}
		return out
	}

	assert.Equal(t, []string{"b1", "b3"}, bookingIDs(FilterBookings(bookings, TabUpcoming)))
	assert.Equal(t, []string{"b2"}, bookingIDs(FilterBookings(bookings, TabCompleted)))
	assert.Equal(t, []string{"b4"}, bookingIDs(FilterBookings(bookings, TabCancelled)))
	assert.Len(t, FilterBookings(bookings, TabAll), 4)
	assert.Len(t, FilterBookings(bookings, "whatever"), 4)
}

func TestSummarizeGuests(t *testing.T) {
	stats := SummarizeGuests([]models.Guest{
		{ID: "1", Invited: true, Confirmed: true},
		{ID: "2", Invited: true},
		{ID: "3", Confirmed: true},
	})
	assert.Equal(t, GuestStats{Total: 3, Invited: 2, Confirmed: 2}, stats)
}

func TestSummarizeBudget(t *testing.T) {
	sum := SummarizeBudget(models.BudgetPlan{
		TotalBudget: 100000,
		Categories: []models.BudgetCategory{
			{Name: "Venue", Budgeted: 50000, Spent: 20000},
			{Name: "Catering", Budgeted: 10000, Spent: 8000},
			{Name: "Decor", Budgeted: 10000, Spent: 9500},
			{Name: "Misc", Budgeted: 0, Spent: 500},
		},
	})

	assert.Equal(t, 70000, sum.Allocated)
	assert.Equal(t, 38000, sum.Spent)
	assert.Equal(t, 62000, sum.Remaining)

	levels := []UsageLevel{}
	for _, c := range sum.Categories {
		levels = append(levels, c.Level)
	}
	assert.Equal(t, []UsageLevel{UsageOK, UsageWarning, UsageOver, UsageOK}, levels)
	assert.InDelta(t, 40.0, sum.Categories[0].Percent, 0.001)
	assert.Zero(t, sum.Categories[3].Percent)
}
