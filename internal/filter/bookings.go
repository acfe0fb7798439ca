package filter

import "hallbook/internal/models"

// Booking list tabs
const (
	TabAll       = "all"
	TabUpcoming  = "upcoming"
	TabCompleted = "completed"
	TabCancelled = "cancelled"
)

// FilterBookings returns the bookings shown under tab, in stored order.
// Upcoming covers pending and confirmed bookings; an unknown tab shows all.
func FilterBookings(bookings []models.Booking, tab string) []models.Booking {
	var keep func(models.BookingStatus) bool
	switch tab {
	case TabUpcoming:
		keep = func(s models.BookingStatus) bool {
			return s == models.BookingPending || s == models.BookingConfirmed
		}
	case TabCompleted:
		keep = func(s models.BookingStatus) bool { return s == models.BookingCompleted }
	case TabCancelled:
		keep = func(s models.BookingStatus) bool { return s == models.BookingCancelled }
	default:
		return bookings
	}

	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if keep(b.Status) {
			out = append(out, b)
		}
	}
	return out
}
