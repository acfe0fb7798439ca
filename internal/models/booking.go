package models

import "time"

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Valid reports whether s is a known booking status
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// BookedService is a price snapshot of a service attached to a booking
type BookedService struct {
	ServiceID  string `json:"serviceId"`
	ProviderID string `json:"providerId"`
	Name       string `json:"name"`
	Price      int    `json:"price"`
}

// Booking is a venue reservation. Venue details are copied at creation time
// and do not follow later catalog changes.
type Booking struct {
	ID              string          `json:"id"`
	VenueID         string          `json:"venueId"`
	VenueName       string          `json:"venueName"`
	VenueLocation   string          `json:"venueLocation"`
	Status          BookingStatus   `json:"status"`
	EventDate       time.Time       `json:"eventDate"`
	BookingDate     time.Time       `json:"bookingDate"`
	GuestCount      int             `json:"guestCount,omitempty"`
	TotalAmount     int             `json:"totalAmount"`
	Services        []BookedService `json:"services,omitempty"`
	SpecialRequests string          `json:"specialRequests,omitempty"`
}

// BookingRequest is the input of the create-booking action
type BookingRequest struct {
	VenueID         string          `json:"venueId"`
	EventDate       time.Time       `json:"eventDate"`
	GuestCount      int             `json:"guestCount,omitempty"`
	Services        []BookedService `json:"services,omitempty"`
	SpecialRequests string          `json:"specialRequests,omitempty"`
}
