package models

// Guest represents a wedding guest on the planning guest list
type Guest struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Relation  string `json:"relation" yaml:"relation"`
	Phone     string `json:"phone,omitempty" yaml:"phone"`
	Address   string `json:"address,omitempty" yaml:"address"`
	Invited   bool   `json:"invited" yaml:"invited"`
	Confirmed bool   `json:"confirmed" yaml:"confirmed"`
	Category  string `json:"category" yaml:"category"`
}

// GuestField names one of the independent boolean flags on a Guest
type GuestField string

const (
	GuestInvited   GuestField = "invited"
	GuestConfirmed GuestField = "confirmed"
)

// DefaultGuestCategory is applied when a new guest has no category
const DefaultGuestCategory = "Family"

// Valid reports whether f names a toggleable flag
func (f GuestField) Valid() bool {
	return f == GuestInvited || f == GuestConfirmed
}

// NewGuest is the candidate record accepted by the add-guest action
type NewGuest struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Category string `json:"category,omitempty"`
}

// InvitationRequest describes a single outgoing invitation message
type InvitationRequest struct {
	PhoneNumber string
	Name        string
	Message     string
}
