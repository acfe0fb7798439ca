package models

// UserProfile is the single local user of the application
type UserProfile struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Phone        string   `json:"phone" yaml:"phone"`
	Email        string   `json:"email" yaml:"email"`
	ProfileImage string   `json:"profileImage" yaml:"profileImage"`
	Bookings     []string `json:"bookings" yaml:"bookings"`
}

// ProfileChanges holds the editable profile fields. Nil fields are left as-is.
type ProfileChanges struct {
	Name         *string `json:"name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

// Apply returns a copy of p with the non-nil changes applied
func (c ProfileChanges) Apply(p UserProfile) UserProfile {
	if c.Name != nil {
		p.Name = *c.Name
	}
	if c.Phone != nil {
		p.Phone = *c.Phone
	}
	if c.Email != nil {
		p.Email = *c.Email
	}
	if c.ProfileImage != nil {
		p.ProfileImage = *c.ProfileImage
	}
	return p
}
