package models

// Availability is the booking state of a venue
type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityBooked      Availability = "booked"
	AvailabilityMaintenance Availability = "maintenance"
)

// Coordinates is a latitude/longitude pair
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Venue is a function hall listed in the catalog. Venues are reference data
// and are never mutated after the catalog is loaded.
type Venue struct {
	ID           string       `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	Location     string       `json:"location" yaml:"location"`
	Pincode      string       `json:"pincode" yaml:"pincode"`
	Coordinates  Coordinates  `json:"coordinates" yaml:"coordinates"`
	Price        int          `json:"price" yaml:"price"`
	Capacity     int          `json:"capacity" yaml:"capacity"`
	Rating       float64      `json:"rating" yaml:"rating"`
	Reviews      int          `json:"reviews" yaml:"reviews"`
	Availability Availability `json:"availability" yaml:"availability"`
	Images       []string     `json:"images" yaml:"images"`
	Amenities    []string     `json:"amenities" yaml:"amenities"`
	Description  string       `json:"description" yaml:"description"`
	ContactPhone string       `json:"contactPhone" yaml:"contactPhone"`
	ContactEmail string       `json:"contactEmail" yaml:"contactEmail"`
}


// Provider is a vendor offering a service
type Provider struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Rating        float64  `json:"rating" yaml:"rating"`
	PricePerPlate int      `json:"pricePerPlate,omitempty" yaml:"pricePerPlate"`
	PriceRange    string   `json:"priceRange,omitempty" yaml:"priceRange"`
	Speciality    string   `json:"speciality" yaml:"speciality"`
	Menu          []string `json:"menu,omitempty" yaml:"menu"`
	Services      []string `json:"services,omitempty" yaml:"services"`
}

// Offerings returns the provider's menu or service list, whichever is set
func (p *Provider) Offerings() []string {
	if len(p.Menu) > 0 {
		return p.Menu
	}
	return p.Services
}

// ServiceCategory groups providers of one kind of wedding service
type ServiceCategory struct {
	ID        string     `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	Icon      string     `json:"icon" yaml:"icon"`
	Providers []Provider `json:"providers" yaml:"providers"`
}
