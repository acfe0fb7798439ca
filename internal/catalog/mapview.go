package catalog

import "hallbook/internal/models"

// MapBounds is the geographic window drawn by the venue map. Pins are placed
// by a linear transform of coordinates into percent offsets.
type MapBounds struct {
	West    float64
	North   float64
	LngSpan float64
	LatSpan float64
}

// DefaultMapBounds covers Bandlaguda Jagir and Chandrayangutta
var DefaultMapBounds = MapBounds{
	West:    78.4700,
	North:   17.3650,
	LngSpan: 0.0150,
	LatSpan: 0.0100,
}

// PinPosition is a pin offset in percent of the map width and height
type PinPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Project converts coordinates to a pin position. Points outside the bounds
// yield values outside 0..100.
func (b MapBounds) Project(c models.Coordinates) PinPosition {
	return PinPosition{
		X: (c.Lng - b.West) / b.LngSpan * 100,
		Y: (b.North - c.Lat) / b.LatSpan * 100,
	}
}
