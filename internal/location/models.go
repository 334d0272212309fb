package location

import (
	"fmt"

	"clima/internal/types"
)

// Kind tags which variant a Location holds
type Kind int

const (
	KindUnset Kind = iota
	KindCity
	KindCoordinates
)

var kindNames = map[Kind]string{
	KindUnset:       "unset",
	KindCity:        "city",
	KindCoordinates: "coordinates",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown (%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Location is the widget's current place: nothing yet, a city name, or device coordinates.
type Location struct {
	Kind   Kind          `json:"kind"`
	City   string        `json:"city,omitempty"`
	Coords *types.Coords `json:"coordinates,omitempty"`
	// Label is a reverse-geocoded place name for coordinate locations
	Label string `json:"label,omitempty"`
}

func Unset() Location {
	return Location{Kind: KindUnset}
}

func City(name string) Location {
	return Location{Kind: KindCity, City: name}
}

func Coordinates(coords types.Coords) Location {
	return Location{Kind: KindCoordinates, Coords: &coords}
}

// IsSet reports whether the location can drive a weather fetch
func (l Location) IsSet() bool {
	return l.Kind != KindUnset
}

// WithLabel returns a copy carrying a display label
func (l Location) WithLabel(label string) Location {
	l.Label = label
	return l
}

func (l Location) String() string {
	switch l.Kind {
	case KindCity:
		return l.City
	case KindCoordinates:
		if l.Label != "" {
			return l.Label
		}
		if l.Coords != nil {
			return l.Coords.String()
		}
	}
	return ""
}
