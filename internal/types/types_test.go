package types

import "testing"

func TestTemperature_RoundedCelsius(t *testing.T) {
	tests := []struct {
		name     string
		celsius  float64
		expected int
	}{
		{name: "rounds down below half", celsius: 21.4, expected: 21},
		{name: "rounds half up", celsius: 21.5, expected: 22},
		{name: "rounds above half", celsius: 21.6, expected: 22},
		{name: "negative half away from zero", celsius: -21.5, expected: -22},
		{name: "small negative to zero", celsius: -0.4, expected: 0},
		{name: "exact", celsius: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewTemperatureFromCelsius(tt.celsius).RoundedCelsius()
			if result != tt.expected {
				t.Errorf("RoundedCelsius(%v) = %d, want %d", tt.celsius, result, tt.expected)
			}
		})
	}
}

func TestNewTemperatureFromCelsius(t *testing.T) {
	temp := NewTemperatureFromCelsius(100)
	if temp.Fahrenheit != 212 {
		t.Errorf("Fahrenheit = %v, want 212", temp.Fahrenheit)
	}
}

func TestCardinalDirection(t *testing.T) {
	tests := []struct {
		degrees  float64
		expected string
	}{
		{0, "N"},
		{11, "N"},
		{12, "NNE"},
		{45, "NE"},
		{90, "E"},
		{180, "S"},
		{270, "W"},
		{350, "N"},
		{360, "N"},
		{-90, "W"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := CardinalDirection(tt.degrees)
			if result != tt.expected {
				t.Errorf("CardinalDirection(%v) = %q, want %q", tt.degrees, result, tt.expected)
			}
		})
	}
}

func TestNewWindFromMps(t *testing.T) {
	wind := NewWindFromMps(10, 20, 90)
	if wind.SpeedInKph != 36 {
		t.Errorf("SpeedInKph = %v, want 36", wind.SpeedInKph)
	}
	if wind.GustsInKph != 72 {
		t.Errorf("GustsInKph = %v, want 72", wind.GustsInKph)
	}
	if wind.DirectionCardinal != "E" {
		t.Errorf("DirectionCardinal = %q, want %q", wind.DirectionCardinal, "E")
	}
}

func TestCoords_Valid(t *testing.T) {
	tests := []struct {
		name   string
		coords Coords
		want   bool
	}{
		{name: "origin", coords: NewCoords(0, 0), want: true},
		{name: "bounds", coords: NewCoords(-90, 180), want: true},
		{name: "latitude too high", coords: NewCoords(90.1, 0), want: false},
		{name: "longitude too low", coords: NewCoords(0, -180.5), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coords.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}
