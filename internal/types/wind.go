package types

import "math"

const MpsToKph = 3.6

var cardinalDirections = [16]string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

type Wind struct {
	SpeedInMps        float64 `json:"speed_mps"`
	SpeedInKph        float64 `json:"speed_kph"`
	GustsInMps        float64 `json:"gusts_mps"`
	GustsInKph        float64 `json:"gusts_kph"`
	DirectionDegrees  float64 `json:"direction_degrees"`
	DirectionCardinal string  `json:"direction_cardinal"`
}

// NewWindFromMps builds a Wind from the metric values OpenWeatherMap reports (m/s).
func NewWindFromMps(speedInMps, gustsInMps, directionDegrees float64) Wind {
	return Wind{
		SpeedInMps:        speedInMps,
		SpeedInKph:        speedInMps * MpsToKph,
		GustsInMps:        gustsInMps,
		GustsInKph:        gustsInMps * MpsToKph,
		DirectionDegrees:  directionDegrees,
		DirectionCardinal: CardinalDirection(directionDegrees),
	}
}

// CardinalDirection maps degrees onto the 16-point compass rose.
func CardinalDirection(degrees float64) string {
	direction := math.Floor(degrees/22.5 + .5) // .5 for rounding
	index := int(direction) % 16
	if index < 0 {
		index += 16
	}
	return cardinalDirections[index]
}
