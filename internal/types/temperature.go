package types

import "math"

type Temperature struct {
	Celsius    float64 `json:"celsius"`
	Fahrenheit float64 `json:"fahrenheit"`
}

func NewTemperatureFromCelsius(celsius float64) Temperature {
	return Temperature{
		Celsius:    celsius,
		Fahrenheit: celsius*9/5 + 32,
	}
}

// RoundedCelsius rounds half away from zero, so 21.5 becomes 22 and -21.5 becomes -22.
func (t Temperature) RoundedCelsius() int {
	return int(math.Round(t.Celsius))
}
