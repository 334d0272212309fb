package weather

import (
	"time"

	"clima/internal/conditions"
	"clima/internal/types"
)

// Record is a normalized snapshot of one current-weather query.
// It is never mutated after construction.
type Record struct {
	City          string              `json:"city"`
	Country       string              `json:"country"`
	Temperature   types.Temperature   `json:"temperature"`
	FeelsLike     types.Temperature   `json:"feels_like"`
	Humidity      int                 `json:"humidity"`
	Wind          types.Wind          `json:"wind"`
	Cloudiness    int                 `json:"cloudiness"`
	Description   string              `json:"description"`
	ConditionCode int                 `json:"condition_code"`
	Category      conditions.Category `json:"category"`
	Icon          string              `json:"icon"`
	Coordinates   types.Coords        `json:"coordinates"`
	Timezone      string              `json:"timezone,omitempty"`
	ObservedAt    time.Time           `json:"observed_at"` // in Timezone when set
	FetchedAt     time.Time           `json:"fetched_at"`
}

// Glyph resolves the emoji for the record's condition
func (r *Record) Glyph() string {
	return conditions.Icon(r.Category)
}

// IconURL is the provider-hosted artwork for the condition
func (r *Record) IconURL() string {
	return conditions.IconURL(r.Icon)
}

// WindSpeed is the raw provider speed in m/s
func (r *Record) WindSpeed() float64 {
	return r.Wind.SpeedInMps
}
