package widget

import (
	"fmt"
	"math"

	"clima/internal/types"
	"clima/internal/weather"
)

// Labels rendered next to the measurements
const (
	LabelWind        = "Viento"
	LabelHumidity    = "Humedad"
	LabelClouds      = "Nubes"
	LabelPlaceholder = "Buscar ciudad..."
	LabelLocate      = "Geolocalización"
)

// View is a Snapshot rendered into display strings
type View struct {
	State       string `json:"state"`
	Loading     bool   `json:"loading"`
	LoadingText string `json:"loading_text,omitempty"`
	HasRecord   bool   `json:"has_record"`
	Icon        string `json:"icon,omitempty"`
	IconURL     string `json:"icon_url,omitempty"`
	Temperature string `json:"temperature,omitempty"`
	Place       string `json:"place,omitempty"`
	Description string `json:"description,omitempty"`
	Wind        string `json:"wind,omitempty"`
	Humidity    string `json:"humidity,omitempty"`
	Clouds      string `json:"clouds,omitempty"`
	LocalTime   string `json:"local_time,omitempty"`
	Location    string `json:"location,omitempty"`
	Error       string `json:"error,omitempty"`
	Alert       string `json:"alert,omitempty"`
	Generation  uint64 `json:"generation"`

	WindLabel     string `json:"-"`
	HumidityLabel string `json:"-"`
	CloudsLabel   string `json:"-"`
	Placeholder   string `json:"-"`
	LocateLabel   string `json:"-"`
}

// View renders the snapshot. Idle and Loading show the loading text; Failed
// shows the error above the last good record, if any.
func (s Snapshot) View() View {
	v := View{
		State:         s.State.String(),
		Location:      s.Location.String(),
		Error:         s.Error,
		Alert:         s.Alert,
		Generation:    s.Generation,
		WindLabel:     LabelWind,
		HumidityLabel: LabelHumidity,
		CloudsLabel:   LabelClouds,
		Placeholder:   LabelPlaceholder,
		LocateLabel:   LabelLocate,
	}

	if s.State == StateIdle || s.State == StateLoading {
		v.Loading = true
		v.LoadingText = MsgLoading
		return v
	}

	if s.Record != nil {
		renderRecord(&v, s.Record)
	}
	return v
}

func renderRecord(v *View, r *weather.Record) {
	v.HasRecord = true
	v.Icon = r.Glyph()
	v.IconURL = r.IconURL()
	v.Temperature = FormatTemperature(r.Temperature.Celsius)
	v.Place = FormatPlace(r.City, r.Country)
	v.Description = r.Description
	v.Wind = FormatWind(r.WindSpeed())
	v.Humidity = FormatPercent(r.Humidity)
	v.Clouds = FormatPercent(r.Cloudiness)
	if r.Timezone != "" && !r.ObservedAt.IsZero() {
		v.LocalTime = r.ObservedAt.Format("15:04")
	}
}

// FormatTemperature rounds half away from zero: 21.4 -> "21°C", 21.5 -> "22°C"
func FormatTemperature(celsius float64) string {
	return fmt.Sprintf("%d°C", types.NewTemperatureFromCelsius(celsius).RoundedCelsius())
}

// FormatWind converts the provider's m/s into km/h with one decimal
func FormatWind(speedInMps float64) string {
	kph := math.Round(speedInMps*types.MpsToKph*10) / 10
	return fmt.Sprintf("%.1f km/h", kph)
}

func FormatPercent(n int) string {
	return fmt.Sprintf("%d%%", n)
}

func FormatPlace(city, country string) string {
	switch {
	case city == "":
		return country
	case country == "":
		return city
	default:
		return city + ", " + country
	}
}
