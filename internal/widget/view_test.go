package widget

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"clima/internal/conditions"
	"clima/internal/location"
	"clima/internal/types"
	"clima/internal/weather"
)

func TestFormatTemperature(t *testing.T) {
	tests := []struct {
		celsius  float64
		expected string
	}{
		{21.4, "21°C"},
		{21.5, "22°C"},
		{-0.4, "0°C"},
		{-3.5, "-4°C"},
		{0, "0°C"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := FormatTemperature(tt.celsius); got != tt.expected {
				t.Errorf("FormatTemperature(%v) = %q, want %q", tt.celsius, got, tt.expected)
			}
		})
	}
}

func TestFormatWind(t *testing.T) {
	tests := []struct {
		mps      float64
		expected string
	}{
		{0, "0.0 km/h"},
		{1, "3.6 km/h"},
		{2.5, "9.0 km/h"},
		{4.12, "14.8 km/h"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := FormatWind(tt.mps); got != tt.expected {
				t.Errorf("FormatWind(%v) = %q, want %q", tt.mps, got, tt.expected)
			}
		})
	}
}

func TestFormatPlace(t *testing.T) {
	tests := []struct {
		city, country, expected string
	}{
		{"Lima", "PE", "Lima, PE"},
		{"Lima", "", "Lima"},
		{"", "PE", "PE"},
		{"", "", ""},
	}

	for _, tt := range tests {
		if got := FormatPlace(tt.city, tt.country); got != tt.expected {
			t.Errorf("FormatPlace(%q, %q) = %q, want %q", tt.city, tt.country, got, tt.expected)
		}
	}
}

func TestSnapshot_View(t *testing.T) {
	lima := &weather.Record{
		City:        "Lima",
		Country:     "PE",
		Temperature: types.NewTemperatureFromCelsius(21.5),
		Humidity:    77,
		Wind:        types.NewWindFromMps(2.5, 0, 180),
		Cloudiness:  40,
		Description: "nubes dispersas",
		Icon:        "03d",
		Category:    conditions.Clouds,
		Timezone:    "America/Lima",
		ObservedAt:  time.Date(2026, 10, 18, 12, 0, 0, 0, time.FixedZone("America/Lima", -5*60*60)),
	}

	tests := []struct {
		name     string
		snapshot Snapshot
		validate func(*testing.T, View)
	}{
		{
			name:     "idle",
			snapshot: Snapshot{State: StateIdle},
			validate: func(t *testing.T, v View) {
				if !v.Loading || v.LoadingText != MsgLoading {
					t.Errorf("view = %+v, want loading text", v)
				}
				if v.HasRecord {
					t.Error("idle view should not show a record")
				}
			},
		},
		{
			name:     "loading hides previous record",
			snapshot: Snapshot{State: StateLoading, Record: lima, Location: location.City("Quito")},
			validate: func(t *testing.T, v View) {
				if !v.Loading || v.HasRecord || v.Temperature != "" {
					t.Errorf("view = %+v, want loading only", v)
				}
				if v.Location != "Quito" {
					t.Errorf("Location = %q, want Quito", v.Location)
				}
			},
		},
		{
			name:     "ready",
			snapshot: Snapshot{State: StateReady, Record: lima, Location: location.City("Lima")},
			validate: func(t *testing.T, v View) {
				want := View{
					State:       "ready",
					HasRecord:   true,
					Icon:        "☁️",
					IconURL:     "https://openweathermap.org/img/wn/03d@4x.png",
					Temperature: "22°C",
					Place:       "Lima, PE",
					Description: "nubes dispersas",
					Wind:        "9.0 km/h",
					Humidity:    "77%",
					Clouds:      "40%",
					LocalTime:   "12:00",
					Location:    "Lima",
				}
				if v.State != want.State || v.HasRecord != want.HasRecord || v.Loading {
					t.Errorf("state = %q/%v/%v", v.State, v.HasRecord, v.Loading)
				}
				for _, f := range []struct{ name, got, want string }{
					{"Icon", v.Icon, want.Icon},
					{"IconURL", v.IconURL, want.IconURL},
					{"Temperature", v.Temperature, want.Temperature},
					{"Place", v.Place, want.Place},
					{"Description", v.Description, want.Description},
					{"Wind", v.Wind, want.Wind},
					{"Humidity", v.Humidity, want.Humidity},
					{"Clouds", v.Clouds, want.Clouds},
					{"LocalTime", v.LocalTime, want.LocalTime},
					{"Location", v.Location, want.Location},
				} {
					if f.got != f.want {
						t.Errorf("%s = %q, want %q", f.name, f.got, f.want)
					}
				}
				if v.WindLabel != "Viento" || v.HumidityLabel != "Humedad" || v.CloudsLabel != "Nubes" {
					t.Errorf("labels = %q/%q/%q", v.WindLabel, v.HumidityLabel, v.CloudsLabel)
				}
				if v.Placeholder != "Buscar ciudad..." {
					t.Errorf("Placeholder = %q", v.Placeholder)
				}
			},
		},
		{
			name:     "failed without record",
			snapshot: Snapshot{State: StateFailed, Error: MsgLocationUnknown},
			validate: func(t *testing.T, v View) {
				if v.Loading || v.HasRecord {
					t.Errorf("view = %+v, want error only", v)
				}
				if v.Error != MsgLocationUnknown {
					t.Errorf("Error = %q, want %q", v.Error, MsgLocationUnknown)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, tt.snapshot.View())
		})
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateIdle, "idle"},
		{StateLoading, "loading"},
		{StateReady, "ready"},
		{StateFailed, "failed"},
		{State(42), "unknown (42)"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", int(tt.state), got, tt.expected)
		}
	}
}

func TestReportedPosition(t *testing.T) {
	lat, lon := 40.4168, -3.7038

	tests := []struct {
		name     string
		position ReportedPosition
		wantErr  error
	}{
		{name: "position", position: ReportedPosition{Latitude: &lat, Longitude: &lon}},
		{name: "unsupported", position: ReportedPosition{Unsupported: true, Latitude: &lat, Longitude: &lon}, wantErr: ErrSensorUnsupported},
		{name: "sensor error", position: ReportedPosition{Error: "User denied Geolocation"}, wantErr: ErrSensorFailed},
		{name: "missing longitude", position: ReportedPosition{Latitude: &lat}, wantErr: ErrSensorFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.position.CurrentPosition(context.Background())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("CurrentPosition() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CurrentPosition() unexpected error = %v", err)
			}
			if got != types.NewCoords(lat, lon) {
				t.Errorf("CurrentPosition() = %v, want %v,%v", got, lat, lon)
			}
		})
	}
}

func TestRenderHTML(t *testing.T) {
	snap := Snapshot{
		State:    StateReady,
		Location: location.City("Lima"),
		Record: &weather.Record{
			City:        "Lima",
			Country:     "PE",
			Temperature: types.NewTemperatureFromCelsius(21.4),
			Humidity:    77,
			Wind:        types.NewWindFromMps(2.5, 0, 0),
			Cloudiness:  40,
			Description: "<b>nubes</b>",
		},
	}

	var buf bytes.Buffer
	if err := RenderHTML(&buf, snap); err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}

	html := buf.String()
	for _, want := range []string{"21°C", "Lima, PE", "Viento", "Humedad", "Nubes", "Buscar ciudad...", "&lt;b&gt;nubes&lt;/b&gt;"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
	if strings.Contains(html, "<b>nubes</b>") {
		t.Error("description was not escaped")
	}
}
