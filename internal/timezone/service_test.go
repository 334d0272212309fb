package timezone

import (
	"testing"
	"time"
)

func TestService_GetTimezone(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
	}{
		{
			name:      "Madrid, Spain",
			latitude:  40.4165,
			longitude: -3.7026,
			want:      "Europe/Madrid",
		},
		{
			name:      "Bogotá, Colombia",
			latitude:  4.6097,
			longitude: -74.0817,
			want:      "America/Bogota",
		},
		{
			name:      "Buenos Aires, Argentina",
			latitude:  -34.6037,
			longitude: -58.3816,
			want:      "America/Argentina/Buenos_Aires",
		},
		{
			name:      "Mexico City, Mexico",
			latitude:  19.4326,
			longitude: -99.1332,
			want:      "America/Mexico_City",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetTimezone(tt.latitude, tt.longitude)
			if err != nil {
				t.Errorf("GetTimezone() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("GetTimezone() = %v, want %v", got, tt.want)
			}
		})
	}
}

type stubFinder string

func (s stubFinder) GetTimezoneName(lng float64, lat float64) string {
	return string(s)
}

func TestService_LocalTime(t *testing.T) {
	instant := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	svc := NewServiceWithFinder(stubFinder("America/Bogota"))
	got, err := svc.LocalTime(4.6, -74.08, instant)
	if err != nil {
		t.Fatalf("LocalTime() unexpected error = %v", err)
	}
	if got.Hour() != 7 {
		t.Errorf("LocalTime().Hour() = %d, want 7", got.Hour())
	}
	if !got.Equal(instant) {
		t.Errorf("LocalTime() = %v, want same instant as %v", got, instant)
	}
}

func TestService_LocalTime_Errors(t *testing.T) {
	tests := []struct {
		name   string
		finder stubFinder
	}{
		{name: "no timezone", finder: ""},
		{name: "unloadable timezone", finder: "Not/AZone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewServiceWithFinder(tt.finder)
			if _, err := svc.LocalTime(0, 0, time.Now()); err == nil {
				t.Error("LocalTime() expected error but got none")
			}
		})
	}
}
