package openweathermap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const madridResponse = `{
	"coord": {"lon": -3.7026, "lat": 40.4165},
	"weather": [{"id": 803, "main": "Clouds", "description": "nubes rotas", "icon": "04d"}],
	"main": {"temp": 21.4, "feels_like": 20.9, "temp_min": 19.8, "temp_max": 22.7, "pressure": 1016, "humidity": 45},
	"visibility": 10000,
	"wind": {"speed": 3.6, "deg": 250, "gust": 6.2},
	"clouds": {"all": 75},
	"dt": 1760781600,
	"sys": {"country": "ES", "sunrise": 1760769000, "sunset": 1760809000},
	"timezone": 7200,
	"id": 3117735,
	"name": "Madrid",
	"cod": 200
}`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_GetByCity(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"q":     r.URL.Query().Get("q"),
			"appid": r.URL.Query().Get("appid"),
			"units": r.URL.Query().Get("units"),
			"lang":  r.URL.Query().Get("lang"),
			"lat":   r.URL.Query().Get("lat"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, madridResponse)
	}))
	defer server.Close()

	client := NewClient("test-key", discardLogger(), WithBaseURL(server.URL))

	resp, err := client.GetByCity(context.Background(), "Madrid")
	if err != nil {
		t.Fatalf("GetByCity() unexpected error = %v", err)
	}

	want := map[string]string{"q": "Madrid", "appid": "test-key", "units": "metric", "lang": "es", "lat": ""}
	for key, value := range want {
		if gotQuery[key] != value {
			t.Errorf("query %s = %q, want %q", key, gotQuery[key], value)
		}
	}

	if resp.Name != "Madrid" {
		t.Errorf("Name = %q, want Madrid", resp.Name)
	}
	if resp.Sys.Country != "ES" {
		t.Errorf("Sys.Country = %q, want ES", resp.Sys.Country)
	}
	if resp.Main.Temp != 21.4 {
		t.Errorf("Main.Temp = %v, want 21.4", resp.Main.Temp)
	}
	if len(resp.Weather) != 1 || resp.Weather[0].ID != 803 || resp.Weather[0].Icon != "04d" {
		t.Errorf("Weather = %+v", resp.Weather)
	}
}

func TestClient_GetByCoords(t *testing.T) {
	var lat, lon, q string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lat = r.URL.Query().Get("lat")
		lon = r.URL.Query().Get("lon")
		q = r.URL.Query().Get("q")
		_, _ = io.WriteString(w, madridResponse)
	}))
	defer server.Close()

	client := NewClient("test-key", discardLogger(), WithBaseURL(server.URL), WithLang("en"), WithUnits("imperial"))

	if _, err := client.GetByCoords(context.Background(), 40.4165, -3.7026); err != nil {
		t.Fatalf("GetByCoords() unexpected error = %v", err)
	}
	if lat != "40.4165" || lon != "-3.7026" {
		t.Errorf("lat/lon = %s/%s, want 40.4165/-3.7026", lat, lon)
	}
	if q != "" {
		t.Errorf("q = %q, want empty", q)
	}
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantStatus  int
		errContains string
	}{
		{
			name:        "city not found",
			status:      http.StatusNotFound,
			body:        `{"cod":"404","message":"city not found"}`,
			wantStatus:  http.StatusNotFound,
			errContains: "city not found",
		},
		{
			name:        "invalid key",
			status:      http.StatusUnauthorized,
			body:        `{"cod":401,"message":"Invalid API key."}`,
			wantStatus:  http.StatusUnauthorized,
			errContains: "Invalid API key",
		},
		{
			name:        "non json body",
			status:      http.StatusBadGateway,
			body:        "upstream down",
			wantStatus:  http.StatusBadGateway,
			errContains: "upstream down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer server.Close()

			client := NewClient("k", discardLogger(), WithBaseURL(server.URL))
			_, err := client.GetByCity(context.Background(), "Nowhere")
			if err == nil {
				t.Fatal("GetByCity() expected error but got none")
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error %v is not *APIError", err)
			}
			if StatusCode(err) != tt.wantStatus {
				t.Errorf("StatusCode() = %d, want %d", StatusCode(err), tt.wantStatus)
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error = %v, want error containing %v", err, tt.errContains)
			}
		})
	}
}

func TestClient_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "{not json")
	}))
	defer server.Close()

	client := NewClient("k", discardLogger(), WithBaseURL(server.URL))
	_, err := client.GetByCity(context.Background(), "Madrid")
	if err == nil || !strings.Contains(err.Error(), "failed to decode response") {
		t.Errorf("GetByCity() error = %v, want decode error", err)
	}
	if StatusCode(err) != 0 {
		t.Errorf("StatusCode() = %d, want 0", StatusCode(err))
	}
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	client := NewClient("k", discardLogger(), WithBaseURL(server.URL), WithTimeout(50*time.Millisecond))
	_, err := client.GetByCity(context.Background(), "Madrid")
	if err == nil || !strings.Contains(err.Error(), "failed to fetch") {
		t.Errorf("GetByCity() error = %v, want fetch error", err)
	}
}

func TestClient_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, madridResponse)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient("k", discardLogger(), WithBaseURL(server.URL))
	_, err := client.GetByCity(ctx, "Madrid")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("GetByCity() error = %v, want context.Canceled", err)
	}
}
