//go:build integration

package openstreetmap

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"
)

func TestClient_Lookup_Integration(t *testing.T) {
	// Test coordinates: Madrid, Puerta del Sol
	lat := 40.4168
	lon := -3.7038

	client := NewClientWithBaseURL("", "", 10*time.Second, slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})))

	t.Logf("Making API call to OpenStreetMap Nominatim API...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	resp, err := client.Lookup(context.Background(), lat, lon)
	if err != nil {
		t.Fatalf("Failed to get location data: %v", err)
	}

	// Pretty print the raw response
	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp.PlaceId == 0 {
		t.Error("PlaceId is 0")
	}

	if resp.DisplayName == "" {
		t.Error("DisplayName is empty")
	}

	if resp.Address.CountryCode != "es" {
		t.Errorf("CountryCode = %q, want es", resp.Address.CountryCode)
	}

	t.Log("✓ API call successful, response structure valid")
}
