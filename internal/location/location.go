package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"clima/internal/config"
	"clima/internal/providers/ipinfo"
	"clima/internal/providers/openstreetmap"
	"clima/internal/types"
)

var (
	ErrInvalidLatitude     = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude    = errors.New("longitude must be between -180 and 180")
	ErrEmptyCity           = errors.New("city name is empty")
	ErrLocationUnavailable = errors.New("location could not be determined")
)

// Service resolves where the widget should show weather for
type Service interface {
	// LocateByIP resolves the default city from the caller's public IP
	LocateByIP(ctx context.Context) (Location, error)
	// FromCity validates a user-entered city name
	FromCity(name string) (Location, error)
	// FromCoords validates coordinates reported by the device sensor
	FromCoords(latitude, longitude float64) (Location, error)
	// Describe reverse geocodes coordinates into human-readable metadata
	Describe(ctx context.Context, coords types.Coords) (types.LocationInfo, error)
}

// IPLocator defines the interface for IP geolocation providers
type IPLocator interface {
	Lookup(ctx context.Context) (*ipinfo.LookupAPIResponse, error)
}

// ReverseGeocodeProvider defines the interface for location data providers
type ReverseGeocodeProvider interface {
	Lookup(ctx context.Context, latitude, longitude float64) (*openstreetmap.LookupAPIResponse, error)
}

// locationService implements the Service interface
type locationService struct {
	ipLocator       IPLocator
	reverseGeocoder ReverseGeocodeProvider
	logger          *slog.Logger
}

// NewLocationService creates a new location service with real provider clients
func NewLocationService(cfg *config.Config, logger *slog.Logger) Service {
	return NewLocationServiceWithProviders(
		ipinfo.NewClientWithBaseURL(cfg.IPInfo.BaseURL, cfg.IPInfo.Timeout, logger),
		openstreetmap.NewClientWithBaseURL(cfg.Nominatim.BaseURL, cfg.Nominatim.UserAgent, cfg.Nominatim.Timeout, logger),
		logger,
	)
}

// NewLocationServiceWithProviders creates a new location service with custom providers
// This is useful for testing with mock providers
func NewLocationServiceWithProviders(
	ipLocator IPLocator,
	reverseGeocoder ReverseGeocodeProvider,
	logger *slog.Logger,
) Service {
	return &locationService{
		ipLocator:       ipLocator,
		reverseGeocoder: reverseGeocoder,
		logger:          logger.With("component", "location-service"),
	}
}

func (s *locationService) LocateByIP(ctx context.Context) (Location, error) {
	resp, err := s.ipLocator.Lookup(ctx)
	if err != nil {
		return Unset(), fmt.Errorf("failed to locate by IP: %w", err)
	}
	if resp == nil {
		return Unset(), fmt.Errorf("failed to locate by IP: %w", ErrLocationUnavailable)
	}

	city := strings.TrimSpace(resp.City)
	if city == "" {
		s.logger.Warn("IP lookup returned no city", "ip", resp.IP)
		return Unset(), fmt.Errorf("IP lookup returned no city: %w", ErrLocationUnavailable)
	}

	s.logger.Debug("located by IP", "city", city, "country", resp.Country)
	return City(city), nil
}

func (s *locationService) FromCity(name string) (Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Unset(), ErrEmptyCity
	}
	return City(name), nil
}

func (s *locationService) FromCoords(latitude, longitude float64) (Location, error) {
	if err := ValidateCoords(latitude, longitude); err != nil {
		return Unset(), err
	}
	return Coordinates(types.NewCoords(latitude, longitude)), nil
}

func (s *locationService) Describe(ctx context.Context, coords types.Coords) (types.LocationInfo, error) {
	resp, err := s.reverseGeocoder.Lookup(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		return types.LocationInfo{}, fmt.Errorf("failed to get location: %w", err)
	}
	return translateLocationInfo(resp)
}

// ValidateCoords checks WGS84 bounds
func ValidateCoords(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return fmt.Errorf("%w: got %f", ErrInvalidLatitude, latitude)
	}
	if longitude < -180 || longitude > 180 {
		return fmt.Errorf("%w: got %f", ErrInvalidLongitude, longitude)
	}
	return nil
}

// translateLocationInfo converts an OpenStreetMap reverse lookup response to domain LocationInfo type
func translateLocationInfo(resp *openstreetmap.LookupAPIResponse) (types.LocationInfo, error) {
	if resp == nil {
		return types.LocationInfo{}, fmt.Errorf("lookup response is nil")
	}

	// Prefer the settlement over the exact feature name
	name := resp.Address.Locality()
	if name == "" {
		name = resp.Name
	}
	if name == "" {
		name = resp.DisplayName
	}

	return types.LocationInfo{
		Name:        name,
		State:       resp.Address.State,
		Country:     resp.Address.Country,
		CountryCode: strings.ToUpper(resp.Address.CountryCode),
	}, nil
}
