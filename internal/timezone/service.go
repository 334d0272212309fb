package timezone

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata" // LoadLocation must work in scratch containers

	"github.com/ringsaturn/tzf"
)

// Service provides timezone lookup functionality
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
	LocalTime(latitude, longitude float64, t time.Time) (time.Time, error)
}

// NameFinder is the subset of tzf.F the service relies on
type NameFinder interface {
	GetTimezoneName(lng float64, lat float64) string
}

// service implements timezone lookup using tzf
type service struct {
	finder NameFinder
	mu     sync.RWMutex
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService creates or returns the singleton timezone service
// Uses singleton pattern because tzf.Finder loads timezone data into memory
func NewService() (Service, error) {
	once.Do(func() {
		finder, findErr := tzf.NewDefaultFinder()
		if findErr != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", findErr)
			return
		}
		instance = &service{
			finder: finder,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// NewServiceWithFinder wraps a custom finder, bypassing the shared tzf data
func NewServiceWithFinder(finder NameFinder) Service {
	return &service{finder: finder}
}

// GetTimezone returns the IANA timezone name for the given coordinates
// Returns timezone names like "Europe/Madrid", "America/Bogota", etc.
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	timezone := s.finder.GetTimezoneName(longitude, latitude)
	if timezone == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}

	return timezone, nil
}

// LocalTime converts t into the wall clock of the timezone at the given coordinates
func (s *service) LocalTime(latitude, longitude float64, t time.Time) (time.Time, error) {
	name, err := s.GetTimezone(latitude, longitude)
	if err != nil {
		return time.Time{}, err
	}

	location, err := time.LoadLocation(name)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load timezone location %s: %w", name, err)
	}

	return t.In(location), nil
}
