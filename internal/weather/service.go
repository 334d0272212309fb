package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"clima/internal/conditions"
	"clima/internal/config"
	"clima/internal/providers/openweathermap"
	"clima/internal/timezone"
	"clima/internal/types"
)

var (
	ErrEmptyCity           = errors.New("city name is empty")
	ErrInvalidCoordinates  = errors.New("coordinates out of range")
	ErrLocationNotFound    = errors.New("location not found")
	ErrUnauthorized        = errors.New("weather API rejected the credentials")
	ErrIncompleteResponse  = errors.New("weather response has no condition data")
	ErrUpstreamUnavailable = errors.New("weather API unavailable")
)

// CurrentWeatherProvider fetches raw current conditions
type CurrentWeatherProvider interface {
	GetByCity(ctx context.Context, city string) (*openweathermap.CurrentWeatherAPIResponse, error)
	GetByCoords(ctx context.Context, latitude, longitude float64) (*openweathermap.CurrentWeatherAPIResponse, error)
}

type Service interface {
	FetchByCity(ctx context.Context, name string) (*Record, error)
	FetchByCoords(ctx context.Context, latitude, longitude float64) (*Record, error)
}

type weatherService struct {
	provider        CurrentWeatherProvider
	timezoneService timezone.Service
	logger          *slog.Logger
	now             func() time.Time
}

func NewWeatherService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}

	client := openweathermap.NewClient(
		cfg.OpenWeather.APIKey,
		logger,
		openweathermap.WithBaseURL(cfg.OpenWeather.BaseURL),
		openweathermap.WithUnits(cfg.OpenWeather.Units),
		openweathermap.WithLang(cfg.OpenWeather.Lang),
		openweathermap.WithTimeout(cfg.OpenWeather.Timeout),
	)

	return NewWeatherServiceWithProvider(client, tzSvc, logger), nil
}

// NewWeatherServiceWithProvider wires custom dependencies; timezoneService may be nil
func NewWeatherServiceWithProvider(
	provider CurrentWeatherProvider,
	timezoneService timezone.Service,
	logger *slog.Logger,
) Service {
	return &weatherService{
		provider:        provider,
		timezoneService: timezoneService,
		logger:          logger.With("component", "weather-service"),
		now:             time.Now,
	}
}

func (s *weatherService) FetchByCity(ctx context.Context, name string) (*Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCity
	}

	apiResponse, err := s.provider.GetByCity(ctx, name)
	if err != nil {
		s.logger.Error("failed to get current weather by city", "city", name, "error", err)
		return nil, fmt.Errorf("failed to get weather for %q: %w", name, classifyProviderError(err))
	}

	return s.mapResponse(apiResponse)
}

func (s *weatherService) FetchByCoords(ctx context.Context, latitude, longitude float64) (*Record, error) {
	coords := types.NewCoords(latitude, longitude)
	if !coords.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCoordinates, coords)
	}

	apiResponse, err := s.provider.GetByCoords(ctx, latitude, longitude)
	if err != nil {
		s.logger.Error("failed to get current weather by coordinates",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get weather for %s: %w", coords, classifyProviderError(err))
	}

	return s.mapResponse(apiResponse)
}

// classifyProviderError attaches a sentinel to provider failures while keeping the cause
func classifyProviderError(err error) error {
	switch openweathermap.StatusCode(err) {
	case 0:
		return err
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrLocationNotFound, err)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	default:
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
}

func (s *weatherService) mapResponse(apiResponse *openweathermap.CurrentWeatherAPIResponse) (*Record, error) {
	if apiResponse == nil || len(apiResponse.Weather) == 0 {
		return nil, ErrIncompleteResponse
	}

	condition := apiResponse.Weather[0]
	coords := types.NewCoords(apiResponse.Coord.Lat, apiResponse.Coord.Lon)

	record := &Record{
		City:          apiResponse.Name,
		Country:       apiResponse.Sys.Country,
		Temperature:   types.NewTemperatureFromCelsius(apiResponse.Main.Temp),
		FeelsLike:     types.NewTemperatureFromCelsius(apiResponse.Main.FeelsLike),
		Humidity:      apiResponse.Main.Humidity,
		Wind:          types.NewWindFromMps(apiResponse.Wind.Speed, apiResponse.Wind.Gust, apiResponse.Wind.Deg),
		Cloudiness:    apiResponse.Clouds.All,
		Description:   condition.Description,
		ConditionCode: condition.ID,
		Category:      conditions.Classify(condition.ID),
		Icon:          condition.Icon,
		Coordinates:   coords,
		FetchedAt:     s.now().UTC(),
	}
	if apiResponse.Dt > 0 {
		record.ObservedAt = time.Unix(apiResponse.Dt, 0).UTC()
	}

	if record.Category == conditions.Unknown {
		s.logger.Warn("unmapped condition code", "code", condition.ID, "city", record.City)
	}

	// ObservedAt is carried on the city's wall clock when its zone is known
	if s.timezoneService != nil {
		local, err := s.timezoneService.LocalTime(coords.Latitude, coords.Longitude, record.ObservedAt)
		if err != nil {
			// Ocean points have no zone; the record is still usable
			s.logger.Debug("no timezone for location", "coordinates", coords.String(), "error", err)
		} else {
			record.Timezone = local.Location().String()
			record.ObservedAt = local
		}
	}

	return record, nil
}
