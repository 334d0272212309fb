package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Log         LogConfig
	OpenWeather OpenWeatherConfig
	IPInfo      IPInfoConfig
	Nominatim   NominatimConfig
	Widget      WidgetConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// OpenWeatherConfig holds the current-weather API settings
type OpenWeatherConfig struct {
	APIKey  string
	BaseURL string
	Units   string
	Lang    string
	Timeout time.Duration
}

// IPInfoConfig holds the IP geolocation endpoint
type IPInfoConfig struct {
	BaseURL string
	Timeout time.Duration
}

// NominatimConfig holds the reverse geocoding endpoint
type NominatimConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// WidgetConfig holds presentation settings
type WidgetConfig struct {
	SubscriberBuffer int
	WriteTimeout     time.Duration
}

// Load reads configuration from .env, config file and environment variables
func Load() (*Config, error) {
	// A .env file is optional; it only seeds the process environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.clima")

	setDefaults(v)

	// Read from environment variables, e.g. CLIMA_OPENWEATHER_APIKEY
	v.SetEnvPrefix("CLIMA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// AutomaticEnv only resolves keys viper already knows about
	v.SetDefault("openweather.apikey", "")
	v.SetDefault("openweather.baseurl", "https://api.openweathermap.org/data/2.5/weather")
	v.SetDefault("openweather.units", "metric")
	v.SetDefault("openweather.lang", "es")
	v.SetDefault("openweather.timeout", 10*time.Second)

	v.SetDefault("ipinfo.baseurl", "https://ipinfo.io/json")
	v.SetDefault("ipinfo.timeout", 5*time.Second)

	v.SetDefault("nominatim.baseurl", "https://nominatim.openstreetmap.org/reverse")
	v.SetDefault("nominatim.useragent", "clima/1.0")
	v.SetDefault("nominatim.timeout", 5*time.Second)

	v.SetDefault("widget.subscriberbuffer", 10)
	v.SetDefault("widget.writetimeout", 5*time.Second)
}

// Validate reports configuration that would make every weather request fail
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OpenWeather.APIKey) == "" {
		return errors.New("openweather api key is not set (CLIMA_OPENWEATHER_APIKEY)")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
