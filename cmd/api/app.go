package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clima/internal/config"
	"clima/internal/location"
	"clima/internal/weather"
	"clima/internal/widget"

	"github.com/gin-gonic/gin"

	_ "clima/docs" // Ensure docs are imported
)

const shutdownTimeout = 10 * time.Second

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	cfg             *config.Config
	locationService location.Service
	weatherService  weather.Service
	widget          *widget.Widget
	cancel          context.CancelFunc
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Initialize weather service
	weatherSvc, err := weather.NewWeatherService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return newApp(cfg, logger, weatherSvc, location.NewLocationService(cfg, logger))
}

// newApp wires the router around already constructed services
func newApp(cfg *config.Config, logger *slog.Logger, weatherSvc weather.Service, locationSvc location.Service) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery(), requestID(), requestLogger(logger))

	tmpl, err := widget.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse widget templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		router:          router,
		logger:          logger,
		cfg:             cfg,
		locationService: locationSvc,
		weatherService:  weatherSvc,
		widget: widget.New(ctx, weatherSvc, locationSvc, logger,
			widget.WithSubscriberBuffer(cfg.Widget.SubscriberBuffer),
		),
		cancel: cancel,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the widget and serves HTTP until SIGINT or SIGTERM
func (app *App) Run(addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: app.router,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	app.widget.Start()

	select {
	case err := <-errCh:
		app.Close()
		return err
	case sig := <-stop:
		app.logger.Info("shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Websocket streams end once the widget closes their subscriptions
	app.Close()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	app.logger.Info("server stopped")
	return nil
}

// Close cancels in-flight fetches and disconnects widget subscribers
func (app *App) Close() {
	app.cancel()
	app.widget.Close()
}
