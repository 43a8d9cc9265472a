package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"outing-advisor/internal/config"
	"outing-advisor/internal/location"
	"outing-advisor/internal/providers/googlemaps"
	"outing-advisor/internal/providers/openweather"
	"outing-advisor/internal/session"
	"outing-advisor/internal/timezone"
	"outing-advisor/internal/travel"
	"outing-advisor/internal/weather"

	_ "outing-advisor/docs" // Import generated docs
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	cfg             *config.Config
	locationService location.Service
	weatherService  weather.Service
	travelService   travel.Service
	timezoneService timezone.Service
	sessions        *session.Manager
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	weatherKey := os.Getenv("OPENWEATHERMAP_API_KEY")
	if weatherKey == "" {
		return nil, fmt.Errorf("OPENWEATHERMAP_API_KEY is not set")
	}
	mapsKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if mapsKey == "" {
		return nil, fmt.Errorf("GOOGLE_MAPS_API_KEY is not set")
	}

	mapsClient := googlemaps.NewClient(mapsKey, cfg.CallTimeout())
	weatherClient := openweather.NewClient(weatherKey, cfg.Weather.Units, cfg.Weather.Lang, cfg.CallTimeout())

	timezoneSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}

	app := &App{
		router:          router,
		logger:          logger,
		cfg:             cfg,
		locationService: location.NewLocationService(mapsClient, logger),
		weatherService:  weather.NewWeatherService(weatherClient, logger),
		travelService:   travel.NewTravelService(mapsClient, logger),
		timezoneService: timezoneSvc,
		sessions:        session.NewManager(),
	}

	logger.Info("application initialized")

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
