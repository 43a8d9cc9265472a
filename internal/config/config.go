package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Weather   WeatherConfig
	Reasoning ReasoningConfig
	Advisor   AdvisorConfig
	Pipeline  PipelineConfig
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

// WeatherConfig holds weather provider parameters. The API key itself
// comes from the environment (OPENWEATHERMAP_API_KEY), never from file.
type WeatherConfig struct {
	Units string // metric
	Lang  string // description language code
}

// ReasoningConfig holds the reasoning-service parameters. Credentials
// are per session and never appear here.
type ReasoningConfig struct {
	Model     string
	MaxTokens int
}

// AdvisorConfig holds the decision-window and rule-engine parameters
type AdvisorConfig struct {
	ReferenceHour     int  // local hour each window entry is sampled at
	MaxDays           int  // window length bound
	ExcludeToday      bool // start the window tomorrow
	FavorableCodeMin  int  // condition codes at/above this are favorable
	FavorableKeywords []string
}

// PipelineConfig holds orchestration behavior
type PipelineConfig struct {
	Mode          string // fail-fast, best-effort
	CallTimeoutMS int    // per external call
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.outing-advisor")

	// Set defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.ginmode", "release")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("weather.units", "metric")
	viper.SetDefault("weather.lang", "en")
	viper.SetDefault("reasoning.model", "claude-3-5-sonnet-20240620")
	viper.SetDefault("reasoning.maxTokens", 8192)
	viper.SetDefault("advisor.referenceHour", 12)
	viper.SetDefault("advisor.maxDays", 5)
	viper.SetDefault("advisor.excludeToday", false)
	viper.SetDefault("advisor.favorableCodeMin", 800)
	viper.SetDefault("advisor.favorableKeywords", []string{"clear", "sun", "few clouds", "scattered clouds"})
	viper.SetDefault("pipeline.mode", "fail-fast")
	viper.SetDefault("pipeline.callTimeoutMS", 10000)

	// Read from environment variables
	viper.SetEnvPrefix("OUTING_ADVISOR")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// CallTimeout returns the per-call timeout as a duration
func (c *Config) CallTimeout() time.Duration {
	return time.Duration(c.Pipeline.CallTimeoutMS) * time.Millisecond
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
