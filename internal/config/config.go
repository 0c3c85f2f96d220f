package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	DB      DatabaseConfig
	Weather WeatherConfig
	Geocode GeocodeConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Path string
}

type WeatherConfig struct {
	APIKey      string
	BaseURL     string
	IconURL     string
	DefaultCity string
	Timeout     time.Duration
}

type GeocodeConfig struct {
	BaseURL   string
	Timeout   time.Duration
	CacheSize int
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "localhost"),
			Port: getEnvInt("SERVER_PORT", 8080),
		},
		DB: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/flood-safety.db"),
		},
		Weather: WeatherConfig{
			APIKey:      getEnv("OWM_API_KEY", ""),
			BaseURL:     getEnv("OWM_URL", "https://api.openweathermap.org/data/2.5/weather"),
			IconURL:     getEnv("OWM_ICON_URL", "https://openweathermap.org/img/wn/%s@2x.png"),
			DefaultCity: getEnv("WEATHER_DEFAULT_CITY", "London"),
			Timeout:     getEnvDuration("WEATHER_TIMEOUT", 15*time.Second),
		},
		Geocode: GeocodeConfig{
			BaseURL:   getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org/reverse"),
			Timeout:   getEnvDuration("GEOCODER_TIMEOUT", 10*time.Second),
			CacheSize: getEnvInt("GEOCODER_CACHE_SIZE", 256),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	if c.Weather.Timeout <= 0 {
		return fmt.Errorf("weather timeout must be positive")
	}
	if c.Geocode.Timeout <= 0 {
		return fmt.Errorf("geocoder timeout must be positive")
	}
	if c.Geocode.CacheSize < 1 {
		return fmt.Errorf("geocoder cache size must be at least 1")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
