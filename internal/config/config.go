package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// TMDB
	TMDBAPIKey string

	// Cache
	RedisAddr    string
	CacheBackend string // "redis" or "memory"

	// Server
	ServerPort string

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Load .env file if it exists (ignore if not found)
	_ = viper.ReadInConfig()

	// Set defaults
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("CACHE_BACKEND", "redis")
	viper.SetDefault("SERVER_PORT", "3000")
	viper.SetDefault("LOG_LEVEL", "info")

	config := &Config{
		TMDBAPIKey:   viper.GetString("TMDB_API_KEY"),
		RedisAddr:    viper.GetString("REDIS_ADDR"),
		CacheBackend: viper.GetString("CACHE_BACKEND"),
		ServerPort:   viper.GetString("SERVER_PORT"),
		LogLevel:     viper.GetString("LOG_LEVEL"),
	}

	// Validate required fields
	if config.TMDBAPIKey == "" {
		return nil, fmt.Errorf("TMDB_API_KEY is required")
	}
	if config.CacheBackend != "redis" && config.CacheBackend != "memory" {
		return nil, fmt.Errorf("CACHE_BACKEND must be \"redis\" or \"memory\", got %q", config.CacheBackend)
	}

	return config, nil
}
