package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	APIBaseURL      string `mapstructure:"API_BASE_URL"`
	HTTPTimeoutSecs int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`
	Env             string `mapstructure:"ENV"`
	LogLevel        string `mapstructure:"LOG_LEVEL"`

	// Geocoding / geolocation configuration.
	GeocodeURL     string `mapstructure:"GEOCODE_URL"`
	GeoLookupURL   string `mapstructure:"GEO_LOOKUP_URL"`
	GeoTimeoutSecs int    `mapstructure:"GEO_TIMEOUT_SECONDS"`

	// Session storage configuration.
	StorageBackend string `mapstructure:"STORAGE_BACKEND"` // "file" or "redis"
	StoragePath    string `mapstructure:"STORAGE_PATH"`

	// Redis configuration (used when STORAGE_BACKEND is "redis").
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("API_BASE_URL", "https://fixnow-backend-kjrk.onrender.com")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 15)
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("GEOCODE_URL", "")
	viper.SetDefault("GEO_LOOKUP_URL", "http://ip-api.com/json/")
	viper.SetDefault("GEO_TIMEOUT_SECONDS", 10)
	viper.SetDefault("STORAGE_BACKEND", "file")
	viper.SetDefault("STORAGE_PATH", defaultStoragePath())
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 1)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(home, ".fixnow", "session.json")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
