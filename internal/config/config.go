package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig
	MongoDB     MongoDBConfig
	JWT         JWTConfig
	Reservation ReservationConfig
	Admin       AdminConfig
	LogLevel    string
}

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// MongoDBConfig holds MongoDB-specific configuration.
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT-specific configuration. ExpiresIn is in seconds.
type JWTConfig struct {
	Secret    string
	ExpiresIn int
}

// ReservationConfig fixes the bookable slot universe: hourly slots
// from OpenHour to CloseHour inclusive.
type ReservationConfig struct {
	OpenHour  int
	CloseHour int
}

// AdminConfig holds the first-run operator account seed.
type AdminConfig struct {
	SeedEmail    string
	SeedPassword string
	SeedName     string
}

// Load loads configuration from config files and environment variables.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine, environment variables and
		// defaults cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration.
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedHosts", []string{"http://localhost:3000"})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "brandsite")
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("Reservation.OpenHour", 9)
	viper.SetDefault("Reservation.CloseHour", 21)
	viper.SetDefault("Admin.SeedName", "Administrator")
	viper.SetDefault("LogLevel", "info")
}
