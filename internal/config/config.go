package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/YoshiBoneDoc/kolauction/internal/rules"
)

// Configuration keys
const (
	// Server
	Port = "PORT"

	// Logging
	LogLevel = "LOG_LEVEL"

	// Persistent key/value area for the user store
	DataFile = "DATA_FILE"

	// Value ceilings (policy, not constants)
	MaxBid      = "MAX_BID"
	MaxQuantity = "MAX_QUANTITY"
	MaxMinBid   = "MAX_MIN_BID"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
	Storage StorageConfig
	Policy  rules.Policy
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// StorageConfig locates the persistent key/value file
type StorageConfig struct {
	DataFile string
}

// Load reads configuration from environment variables and an optional
// .envrc file.
func Load() (*Config, error) {
	viper.SetConfigName(".envrc")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	setDefaults()

	// Config file is optional; environment variables cover everything.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetString(Port),
		},
		Logging: LoggingConfig{
			Level: viper.GetString(LogLevel),
		},
		Storage: StorageConfig{
			DataFile: viper.GetString(DataFile),
		},
		Policy: rules.Policy{
			MaxBid:      viper.GetInt64(MaxBid),
			MaxQuantity: viper.GetInt64(MaxQuantity),
			MaxMinBid:   viper.GetInt64(MaxMinBid),
		},
	}

	if cfg.Policy.MaxBid <= 0 || cfg.Policy.MaxQuantity <= 0 || cfg.Policy.MaxMinBid <= 0 {
		return nil, fmt.Errorf("invalid policy ceilings: %+v", cfg.Policy)
	}
	return cfg, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	defaults := rules.DefaultPolicy()

	viper.SetDefault(Port, "8080")
	viper.SetDefault(LogLevel, "info")
	viper.SetDefault(DataFile, "kolauction.json")
	viper.SetDefault(MaxBid, defaults.MaxBid)
	viper.SetDefault(MaxQuantity, defaults.MaxQuantity)
	viper.SetDefault(MaxMinBid, defaults.MaxMinBid)
}
