package config

import (
	"fmt"

	"github.com/spf13/viper"

	"titanguard/internal/validation"
)

type Config struct {
	Server ServerConfig
	Model  ModelConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Host string `validate:"required"`
	Port int    `validate:"required,min=1,max=65535"`
}

type ModelConfig struct {
	Path         string `validate:"required"`
	MetadataPath string `validate:"required"`
}

type LoggerConfig struct {
	Level  string `validate:"required,oneof=trace debug info warn error fatal panic"`
	Format string `validate:"required,oneof=json text"`
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults. PORT follows the hosting platform convention rather than a
	// SERVER_ prefix.
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("PORT", 10000)
	v.SetDefault("MODEL_PATH", "model/titanic_model.json")
	v.SetDefault("METADATA_PATH", "model/model_metadata.json")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("PORT"),
		},
		Model: ModelConfig{
			Path:         v.GetString("MODEL_PATH"),
			MetadataPath: v.GetString("METADATA_PATH"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	if err := validation.ValidateStruct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
