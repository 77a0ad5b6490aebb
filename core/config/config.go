package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"imagine-api/core/database"
	"imagine-api/core/logger"
	"imagine-api/core/server"
	"imagine-api/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the image object storage.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig loads configuration from environment variables and the .env
// file found in path. Variables already set in the environment win over .env.
func LoadConfig(path string) (*Config, error) {
	// Missing .env is expected in production.
	_ = godotenv.Load(filepath.Join(path, ".env"))

	v := viper.New()

	if err := bindValues(v, Config{}, ""); err != nil {
		return nil, err
	}

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return &config, nil
}

// bindValues walks the struct and registers every leaf key with Viper: the
// 'default' tag becomes the default value and an optional 'env' tag binds an
// extra environment variable name (e.g. PORT for server.port).
func bindValues(v *viper.Viper, iface any, prefix string) error {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			if err := bindValues(v, reflect.New(field.Type).Elem().Interface(), key); err != nil {
				return err
			}
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))

		if env := field.Tag.Get("env"); env != "" {
			// AutomaticEnv still resolves SECTION_FIELD first.
			if err := v.BindEnv(key, env); err != nil {
				return fmt.Errorf("failed to bind %s: %w", env, err)
			}
		}
	}
	return nil
}
