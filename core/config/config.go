package config

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"

	"studio-launcher/core/database"
	"studio-launcher/core/logger"
	"studio-launcher/core/server"
	"studio-launcher/core/storage"
	"studio-launcher/feature/studio"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the launcher.
type Config struct {
	// Studio holds the studio start settings.
	Studio studio.Config `mapstructure:"studio"`
	// Server holds configuration for the status HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the public asset sync.
	Storage storage.Config `mapstructure:"storage"`
	// Database holds configuration for the launch journal.
	Database database.Config `mapstructure:"database"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from defaults, an optional path/studio.{yaml,json,toml}
// file and the environment (after applying path/.env).
func LoadConfig(path string) (*Config, error) {
	// Ignore error if file doesn't exist
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	v.SetConfigName("studio")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// Map environment variables to nested keys (e.g. STUDIO_PORT -> studio.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
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
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
