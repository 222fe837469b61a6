package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is prepended to every environment variable read by Load.
const envPrefix = "ZOO"

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	cfg.Upload.S3.Enabled = cfg.Upload.Backend == "s3"

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.default_locale", "es-ES")
	v.SetDefault("server.shutdown_timeout_seconds", 15)

	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 25)
	v.SetDefault("database.conn_max_lifetime_minutes", 5)

	v.SetDefault("auth.issuer", "zoo-api")
	v.SetDefault("auth.token_lifetime_minutes", 60)

	v.SetDefault("upload.backend", "local")
	v.SetDefault("upload.max_bytes", 5*1024*1024)
	v.SetDefault("upload.animal_dir", "uploads/animales")
	v.SetDefault("upload.section_dir", "uploads/secciones")
	v.SetDefault("upload.event_dir", "uploads/eventos")
	v.SetDefault("upload.user_dir", "uploads/usuarios")
	v.SetDefault("upload.s3.region", "us-east-1")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// bindEnvs registers every key explicitly so Unmarshal sees env-only values.
func bindEnvs(v *viper.Viper) error {
	keys := []string{
		"server.port",
		"server.log_level",
		"server.default_locale",
		"server.shutdown_timeout_seconds",
		"database.url",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime_minutes",
		"auth.jwt_secret",
		"auth.issuer",
		"auth.token_lifetime_minutes",
		"upload.backend",
		"upload.max_bytes",
		"upload.animal_dir",
		"upload.section_dir",
		"upload.event_dir",
		"upload.user_dir",
		"upload.s3.bucket",
		"upload.s3.region",
		"upload.s3.endpoint",
		"upload.s3.prefix",
		"upload.s3.access_key_id",
		"upload.s3.secret_access_key",
		"upload.s3.use_path_style",
		"metrics.enabled",
		"metrics.path",
	}
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("error binding env for %s: %w", key, err)
		}
	}
	return nil
}
