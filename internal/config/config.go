package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	Upload   UploadConfig   `mapstructure:"upload" validate:"required"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel        string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	DefaultLocale   string `mapstructure:"default_locale" validate:"required"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url" validate:"required,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`
	Issuer    string `mapstructure:"issuer" validate:"required"`
	// TokenLifetimeMinutes of zero or less issues tokens without an expiry claim.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes"`
}

// UploadConfig controls where entity photos are written and which defaults are assigned.
type UploadConfig struct {
	Backend  string `mapstructure:"backend" validate:"required,oneof=local s3"`
	MaxBytes int64  `mapstructure:"max_bytes" validate:"required,gt=0"`

	AnimalDir  string `mapstructure:"animal_dir" validate:"required"`
	SectionDir string `mapstructure:"section_dir" validate:"required"`
	EventDir   string `mapstructure:"event_dir" validate:"required"`
	UserDir    string `mapstructure:"user_dir" validate:"required"`

	S3 S3Config `mapstructure:"s3"`
}

// S3Config is only consulted when Upload.Backend is "s3".
type S3Config struct {
	Bucket          string `mapstructure:"bucket" validate:"required_if=Enabled true"`
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	Prefix          string `mapstructure:"prefix"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UsePathStyle    bool   `mapstructure:"use_path_style"`
	Enabled         bool   `mapstructure:"-"`
}

// MetricsConfig toggles the prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required_if=Enabled true"`
}

// DefaultPhoto returns the placeholder photo path assigned to new records stored under dir.
func DefaultPhoto(dir string) string {
	if dir == "" {
		return "default.png"
	}
	return dir + "/default.png"
}
