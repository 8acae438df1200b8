package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application level configuration. It is built once at startup
// and passed to every component that needs it.
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Redis         RedisConfig         `mapstructure:"redis"`
	JWT           JWTConfig           `mapstructure:"jwt"`
	Admin         AdminConfig         `mapstructure:"admin"`
	Storage       StorageConfig       `mapstructure:"storage"`
	PasswordReset PasswordResetConfig `mapstructure:"password_reset"`
	Cache         CacheConfig         `mapstructure:"cache"`
	Log           LogConfig           `mapstructure:"log"`
	SwaggerHost   string              `mapstructure:"swagger_host"`
	ResetDB       bool                `mapstructure:"reset_db"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	BaseURL      string        `mapstructure:"base_url"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// DatabaseConfig selects the gorm dialect and pool limits.
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// RedisConfig contains the cache connection.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// JWTConfig controls token signing.
type JWTConfig struct {
	Secret         string `mapstructure:"secret"`
	Algorithm      string `mapstructure:"algorithm"`
	ExpirationDays int    `mapstructure:"expiration_days"`
}

// AdminConfig holds the out-of-band secret required to register admins.
type AdminConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

// StorageConfig selects the file storage backend.
type StorageConfig struct {
	Backend        string   `mapstructure:"backend"`
	BaseURL        string   `mapstructure:"base_url"`
	MediaRoot      string   `mapstructure:"media_root"`
	MediaURL       string   `mapstructure:"media_url"`
	PlaceholderURL string   `mapstructure:"placeholder_url"`
	S3             S3Config `mapstructure:"s3"`
}

// S3Config contains connection options for S3 or MinIO.
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	Bucket          string `mapstructure:"bucket"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	PublicURL       string `mapstructure:"public_url"`
}

// PasswordResetConfig controls reset token lifetime.
type PasswordResetConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// CacheConfig controls read-through cache lifetimes.
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load builds Config from environment variables with sensible defaults.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Storage.BaseURL = cfg.Server.BaseURL

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad wraps Load and panics on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.dsn", "user:password@tcp(localhost:3306)/jobmatrix?charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 30*time.Minute)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "change-me")
	v.SetDefault("jwt.algorithm", "HS256")
	v.SetDefault("jwt.expiration_days", 7)
	v.SetDefault("storage.backend", "local")
	v.SetDefault("storage.media_root", "media")
	v.SetDefault("storage.media_url", "/media")
	v.SetDefault("storage.placeholder_url", "https://via.placeholder.com/150")
	v.SetDefault("storage.s3.region", "us-east-1")
	v.SetDefault("storage.s3.endpoint", "s3.amazonaws.com")
	v.SetDefault("storage.s3.use_ssl", true)
	v.SetDefault("password_reset.ttl", 15*time.Minute)
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("reset_db", false)
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"server.port":                     "SERVER_PORT",
		"server.base_url":                 "BASE_URL",
		"server.read_timeout":             "SERVER_READ_TIMEOUT",
		"server.write_timeout":            "SERVER_WRITE_TIMEOUT",
		"database.driver":                 "DB_DRIVER",
		"database.dsn":                    "DB_DSN",
		"database.max_open_conns":         "DB_MAX_OPEN_CONNS",
		"database.max_idle_conns":         "DB_MAX_IDLE_CONNS",
		"database.conn_max_lifetime":      "DB_CONN_MAX_LIFETIME",
		"redis.addr":                      "REDIS_ADDR",
		"redis.password":                  "REDIS_PASSWORD",
		"redis.db":                        "REDIS_DB",
		"jwt.secret":                      "JWT_SECRET",
		"jwt.algorithm":                   "JWT_ALGORITHM",
		"jwt.expiration_days":             "JWT_EXPIRATION_DAYS",
		"admin.secret_key":                "ADMIN_SECRET_KEY",
		"storage.backend":                 "STORAGE_BACKEND",
		"storage.media_root":              "MEDIA_ROOT",
		"storage.media_url":               "MEDIA_URL",
		"storage.placeholder_url":         "PLACEHOLDER_URL",
		"storage.s3.endpoint":             "S3_ENDPOINT",
		"storage.s3.region":               "S3_REGION",
		"storage.s3.bucket":               "S3_BUCKET",
		"storage.s3.access_key_id":        "S3_ACCESS_KEY_ID",
		"storage.s3.secret_access_key":    "S3_SECRET_ACCESS_KEY",
		"storage.s3.use_ssl":              "S3_USE_SSL",
		"storage.s3.public_url":           "S3_PUBLIC_URL",
		"password_reset.ttl":              "PASSWORD_RESET_TTL",
		"cache.ttl":                       "CACHE_TTL",
		"log.level":                       "LOG_LEVEL",
		"log.format":                      "LOG_FORMAT",
		"swagger_host":                    "SWAGGER_HOST",
		"reset_db":                        "RESET_DB",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}
	return nil
}

// Validate checks the settings that have no safe default.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server port is required")
	}
	switch c.Database.Driver {
	case "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("database dsn is required")
	}
	if c.JWT.Secret == "" {
		return errors.New("jwt secret is required")
	}
	if c.JWT.ExpirationDays <= 0 {
		return errors.New("jwt expiration days must be positive")
	}
	if !strings.HasPrefix(strings.ToUpper(c.JWT.Algorithm), "HS") {
		return fmt.Errorf("unsupported jwt algorithm %q", c.JWT.Algorithm)
	}
	switch c.Storage.Backend {
	case "local":
		if c.Storage.MediaRoot == "" {
			return errors.New("media root is required for local storage")
		}
	case "s3":
		if c.Storage.S3.Bucket == "" {
			return errors.New("s3 bucket is required")
		}
		if c.Storage.S3.AccessKeyID == "" || c.Storage.S3.SecretAccessKey == "" {
			return errors.New("s3 credentials are required")
		}
	default:
		return fmt.Errorf("unsupported storage backend %q", c.Storage.Backend)
	}
	if _, ok := logLevels[strings.ToLower(c.Log.Level)]; !ok {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return nil
}

var logLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}
