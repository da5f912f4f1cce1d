package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Log    LogConfig
	Export ExportConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ExportConfig holds settings for archiving exported Elster XML documents.
// Archiving is off by default; when enabled every exported document is
// also uploaded to the configured S3 bucket.
type ExportConfig struct {
	ArchiveEnabled bool   `mapstructure:"archive_enabled"`
	Region         string `mapstructure:"region"`
	Bucket         string `mapstructure:"bucket"`
	Prefix         string `mapstructure:"prefix"`
	Endpoint       string `mapstructure:"endpoint"`
	AccessKey      string `mapstructure:"access_key"`
	SecretKey      string `mapstructure:"secret_key"`
}

// Load reads configuration from environment variables with the USTVA_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("USTVA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "ustva")
	v.SetDefault("db.password", "ustva_secret")
	v.SetDefault("db.name", "ustva_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Export archive defaults
	v.SetDefault("export.archive_enabled", false)
	v.SetDefault("export.region", "eu-central-1")
	v.SetDefault("export.bucket", "ustva-exports")
	v.SetDefault("export.prefix", "ustva")
	v.SetDefault("export.endpoint", "")
	v.SetDefault("export.access_key", "")
	v.SetDefault("export.secret_key", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "USTVA_SERVER_PORT",
		"server.read_timeout":    "USTVA_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "USTVA_SERVER_WRITE_TIMEOUT",
		"server.environment":     "USTVA_SERVER_ENVIRONMENT",
		"db.host":                "USTVA_DB_HOST",
		"db.port":                "USTVA_DB_PORT",
		"db.user":                "USTVA_DB_USER",
		"db.password":            "USTVA_DB_PASSWORD",
		"db.name":                "USTVA_DB_NAME",
		"db.sslmode":             "USTVA_DB_SSLMODE",
		"db.max_open":            "USTVA_DB_MAX_OPEN",
		"db.max_idle":            "USTVA_DB_MAX_IDLE",
		"log.level":              "USTVA_LOG_LEVEL",
		"log.format":             "USTVA_LOG_FORMAT",
		"export.archive_enabled": "USTVA_EXPORT_ARCHIVE_ENABLED",
		"export.region":          "USTVA_EXPORT_REGION",
		"export.bucket":          "USTVA_EXPORT_BUCKET",
		"export.prefix":          "USTVA_EXPORT_PREFIX",
		"export.endpoint":        "USTVA_EXPORT_ENDPOINT",
		"export.access_key":      "USTVA_EXPORT_ACCESS_KEY",
		"export.secret_key":      "USTVA_EXPORT_SECRET_KEY",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if USTVA_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("USTVA_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Export = ExportConfig{
		ArchiveEnabled: v.GetBool("export.archive_enabled"),
		Region:         v.GetString("export.region"),
		Bucket:         v.GetString("export.bucket"),
		Prefix:         v.GetString("export.prefix"),
		Endpoint:       v.GetString("export.endpoint"),
		AccessKey:      v.GetString("export.access_key"),
		SecretKey:      v.GetString("export.secret_key"),
	}

	return cfg, nil
}
