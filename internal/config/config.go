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
	JWT    JWTConfig
	Log    LogConfig
	CORS   CORSConfig
	Ingest IngestConfig
	S3     S3Config
	Events EventsConfig
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

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// IngestConfig holds defaults for the claim data loader.
type IngestConfig struct {
	ClaimListFile   string `mapstructure:"claim_list_file"`
	ClaimDetailFile string `mapstructure:"claim_detail_file"`
	BatchSize       int    `mapstructure:"batch_size"`
}

// S3Config holds AWS S3 settings for fetching remote input files.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// EventsConfig holds live-event hub settings.
type EventsConfig struct {
	// ListenerBuffer is the per-subscriber channel capacity. Events for a
	// subscriber whose buffer is full are dropped rather than blocking the
	// publisher.
	ListenerBuffer int `mapstructure:"listener_buffer"`
}

// Load reads configuration from environment variables with the CLAIMS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CLAIMS")
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
	v.SetDefault("db.user", "claims")
	v.SetDefault("db.password", "claims_secret")
	v.SetDefault("db.name", "claims_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "claims")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Ingest defaults match the conventional export file names.
	v.SetDefault("ingest.claim_list_file", "claim_list_data.csv")
	v.SetDefault("ingest.claim_detail_file", "claim_detail_data.csv")
	v.SetDefault("ingest.batch_size", 1000)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.endpoint", "")

	// Events defaults
	v.SetDefault("events.listener_buffer", 16)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "CLAIMS_SERVER_PORT",
		"server.read_timeout":      "CLAIMS_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "CLAIMS_SERVER_WRITE_TIMEOUT",
		"server.environment":       "CLAIMS_SERVER_ENVIRONMENT",
		"db.host":                  "CLAIMS_DB_HOST",
		"db.port":                  "CLAIMS_DB_PORT",
		"db.user":                  "CLAIMS_DB_USER",
		"db.password":              "CLAIMS_DB_PASSWORD",
		"db.name":                  "CLAIMS_DB_NAME",
		"db.sslmode":               "CLAIMS_DB_SSLMODE",
		"db.max_open":              "CLAIMS_DB_MAX_OPEN",
		"db.max_idle":              "CLAIMS_DB_MAX_IDLE",
		"jwt.secret":               "CLAIMS_JWT_SECRET",
		"jwt.access_expiry":        "CLAIMS_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":       "CLAIMS_JWT_REFRESH_EXPIRY",
		"jwt.issuer":               "CLAIMS_JWT_ISSUER",
		"log.level":                "CLAIMS_LOG_LEVEL",
		"log.format":               "CLAIMS_LOG_FORMAT",
		"cors.allowed_origins":     "CLAIMS_CORS_ALLOWED_ORIGINS",
		"ingest.claim_list_file":   "CLAIMS_INGEST_CLAIM_LIST_FILE",
		"ingest.claim_detail_file": "CLAIMS_INGEST_CLAIM_DETAIL_FILE",
		"ingest.batch_size":        "CLAIMS_INGEST_BATCH_SIZE",
		"s3.region":                "CLAIMS_S3_REGION",
		"s3.endpoint":              "CLAIMS_S3_ENDPOINT",
		"s3.access_key":            "CLAIMS_S3_ACCESS_KEY",
		"s3.secret_key":            "CLAIMS_S3_SECRET_KEY",
		"events.listener_buffer":   "CLAIMS_EVENTS_LISTENER_BUFFER",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if CLAIMS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CLAIMS_SERVER_PORT") == "" {
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
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Ingest = IngestConfig{
		ClaimListFile:   v.GetString("ingest.claim_list_file"),
		ClaimDetailFile: v.GetString("ingest.claim_detail_file"),
		BatchSize:       v.GetInt("ingest.batch_size"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Events = EventsConfig{
		ListenerBuffer: v.GetInt("events.listener_buffer"),
	}

	return cfg, nil
}
