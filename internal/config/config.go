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
	Server  ServerConfig
	DB      DBConfig
	Log     LogConfig
	CORS    CORSConfig
	Billing BillingConfig
	Export  ExportConfig
	Email   EmailConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings for the discount store.
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

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// BillingConfig holds the upstream partner billing API settings.
type BillingConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	TokenURL     string `mapstructure:"token_url"`
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
	CacheTTLSecs int    `mapstructure:"cache_ttl_secs"`
}

// ExportConfig holds export archive settings; uploads are disabled when the
// bucket is unset.
type ExportConfig struct {
	S3Region    string `mapstructure:"s3_region"`
	S3Bucket    string `mapstructure:"s3_bucket"`
	S3Endpoint  string `mapstructure:"s3_endpoint"`
	S3AccessKey string `mapstructure:"s3_access_key"`
	S3SecretKey string `mapstructure:"s3_secret_key"`
}

// EmailConfig holds overdue-notice delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	ToAddress   string `mapstructure:"to_address"`
}

// Load reads configuration from environment variables with the BILLINGDESK_
// prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BILLINGDESK")
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
	v.SetDefault("db.user", "billingdesk")
	v.SetDefault("db.password", "billingdesk_secret")
	v.SetDefault("db.name", "billingdesk_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Billing API defaults
	v.SetDefault("billing.base_url", "")
	v.SetDefault("billing.token_url", "")
	v.SetDefault("billing.client_id", "")
	v.SetDefault("billing.client_secret", "")
	v.SetDefault("billing.timeout_secs", 30)
	v.SetDefault("billing.cache_ttl_secs", 300)

	// Export defaults
	v.SetDefault("export.s3_region", "eu-west-1")
	v.SetDefault("export.s3_bucket", "")
	v.SetDefault("export.s3_endpoint", "")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "eu-west-1")
	v.SetDefault("email.from_address", "noreply@billingdesk.local")
	v.SetDefault("email.from_name", "Billingdesk")
	v.SetDefault("email.to_address", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "BILLINGDESK_SERVER_PORT",
		"server.read_timeout":    "BILLINGDESK_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "BILLINGDESK_SERVER_WRITE_TIMEOUT",
		"server.environment":     "BILLINGDESK_SERVER_ENVIRONMENT",
		"db.host":                "BILLINGDESK_DB_HOST",
		"db.port":                "BILLINGDESK_DB_PORT",
		"db.user":                "BILLINGDESK_DB_USER",
		"db.password":            "BILLINGDESK_DB_PASSWORD",
		"db.name":                "BILLINGDESK_DB_NAME",
		"db.sslmode":             "BILLINGDESK_DB_SSLMODE",
		"db.max_open":            "BILLINGDESK_DB_MAX_OPEN",
		"db.max_idle":            "BILLINGDESK_DB_MAX_IDLE",
		"log.level":              "BILLINGDESK_LOG_LEVEL",
		"log.format":             "BILLINGDESK_LOG_FORMAT",
		"cors.allowed_origins":   "BILLINGDESK_CORS_ALLOWED_ORIGINS",
		"billing.base_url":       "BILLINGDESK_BILLING_BASE_URL",
		"billing.token_url":      "BILLINGDESK_BILLING_TOKEN_URL",
		"billing.client_id":      "BILLINGDESK_BILLING_CLIENT_ID",
		"billing.client_secret":  "BILLINGDESK_BILLING_CLIENT_SECRET",
		"billing.timeout_secs":   "BILLINGDESK_BILLING_TIMEOUT_SECS",
		"billing.cache_ttl_secs": "BILLINGDESK_BILLING_CACHE_TTL_SECS",
		"export.s3_region":       "BILLINGDESK_EXPORT_S3_REGION",
		"export.s3_bucket":       "BILLINGDESK_EXPORT_S3_BUCKET",
		"export.s3_endpoint":     "BILLINGDESK_EXPORT_S3_ENDPOINT",
		"export.s3_access_key":   "BILLINGDESK_EXPORT_S3_ACCESS_KEY",
		"export.s3_secret_key":   "BILLINGDESK_EXPORT_S3_SECRET_KEY",
		"email.provider":         "BILLINGDESK_EMAIL_PROVIDER",
		"email.region":           "BILLINGDESK_EMAIL_REGION",
		"email.from_address":     "BILLINGDESK_EMAIL_FROM_ADDRESS",
		"email.from_name":        "BILLINGDESK_EMAIL_FROM_NAME",
		"email.to_address":       "BILLINGDESK_EMAIL_TO_ADDRESS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if BILLINGDESK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("BILLINGDESK_SERVER_PORT") == "" {
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

	cfg.Billing = BillingConfig{
		BaseURL:      v.GetString("billing.base_url"),
		TokenURL:     v.GetString("billing.token_url"),
		ClientID:     v.GetString("billing.client_id"),
		ClientSecret: v.GetString("billing.client_secret"),
		TimeoutSecs:  v.GetInt("billing.timeout_secs"),
		CacheTTLSecs: v.GetInt("billing.cache_ttl_secs"),
	}
	cfg.Export = ExportConfig{
		S3Region:    v.GetString("export.s3_region"),
		S3Bucket:    v.GetString("export.s3_bucket"),
		S3Endpoint:  v.GetString("export.s3_endpoint"),
		S3AccessKey: v.GetString("export.s3_access_key"),
		S3SecretKey: v.GetString("export.s3_secret_key"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		ToAddress:   v.GetString("email.to_address"),
	}

	return cfg, nil
}
