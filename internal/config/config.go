package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string
	Env          string
	SecretKey    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	UploadDir    string
	CookieSecure bool
}

// AdminConfig holds the single admin account
type AdminConfig struct {
	Username string
	Password string
}

// SheetsConfig holds the tabular store configuration
type SheetsConfig struct {
	Backend           string
	CredentialsFile   string
	SpreadsheetID     string
	SpreadsheetName   string
	WorkbookPath      string
	CacheTTL          time.Duration
	RequestTimeout    time.Duration
	RateLimitRequests int
	RateLimitWindow   time.Duration
	MaxRetries        int
}

// SessionConfig holds server-side session configuration
type SessionConfig struct {
	Backend  string
	Table    string
	TTL      time.Duration
	DynamoDB DynamoDBConfig
}

// DynamoDBConfig holds the DynamoDB connection used by the session store
type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	SigningKey      string
	ExpirationHours int
}

// SMTPConfig holds outgoing mail configuration
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	AdminEmail string
}

// Enabled reports whether mail can be sent.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// ChatConfig holds the generative model configuration
type ChatConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// PaymentsConfig holds the payment gateway configuration
type PaymentsConfig struct {
	MercadoPagoAccessToken string
	Mock                   bool
}

// BusinessConfig holds the company details shown to customers
type BusinessConfig struct {
	Name  string
	Phone string
	Email string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Prefix string
}

// Config holds all configuration
type Config struct {
	ServiceName string
	Server      ServerConfig
	Admin       AdminConfig
	Sheets      SheetsConfig
	Session     SessionConfig
	JWT         JWTConfig
	SMTP        SMTPConfig
	Chat        ChatConfig
	Payments    PaymentsConfig
	Business    BusinessConfig
	Log         LogConfig
	Metrics     MetricsConfig
}

const (
	ServiceName = "cleaning-web"

	defaultSecretKey = "dev-secret-change-me"
)

// Load loads configuration from a .env file (optional) and the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	secret := getEnv("SECRET_KEY", defaultSecretKey)
	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		ServiceName: ServiceName,
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Env:          env,
			SecretKey:    secret,
			ReadTimeout:  getEnvAsDuration("READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("WRITE_TIMEOUT", 30*time.Second),
			UploadDir:    getEnv("UPLOAD_DIR", "uploads"),
			CookieSecure: getEnvAsBool("COOKIE_SECURE", env == "production"),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", "changeme123"),
		},
		Sheets: SheetsConfig{
			Backend:           strings.ToLower(getEnv("SHEETS_BACKEND", "workbook")),
			CredentialsFile:   getEnv("GOOGLE_SHEETS_CREDENTIALS", "credentials.json"),
			SpreadsheetID:     getEnv("GOOGLE_SHEETS_ID", ""),
			SpreadsheetName:   getEnv("GOOGLE_SHEETS_NAME", "Cleaning_Business_Database"),
			WorkbookPath:      getEnv("WORKBOOK_PATH", "data/cleaning_business.xlsx"),
			CacheTTL:          getEnvAsDuration("SHEETS_CACHE_TTL", 60*time.Second),
			RequestTimeout:    getEnvAsDuration("SHEETS_REQUEST_TIMEOUT", 10*time.Second),
			RateLimitRequests: getEnvAsInt("SHEETS_RATE_LIMIT_REQUESTS", 10),
			RateLimitWindow:   getEnvAsDuration("SHEETS_RATE_LIMIT_WINDOW", 10*time.Second),
			MaxRetries:        getEnvAsInt("SHEETS_MAX_RETRIES", 3),
		},
		Session: SessionConfig{
			Backend: strings.ToLower(getEnv("SESSION_BACKEND", "memory")),
			Table:   getEnv("SESSIONS_TABLE", "sessions"),
			TTL:     getEnvAsDuration("SESSION_TTL", 24*time.Hour),
			DynamoDB: DynamoDBConfig{
				Region:          getEnv("AWS_REGION", "us-east-1"),
				Endpoint:        getEnv("DYNAMODB_ENDPOINT", ""),
				AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
				SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			},
		},
		JWT: JWTConfig{
			SigningKey:      secret,
			ExpirationHours: getEnvAsInt("JWT_EXPIRATION_HOURS", 12),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("EMAIL_HOST", "smtp.gmail.com"),
			Port:       getEnvAsInt("EMAIL_PORT", 587),
			Username:   getEnv("EMAIL_USERNAME", ""),
			Password:   getEnv("EMAIL_APP_PASSWORD", ""),
			AdminEmail: getEnv("ADMIN_EMAIL", ""),
		},
		Chat: ChatConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			Timeout: getEnvAsDuration("CHAT_TIMEOUT", 8*time.Second),
		},
		Payments: PaymentsConfig{
			MercadoPagoAccessToken: getEnv("MERCADOPAGO_ACCESS_TOKEN", ""),
			Mock:                   getEnvAsBool("PAYMENT_GATEWAY_MOCK", false) || getEnvAsBool("MERCADOPAGO_MOCK", false),
		},
		Business: BusinessConfig{
			Name:  getEnv("BUSINESS_NAME", "Sparkle Commercial Cleaning"),
			Phone: getEnv("BUSINESS_PHONE", "(617) 555-0199"),
			Email: getEnv("BUSINESS_EMAIL", "hello@sparkleclean.example"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", "cleaning_web"),
		},
	}

	if cfg.Sheets.Backend != "workbook" && cfg.Sheets.Backend != "google" {
		return nil, fmt.Errorf("SHEETS_BACKEND must be workbook or google, got %q", cfg.Sheets.Backend)
	}
	if cfg.Session.Backend != "memory" && cfg.Session.Backend != "dynamodb" {
		return nil, fmt.Errorf("SESSION_BACKEND must be memory or dynamodb, got %q", cfg.Session.Backend)
	}
	// The key signs portal tokens; a published default would let anyone forge an admin login.
	if env == "production" && secret == defaultSecretKey {
		return nil, fmt.Errorf("SECRET_KEY must be set in production")
	}
	return cfg, nil
}

// LogFields returns the non-secret configuration as zap fields
func (c *Config) LogFields() []zap.Field {
	return []zap.Field{
		zap.String("service", c.ServiceName),
		zap.String("environment", c.Server.Env),
		zap.String("server_port", c.Server.Port),
		zap.String("sheets_backend", c.Sheets.Backend),
		zap.String("session_backend", c.Session.Backend),
		zap.Duration("sheets_cache_ttl", c.Sheets.CacheTTL),
		zap.Bool("smtp_enabled", c.SMTP.Enabled()),
		zap.Bool("chat_model_enabled", c.Chat.APIKey != ""),
		zap.Bool("payments_mock", c.Payments.Mock),
	}
}

// Helper function to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as integers
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as durations
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as booleans
func getEnvAsBool(key string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(getEnv(key, ""))) {
	case "1", "true", "yes", "on", "mock":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return defaultValue
}
