package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppHost  string
	HTTPPort string
	AppEnv   string
	LogLevel string

	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Database string
		SSLMode  string
	}

	// CRM ingestion endpoint. Empty URL makes the forwarder a no-op.
	CRM struct {
		URL    string
		APIKey string
	}

	// SMTP transport for transactional mail. Empty host makes the mailer a no-op.
	SMTP struct {
		Host     string
		Port     int
		User     string
		Password string
		From     string
	}

	// AdminRecipients is the fixed distribution list for admin notifications.
	AdminRecipients []string

	KafkaBrokers        []string
	KafkaTopicComplaint string

	// GeocodeURL is a Nominatim-compatible base URL for reverse lookups.
	GeocodeURL string
}

func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	cfg := &Config{
		AppHost:  getEnv("APP_HOST", "0.0.0.0"),
		HTTPPort: firstEnv("APP_PORT", "HTTP_PORT", "8093"),
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.DB.Database = getEnv("DB_DATABASE", "complaint_service")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	cfg.CRM.URL = getEnv("CRM_URL", "")
	cfg.CRM.APIKey = getEnv("CRM_API_KEY", "")

	cfg.SMTP.Host = getEnv("SMTP_HOST", "")
	if _, err := fmt.Sscanf(getEnv("SMTP_PORT", "587"), "%d", &cfg.SMTP.Port); err != nil {
		return nil, fmt.Errorf("config: SMTP_PORT must be numeric")
	}
	cfg.SMTP.User = getEnv("SMTP_USER", "")
	cfg.SMTP.Password = getEnv("SMTP_PASSWORD", "")
	cfg.SMTP.From = getEnv("SMTP_FROM", "no-reply@chrmotors.example")

	cfg.AdminRecipients = splitList(getEnv("ADMIN_RECIPIENTS", ""))

	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaTopicComplaint = getEnv("KAFKA_TOPIC_COMPLAINT", "")

	cfg.GeocodeURL = getEnv("GEOCODE_URL", "")
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DB.Host == "" || c.DB.Database == "" {
		return errors.New("config: DB_HOST and DB_DATABASE are required")
	}
	if c.AppEnv == "production" && c.DB.Password == "" {
		return errors.New("config: in production DB_PASSWORD is required")
	}
	if c.SMTP.Host != "" && len(c.AdminRecipients) == 0 {
		return errors.New("config: ADMIN_RECIPIENTS is required when SMTP_HOST is set")
	}
	return nil
}

// IsProduction gates whether raw error text may appear in failure responses.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Database, c.DB.SSLMode)
}

func (c *Config) DatabaseURL() string {
	pass := url.QueryEscape(c.DB.Password)
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DB.User, pass, c.DB.Host, c.DB.Port, c.DB.Database, c.DB.SSLMode)
}

func (c *Config) Addr() string {
	return c.AppHost + ":" + c.HTTPPort
}

func splitList(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func firstEnv(keysAndDef ...string) string {
	if len(keysAndDef) == 0 {
		return ""
	}
	def := keysAndDef[len(keysAndDef)-1]
	for _, k := range keysAndDef[:len(keysAndDef)-1] {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return def
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
