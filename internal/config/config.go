package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/inshape-booking/internal/timezone"
)

const (
	EmailProviderResend = "resend"
	EmailProviderSMTP   = "smtp"
	EmailProviderNone   = "none"
)

type Config struct {
	ServerPort string
	AppEnv     string
	LogLevel   string

	GoogleCredentials string
	CalendarID        string
	Timezone          string
	SpreadsheetID     string
	SheetRange        string
	SourceLabel       string

	EmailProvider     string
	ResendAPIKey      string
	TeamEmail         string
	FromEmail         string
	SMTPHost          string
	SMTPPort          string
	EmailFailureFatal bool

	DBUrl          string
	AdminJWTSecret string
}

// GoogleServiceAccount is the subset of a service account key this service
// needs to sign its own access tokens.
type GoogleServiceAccount struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("PORT", "3000"),
		AppEnv:     getEnv("APP_ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		GoogleCredentials: os.Getenv("GOOGLE_CREDENTIALS"),
		CalendarID:        os.Getenv("CALENDAR_ID"),
		Timezone:          os.Getenv("TIMEZONE"),
		SpreadsheetID:     os.Getenv("SPREADSHEET_ID"),
		SheetRange:        getEnv("SHEET_RANGE", "Sheet1!A:I"),
		SourceLabel:       getEnv("SOURCE_LABEL", "Website"),

		EmailProvider:     strings.ToLower(getEnv("EMAIL_PROVIDER", EmailProviderResend)),
		ResendAPIKey:      os.Getenv("RESEND_API_KEY"),
		TeamEmail:         os.Getenv("TEAM_EMAIL"),
		FromEmail:         os.Getenv("FROM_EMAIL"),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          os.Getenv("SMTP_PORT"),
		EmailFailureFatal: getBool("EMAIL_FAILURE_FATAL", true),

		DBUrl:          os.Getenv("DATABASE_URL"),
		AdminJWTSecret: os.Getenv("ADMIN_JWT_SECRET"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// Location resolves TIMEZONE. Validate reports the same failure at startup.
func (c *Config) Location() (*time.Location, error) {
	return timezone.Load(c.Timezone)
}

func (c *Config) EmailEnabled() bool {
	return c.EmailProvider != EmailProviderNone
}

func (c *Config) AuditEnabled() bool {
	return c.DBUrl != ""
}

func (c *Config) AdminEnabled() bool {
	return c.AuditEnabled() && c.AdminJWTSecret != ""
}

func (c *Config) ServiceAccount() (*GoogleServiceAccount, error) {
	return ParseServiceAccount(c.GoogleCredentials)
}

func ParseServiceAccount(raw string) (*GoogleServiceAccount, error) {
	var sa GoogleServiceAccount
	if err := json.Unmarshal([]byte(raw), &sa); err != nil {
		return nil, fmt.Errorf("parse google credentials: %w", err)
	}
	if sa.ClientEmail == "" || sa.PrivateKey == "" {
		return nil, fmt.Errorf("google credentials need client_email and private_key")
	}

	// keys pasted into env files often carry literal "\n" sequences
	sa.PrivateKey = strings.ReplaceAll(sa.PrivateKey, `\n`, "\n")
	return &sa, nil
}
