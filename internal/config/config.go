package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName                string
	AppEnv                 string
	AppPort                string
	DatabaseURL            string
	RedisURL               string
	JWTSecret              string
	SMTPHost               string
	SMTPPort               int
	SMTPUsername           string
	SMTPPassword           string
	MailFrom               string
	MailRecipients         []string
	MailSubjectPrefix      string
	IntakeRateLimitMax     int
	IntakeRateLimitWindow  time.Duration
	PhoneRegion            string
	CloudinaryCloudName    string
	CloudinaryAPIKey       string
	CloudinaryAPISecret    string
	CloudinaryUploadFolder string
	UploadMaxSizeMB        int
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("OUAF")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Ouaf API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("intake.rate_limit_max", 5)
	v.SetDefault("intake.rate_limit_window", "900s")
	v.SetDefault("phone.region", "FR")
	v.SetDefault("cloudinary.folder", "ouaf/animaux")
	v.SetDefault("upload.max_size_mb", 10)

	window, err := time.ParseDuration(v.GetString("intake.rate_limit_window"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid intake rate limit window: %w", err)
	}

	cfg := Config{
		AppName:                v.GetString("app.name"),
		AppEnv:                 v.GetString("app.env"),
		AppPort:                v.GetString("app.port"),
		DatabaseURL:            v.GetString("database.url"),
		RedisURL:               v.GetString("redis.url"),
		JWTSecret:              v.GetString("jwt.secret"),
		SMTPHost:               v.GetString("smtp.host"),
		SMTPPort:               v.GetInt("smtp.port"),
		SMTPUsername:           v.GetString("smtp.username"),
		SMTPPassword:           v.GetString("smtp.password"),
		MailFrom:               v.GetString("mail.from"),
		MailRecipients:         splitRecipients(v.GetString("mail.recipients")),
		MailSubjectPrefix:      v.GetString("mail.subject_prefix"),
		IntakeRateLimitMax:     v.GetInt("intake.rate_limit_max"),
		IntakeRateLimitWindow:  window,
		PhoneRegion:            strings.ToUpper(v.GetString("phone.region")),
		CloudinaryCloudName:    v.GetString("cloudinary.cloud_name"),
		CloudinaryAPIKey:       v.GetString("cloudinary.api_key"),
		CloudinaryAPISecret:    v.GetString("cloudinary.api_secret"),
		CloudinaryUploadFolder: v.GetString("cloudinary.folder"),
		UploadMaxSizeMB:        v.GetInt("upload.max_size_mb"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	if cfg.MailFrom == "" {
		return Config{}, fmt.Errorf("mail from address must be provided")
	}

	if len(cfg.MailRecipients) == 0 {
		return Config{}, fmt.Errorf("at least one mail recipient must be configured")
	}

	if cfg.IntakeRateLimitMax <= 0 {
		cfg.IntakeRateLimitMax = 5
	}

	if cfg.IntakeRateLimitWindow <= 0 {
		cfg.IntakeRateLimitWindow = 900 * time.Second
	}

	return cfg, nil
}

func splitRecipients(raw string) []string {
	parts := strings.Split(raw, ",")
	recipients := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			recipients = append(recipients, trimmed)
		}
	}
	return recipients
}
