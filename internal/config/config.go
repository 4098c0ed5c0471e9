package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"development"`

	// StoreBackend selects the repository implementation: "postgres" or "memory".
	StoreBackend       string `envconfig:"STORE_BACKEND" default:"postgres"`
	DBConnectionString string `envconfig:"DATABASE_URL"`

	JWTSecret string `envconfig:"JWT_SECRET" default:"dev-secret"`

	// Comma-separated allowed origins. "*" allows everything.
	CORSOrigins string `envconfig:"CORS_ORIGINS" default:"*"`

	// WhatsApp template-message channel. Leaving the token or sender empty
	// puts the channel into logged simulation mode.
	WhatsAppAPIBase   string `envconfig:"WHATSAPP_API_BASE" default:"https://graph.facebook.com/v19.0"`
	WhatsAppToken     string `envconfig:"WHATSAPP_TOKEN"`
	WhatsAppSenderID  string `envconfig:"WHATSAPP_SENDER_ID"`
	WhatsAppRecipient string `envconfig:"WHATSAPP_RECIPIENT"`

	// Email channel for inquiry alerts. Same degradation rule as WhatsApp.
	SendGridAPIKey string `envconfig:"SENDGRID_API_KEY"`
	AlertEmailFrom string `envconfig:"ALERT_EMAIL_FROM"`
	AlertEmailTo   string `envconfig:"ALERT_EMAIL_TO"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// AllowedOrigins splits CORSOrigins for the CORS middleware.
func (c *Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
