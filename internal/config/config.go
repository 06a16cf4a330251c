package config

import (
	"os"
	"strconv"
)

// Config holds all environment-backed settings. godotenv/autoload in main
// loads a .env file before this package reads anything.
type Config struct {
	// Stripe
	StripeAPIKey        string
	StripeWebhookSecret string

	// Notion
	NotionIntegrationSecret  string
	NotionInvoicesDatabaseID string
	NotionInvoiceTemplateID  string

	// Application
	LogLevel            string
	LogFormat           string
	SyncIntervalSeconds int
	SyncDaysBack        int

	Host string
	Port int
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		StripeAPIKey:        os.Getenv("STRIPE_API_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),

		NotionIntegrationSecret:  os.Getenv("NOTION_INTEGRATION_SECRET"),
		NotionInvoicesDatabaseID: os.Getenv("NOTION_INVOICES_DATABASE_ID"),
		NotionInvoiceTemplateID:  os.Getenv("NOTION_INVOICE_TEMPLATE_ID"),

		LogLevel:            getenvDefault("LOG_LEVEL", "info"),
		LogFormat:           getenvDefault("LOG_FORMAT", "console"),
		SyncIntervalSeconds: getenvIntDefault("SYNC_INTERVAL_SECONDS", 30),
		SyncDaysBack:        getenvIntDefault("SYNC_DAYS_BACK", 30),

		Host: getenvDefault("HOST", "0.0.0.0"),
		Port: getenvIntDefault("PORT", 8080),
	}
}

// Validate reports every missing required variable with a description, so
// startup can log them all at once instead of failing one at a time.
func (c Config) Validate() map[string]string {
	missing := map[string]string{}

	if c.StripeAPIKey == "" {
		missing["STRIPE_API_KEY"] = "Stripe API key is required"
	}
	if c.StripeWebhookSecret == "" {
		missing["STRIPE_WEBHOOK_SECRET"] = "Stripe webhook secret is required"
	}
	if c.NotionIntegrationSecret == "" {
		missing["NOTION_INTEGRATION_SECRET"] = "Notion integration secret is required"
	}
	if c.NotionInvoicesDatabaseID == "" {
		missing["NOTION_INVOICES_DATABASE_ID"] = "Notion invoices database id is required"
	}

	return missing
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
