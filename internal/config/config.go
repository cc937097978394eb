package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the Command Center gateway.
// Credentials are read once at process start and injected into the
// provider clients; they never come from request input.
type Config struct {
	Port      int
	Version   string
	Database  DatabaseConfig
	Telemetry TelemetryConfig
	Providers ProviderConfig
}

type DatabaseConfig struct {
	URL            string
	MaxConnections int
}

type TelemetryConfig struct {
	Enabled      bool
	OTLPEndpoint string
	ServiceName  string
}

// ProviderConfig carries the upstream credentials and identifiers.
type ProviderConfig struct {
	GitHubToken         string
	StripeSecretKey     string
	HuggingFaceToken    string
	CloudflareToken     string
	CloudflareAccountID string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Port:    envInt("COMMAND_CENTER_PORT", 8080),
		Version: envStr("COMMAND_CENTER_VERSION", "0.1.0"),
		Database: DatabaseConfig{
			URL:            envStr("DATABASE_URL", ""),
			MaxConnections: envInt("DATABASE_MAX_CONNECTIONS", 10),
		},
		Telemetry: TelemetryConfig{
			Enabled:      envBool("OTEL_ENABLED", false),
			OTLPEndpoint: envStr("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName:  envStr("OTEL_SERVICE_NAME", "blackroad-command-center"),
		},
		Providers: ProviderConfig{
			GitHubToken:         envStr("GITHUB_TOKEN", ""),
			StripeSecretKey:     envStr("STRIPE_SECRET_KEY", ""),
			HuggingFaceToken:    envStr("HF_TOKEN", ""),
			CloudflareToken:     envStr("CLOUDFLARE_API_TOKEN", ""),
			CloudflareAccountID: envStr("CLOUDFLARE_ACCOUNT_ID", ""),
		},
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
