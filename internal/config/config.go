package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port        string
	CORSOrigins []string
	Env         string

	// Advice generation
	Advisor AdvisorConfig

	// Sessions
	SessionTTL time.Duration

	// Chat rate limiting, per session
	ChatRateLimit int
	ChatBurst     int
}

// AdvisorConfig holds the Gemini settings
type AdvisorConfig struct {
	APIKey             string
	Model              string
	Timeout            time.Duration
	RecentTransactions int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	var errs []string

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		Env:         getEnv("ENV", "development"),
		Advisor: AdvisorConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
	}

	var err error
	if cfg.Advisor.Timeout, err = getDuration("ADVISOR_TIMEOUT", 30*time.Second); err != nil {
		errs = append(errs, err.Error())
	}
	if cfg.Advisor.RecentTransactions, err = getInt("ADVISOR_RECENT_TRANSACTIONS", 10); err != nil {
		errs = append(errs, err.Error())
	}
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 2*time.Hour); err != nil {
		errs = append(errs, err.Error())
	}
	if cfg.ChatRateLimit, err = getInt("CHAT_RATE_LIMIT", 10); err != nil {
		errs = append(errs, err.Error())
	}
	if cfg.ChatBurst, err = getInt("CHAT_BURST", 3); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Advisor.Timeout <= 0 {
		return fmt.Errorf("ADVISOR_TIMEOUT must be positive")
	}
	if c.Advisor.RecentTransactions <= 0 {
		return fmt.Errorf("ADVISOR_RECENT_TRANSACTIONS must be positive")
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("SESSION_TTL must not be negative")
	}
	if c.ChatRateLimit <= 0 || c.ChatBurst <= 0 {
		return fmt.Errorf("CHAT_RATE_LIMIT and CHAT_BURST must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", key, raw)
	}
	return v, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a duration", key, raw)
	}
	return v, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
