package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds service configuration.
type Config struct {
	DatabaseURL              string
	ServerAddr               string
	JWTSecret                string
	SessionTTL               time.Duration
	SessionCookieName        string
	SessionCookieSecure      bool
	TradeProposalPolicy      string
	SettlementRecoveryWindow time.Duration
}

// Load reads configuration from the environment, after loading an optional
// .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		user := getenv("POSTGRES_USER", "critter")
		pass := getenv("POSTGRES_PASSWORD", "critter_pass")
		db := getenv("POSTGRES_DB", "critter_exchange")
		host := getenv("POSTGRES_HOST", "localhost")
		port := getenv("POSTGRES_PORT", "5432")
		sslmode := getenv("DATABASE_SSLMODE", "disable")
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, pass, host, port, db, sslmode)
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	addr := getenv("SERVER_ADDR", "0.0.0.0:8080")
	ttl := parseDuration(getenv("SESSION_TTL", "24h"), 24*time.Hour)
	cookieName := getenv("SESSION_COOKIE_NAME", "critter_session")
	cookieSecure := parseBool(getenv("SESSION_COOKIE_SECURE", "false"), false)
	policy := getenv("TRADE_PROPOSAL_POLICY", "are_friends == true")
	recoveryWindow := parseDuration(getenv("SETTLEMENT_RECOVERY_WINDOW", "24h"), 24*time.Hour)

	return &Config{
		DatabaseURL:              dsn,
		ServerAddr:               addr,
		JWTSecret:                secret,
		SessionTTL:               ttl,
		SessionCookieName:        cookieName,
		SessionCookieSecure:      cookieSecure,
		TradeProposalPolicy:      policy,
		SettlementRecoveryWindow: recoveryWindow,
	}, nil
}

func getenv(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

func parseDuration(val string, def time.Duration) time.Duration {
	if val == "" {
		return def
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return def
	}
	return d
}

func parseBool(val string, def bool) bool {
	if val == "" {
		return def
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return def
	}
	return b
}
