package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                  string
	MongoURI              string
	MongoDatabase         string
	AccessTokenSecret     string
	StripeSecretKey       string
	TextbeltKey           string
	SentryDSN             string
	CORSOrigins           []string
	AdminEmails           []string
	EnforceUniqueBookings bool
	TokenRatePerMinute    int
}

// Load reads the .env file when present and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function. Secrets have no defaults.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:              valueOr(getenv("PORT"), "5000"),
		MongoDatabase:     valueOr(getenv("MONGO_DATABASE"), "medwinCares"),
		AccessTokenSecret: getenv("ACCESS_TOKEN"),
		StripeSecretKey:   getenv("STRIPE_SECRET_KEY"),
		TextbeltKey:       getenv("TEXTBELT_API_KEY"),
		SentryDSN:         getenv("SENTRY_DSN"),
		CORSOrigins:       splitList(valueOr(getenv("CORS_ORIGINS"), "*")),
		AdminEmails:       splitList(getenv("ADMIN_EMAILS")),
	}

	if cfg.AccessTokenSecret == "" {
		return nil, errors.New("ACCESS_TOKEN is not set")
	}

	uri, err := mongoURI(getenv)
	if err != nil {
		return nil, err
	}
	cfg.MongoURI = uri

	if v := getenv("ENFORCE_UNIQUE_BOOKINGS"); v != "" {
		cfg.EnforceUniqueBookings, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("ENFORCE_UNIQUE_BOOKINGS: %w", err)
		}
	}

	cfg.TokenRatePerMinute = 30
	if v := getenv("TOKEN_RATE_PER_MINUTE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("TOKEN_RATE_PER_MINUTE must be a positive integer, got %q", v)
		}
		cfg.TokenRatePerMinute = n
	}

	return cfg, nil
}

// mongoURI prefers MONGO_URI and otherwise assembles an Atlas SRV URI from
// DB_USER, DB_PASSWORD and DB_CLUSTER.
func mongoURI(getenv func(string) string) (string, error) {
	if uri := getenv("MONGO_URI"); uri != "" {
		return uri, nil
	}
	user, pass, cluster := getenv("DB_USER"), getenv("DB_PASSWORD"), getenv("DB_CLUSTER")
	if user == "" || pass == "" || cluster == "" {
		return "", errors.New("MONGO_URI or DB_USER, DB_PASSWORD and DB_CLUSTER must be set")
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(user, pass),
		Host:     cluster,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String(), nil
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
