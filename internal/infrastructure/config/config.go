package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the process configuration, read from the environment. A .env
// file in the working directory is loaded by godotenv/autoload in main.
type Config struct {
	Port    int
	LogMode string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	DraftTTL       time.Duration
	DraftAutoStart bool

	JWTSecret string
	TokenTTL  time.Duration

	// OrdersAPIURL points the order synchronizer at a remote order service.
	// Empty means the in-process order service is used.
	OrdersAPIURL     string
	OrdersAPITimeout time.Duration
	SyncIdleTTL      time.Duration

	CORSOrigins []string
}

// Load reads the configuration. Unset variables take their defaults;
// malformed values are an error.
func Load() (Config, error) {
	var (
		cfg Config
		err error
	)
	if cfg.Port, err = intEnv("PORT", 8080); err != nil {
		return Config{}, err
	}
	cfg.LogMode = getenvDefault("LOG_MODE", "dev")

	cfg.AWSRegion = getenvDefault("AWS_REGION", "us-east-1")
	cfg.AWSAccessKeyID = getenvDefault("AWS_ACCESS_KEY_ID", "local")
	cfg.AWSSecretAccessKey = getenvDefault("AWS_SECRET_ACCESS_KEY", "local")
	cfg.DynamoDBEndpoint = os.Getenv("DYNAMODB_ENDPOINT")

	cfg.RedisAddr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if cfg.RedisDB, err = intEnv("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.DraftTTL, err = durationEnv("DRAFT_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.DraftAutoStart, err = boolEnv("DRAFT_AUTO_START", true); err != nil {
		return Config{}, err
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.TokenTTL, err = durationEnv("TOKEN_TTL", 12*time.Hour); err != nil {
		return Config{}, err
	}

	cfg.OrdersAPIURL = strings.TrimRight(strings.TrimSpace(os.Getenv("ORDERS_API_URL")), "/")
	if cfg.OrdersAPITimeout, err = durationEnv("ORDERS_API_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.SyncIdleTTL, err = durationEnv("SYNC_IDLE_TTL", 30*time.Minute); err != nil {
		return Config{}, err
	}

	cfg.CORSOrigins = splitList(getenvDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"))
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func boolEnv(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
