package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Proxycurl ProxycurlConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string

	// WSPort is served by the notifier binary.
	WSPort string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string

	// JobStream is the Redis stream that background job events are
	// appended to and consumed from.
	JobStream string
}

type ProxycurlConfig struct {
	APIKey            string
	BaseURL           string
	RequestTimeout    time.Duration
	RequestsPerMinute int
}

const (
	defaultProxycurlBaseURL = "https://nubela.co/proxycurl/api"
	defaultJobStream        = "jobs:events"
)

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optInt := func(key string, fallback int) int {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return fallback
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return fallback
		}
		return v
	}
	optSeconds := func(key string, fallback time.Duration) time.Duration {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return fallback
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return fallback
		}
		return time.Duration(v) * time.Second
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		WSPort:      opt("WS_PORT"),
	}
	if cfg.App.WSPort == "" {
		cfg.App.WSPort = "8091"
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        optSeconds("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS", 10)),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   optSeconds("DB_POOL_MAX_CONN_LIFETIME", time.Hour),
		PoolMaxConnIdleTime:   optSeconds("DB_POOL_MAX_CONN_IDLE_TIME", 30*time.Minute),
		PoolHealthCheckPeriod: optSeconds("DB_POOL_HEALTH_CHECK_PERIOD", time.Minute),
	}

	cfg.Redis = RedisConfig{
		Host:      opt("REDIS_HOST"),
		Port:      opt("REDIS_PORT"),
		Password:  opt("REDIS_PASSWORD"),
		JobStream: opt("REDIS_JOB_STREAM"),
	}
	if cfg.Redis.JobStream == "" {
		cfg.Redis.JobStream = defaultJobStream
	}

	// The Proxycurl key must be present at startup, not discovered missing
	// on the first enrichment call.
	cfg.Proxycurl = ProxycurlConfig{
		APIKey:            req("PROXYCURL_API_KEY"),
		BaseURL:           opt("PROXYCURL_BASE_URL"),
		RequestTimeout:    optSeconds("PROXYCURL_REQUEST_TIMEOUT", 10*time.Second),
		RequestsPerMinute: optInt("PROXYCURL_REQUESTS_PER_MINUTE", 60),
	}
	if cfg.Proxycurl.BaseURL == "" {
		cfg.Proxycurl.BaseURL = defaultProxycurlBaseURL
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}
