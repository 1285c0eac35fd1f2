package shared

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppEnv         string
	LogLevel       string
	HTTPAddr       string
	MetricsAddr    string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	AMQPURL        string
	AMQPExchange   string
	CatalogSource  string // seed | mysql
	SessionBackend string // memory | redis
	SeedWorkers    int
	ActionRPS      int
	CacheTTL       time.Duration
	SessionTTL     time.Duration

	// Warnings lists fallbacks taken while loading. Log them once the logger is set up.
	Warnings []string
}

func Load() Config {
	var warns []string
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			warns = append(warns, fmt.Sprintf("%s=%q is not an integer, using %d", k, v, def))
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		LogLevel:       env("LOG_LEVEL", "info"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ":9100"),
		MySQLDSN:       env("MYSQL_DSN", "root:root@tcp(localhost:3306)/marketplace?parseTime=true&charset=utf8mb4&loc=UTC"),
		RedisAddr:      env("REDIS_ADDR", ""),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		AMQPURL:        env("AMQP_URL", ""),
		AMQPExchange:   env("AMQP_EXCHANGE", "marketplace.notifications"),
		CatalogSource:  strings.ToLower(env("CATALOG_SOURCE", "seed")),
		SessionBackend: strings.ToLower(env("SESSION_BACKEND", "memory")),
		SeedWorkers:    atoi("SEED_WORKERS", 4),
		ActionRPS:      atoi("ACTION_RPS", 50),
		CacheTTL:       time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		SessionTTL:     time.Duration(atoi("SESSION_TTL_SECONDS", 86400)) * time.Second,
	}
	if c.CatalogSource != "seed" && c.CatalogSource != "mysql" {
		warns = append(warns, fmt.Sprintf("unknown CATALOG_SOURCE %q, using seed", c.CatalogSource))
		c.CatalogSource = "seed"
	}
	if c.SessionBackend != "memory" && c.SessionBackend != "redis" {
		warns = append(warns, fmt.Sprintf("unknown SESSION_BACKEND %q, using memory", c.SessionBackend))
		c.SessionBackend = "memory"
	}
	if c.SessionBackend == "redis" && c.RedisAddr == "" {
		warns = append(warns, "SESSION_BACKEND=redis without REDIS_ADDR, using memory")
		c.SessionBackend = "memory"
	}
	c.Warnings = warns
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
