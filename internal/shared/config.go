package shared

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MetricsAddr    string
	CatalogBackend string // memory | mysql
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	CacheTTL       time.Duration
	AuthDelay      time.Duration
	AuthRate       int // allowed login/register attempts per second
	SeedWorkers    int
	WhatsAppNumber string // destination of the booking deep link
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ":9100"),
		CatalogBackend: env("CATALOG_BACKEND", "memory"),
		MySQLDSN:       env("MYSQL_DSN", "root:root@tcp(localhost:3306)/vista?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:      env("REDIS_ADDR", "localhost:6379"),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		CacheTTL:       time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		AuthDelay:      time.Duration(atoi("AUTH_DELAY_MS", 1000)) * time.Millisecond,
		AuthRate:       atoi("AUTH_RATE_RPS", 5),
		SeedWorkers:    atoi("SEED_WORKERS", 4),
		WhatsAppNumber: env("WHATSAPP_NUMBER", "1234567890"),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
