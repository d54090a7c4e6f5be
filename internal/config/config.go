package config

import (
	"os"
	"strconv"
)

type Config struct {
	HTTPAddr        string
	PostgresDSN     string
	JWTSecret       string
	JWTTTLHours     int
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	LoginRateLimit  int
	LoginRateWindow int // seconds
	LogLevel        string
	AppEnv          string
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:        addr,
		PostgresDSN:     os.Getenv("POSTGRES_DSN"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		JWTTTLHours:     envInt("JWT_TTL_HOURS", 24),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         envInt("REDIS_DB", 0),
		LoginRateLimit:  envInt("LOGIN_RATE_LIMIT", 10),
		LoginRateWindow: envInt("LOGIN_RATE_WINDOW_SECS", 60),
		LogLevel:        envDefault("LOG_LEVEL", "info"),
		AppEnv:          envDefault("APP_ENV", "production"),
	}
}

// Development reports whether internal error detail may be exposed in
// responses.
func (c Config) Development() bool {
	return c.AppEnv == "development"
}

func envDefault(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envInt(key string, def int) int {
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
