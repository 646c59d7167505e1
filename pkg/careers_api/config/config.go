package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	AdminLogin    string
	AdminPassword string

	DBMaxOpenConns   int
	DBMaxIdleConns   int
	DBConnMaxIdle    time.Duration
	DBConnectTimeout time.Duration

	CORSAllowOrigins []string

	AuthFailureLimit  int
	AuthFailureWindow time.Duration
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:          getEnv("PORT", "3000"),
		DBHost:            getEnv("DB_HOST", ""),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", ""),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBSSLMode:         getEnv("DB_SSLMODE", "require"),
		AdminLogin:        getEnv("ADMIN_LOGIN", ""),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		DBMaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 10),
		DBConnMaxIdle:     getDuration("DB_CONN_MAX_IDLE", 30*time.Second),
		DBConnectTimeout:  getDuration("DB_CONNECT_TIMEOUT", 2*time.Second),
		AuthFailureLimit:  getInt("AUTH_FAILURE_LIMIT", 5),
		AuthFailureWindow: getDuration("AUTH_FAILURE_WINDOW", time.Minute),
	}

	if origins := getEnv("CORS_ALLOW_ORIGINS", ""); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, origin)
			}
		}
	}

	if cfg.DBHost == "" {
		log.Fatal("DB_HOST is required")
	}
	if cfg.DBName == "" {
		log.Fatal("DB_NAME is required")
	}
	if cfg.DBUser == "" {
		log.Fatal("DB_USER is required")
	}
	if cfg.AdminLogin == "" || cfg.AdminPassword == "" {
		log.Fatal("ADMIN_LOGIN and ADMIN_PASSWORD are required")
	}

	return cfg
}

// DSN builds the postgres connection string with a bounded connect timeout.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s connect_timeout=%d",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
		int(c.DBConnectTimeout.Seconds()),
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
