package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// const dsn = "host=localhost user=postgres password=password dbname=cafedb port=5432 sslmode=disable TimeZone=Africa/Cairo"

const (
	DRIVER_POSTGRES = "postgres"
	DRIVER_SQLITE   = "sqlite"
)

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

func GetDriver() string {
	driver := os.Getenv("DATABASE_DRIVER")
	if driver == "" {
		return DRIVER_POSTGRES
	}
	return driver
}

func GetSQLitePath() string {
	return getEnv("SQLITE_PATH", "cafe.db")
}

func GetAPIEnv() string {
	return getEnv("API_ENV", "local")
}

func GetPort() string {
	return getEnv("API_PORT", "9090")
}

func GetAppHost() string {
	return os.Getenv("APP_HOST")
}

func GetRedisHost() string {
	return os.Getenv("REDIS_HOST")
}

func GetLogDir() string {
	return getEnv("LOG_DIR", "logs")
}

func GetJWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func GetJWTTTL() time.Duration {
	return time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour
}

// GetSweepInterval is how often table statuses are recomputed from reservations.
func GetSweepInterval() time.Duration {
	return time.Duration(getEnvInt("TABLE_STATUS_SWEEP_MINUTES", 5)) * time.Minute
}

func IsMaintenanceMode() bool {
	mm, err := strconv.ParseBool(os.Getenv("MAINTENANCE_MODE"))
	return err == nil && mm
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

const TIME_PARSE_FORMAT = "2006-01-02 15:04:05"
const SHIFT_TIME_FORMAT = "15:04"
const SHIFT_DATE_FORMAT = "2006-01-02"
