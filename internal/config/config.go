package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	NATSURL         string
	NATSConnTimeout time.Duration

	ScrapeTimeout   time.Duration
	TargetJobCount  int
	MinSnapshotSize int
	PolitenessMin   time.Duration
	PolitenessMax   time.Duration

	SnapshotTTL  time.Duration
	AnalyticsTTL time.Duration
	SessionTTL   time.Duration

	OTLPEndpoint string
}

func LoadConfig() (*Config, error) {
	config := &Config{
		HTTPAddr: getEnvString("HTTP_ADDR", ":8080"),

		RedisAddr:     getEnvString("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnvString("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		NATSURL:         getEnvString("NATS_URL", "nats://localhost:4222"),
		NATSConnTimeout: getEnvDuration("NATS_CONN_TIMEOUT", 10*time.Second),

		ScrapeTimeout:   getEnvDuration("SCRAPE_TIMEOUT", 10*time.Second),
		TargetJobCount:  getEnvInt("TARGET_JOB_COUNT", 30),
		MinSnapshotSize: getEnvInt("MIN_SNAPSHOT_SIZE", 10),
		PolitenessMin:   getEnvDuration("POLITENESS_MIN", time.Second),
		PolitenessMax:   getEnvDuration("POLITENESS_MAX", 3*time.Second),

		SnapshotTTL:  getEnvDuration("SNAPSHOT_TTL", time.Hour),
		AnalyticsTTL: getEnvDuration("ANALYTICS_TTL", 5*time.Minute),
		SessionTTL:   getEnvDuration("SESSION_TTL", time.Hour),

		OTLPEndpoint: getEnvString("OTLP_ENDPOINT", ""),
	}

	return config, nil
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
