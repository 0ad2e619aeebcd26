package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full service configuration. Values come from an optional
// yaml file, with environment variables overriding individual fields.
type Config struct {
	Port             string        `yaml:"port"`
	SnapshotPath     string        `yaml:"snapshot_path"`
	AutosaveInterval time.Duration `yaml:"autosave_interval"`

	// Optional: Postgres snapshot archive, enabled when set. A max conns of
	// 0 leaves the pool size to the driver.
	DatabaseURL      string `yaml:"database_url"`
	DatabaseMaxConns int    `yaml:"database_max_conns"`

	// Optional: NATS event publishing, enabled when set.
	NATSURL           string `yaml:"nats_url"`
	NATSSubjectPrefix string `yaml:"nats_subject_prefix"`
}

func defaultConfig() *Config {
	return &Config{
		Port:              "8080",
		SnapshotPath:      "data/campeonato.json",
		AutosaveInterval:  5 * time.Minute,
		NATSSubjectPrefix: "campeonato",
	}
}

// loadConfig builds the configuration from defaults, the yaml file named by
// CONFIG_PATH (if any), and environment variable overrides, in that order.
func loadConfig() (*Config, error) {
	config := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	config.Port = getEnv("PORT", config.Port)
	config.SnapshotPath = getEnv("SNAPSHOT_PATH", config.SnapshotPath)
	config.AutosaveInterval = getEnvAsDuration("AUTOSAVE_INTERVAL", config.AutosaveInterval)
	config.DatabaseURL = getEnv("DATABASE_URL", config.DatabaseURL)
	config.DatabaseMaxConns = getEnvAsInt("DATABASE_MAX_CONNS", config.DatabaseMaxConns)
	config.NATSURL = getEnv("NATS_URL", config.NATSURL)
	config.NATSSubjectPrefix = getEnv("NATS_SUBJECT_PREFIX", config.NATSSubjectPrefix)

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
