// Package configs holds the environment configuration of the console CLI.
package configs

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	API struct {
		URL     string
		Key     string
		Timeout time.Duration
	}
	Log struct {
		Level string
	}
}

func Load() (*Config, error) {
	config := &Config{}

	// API settings
	config.API.URL = getEnv("CONSOLE_API_URL", "http://localhost:8090")
	config.API.Key = getEnv("CONSOLE_API_KEY", "")
	timeout, err := strconv.Atoi(getEnv("CONSOLE_TIMEOUT", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid CONSOLE_TIMEOUT: %v", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid CONSOLE_TIMEOUT: must be positive, got %d", timeout)
	}
	config.API.Timeout = time.Duration(timeout) * time.Second

	config.Log.Level = getEnv("CONSOLE_LOG_LEVEL", "warn")

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
