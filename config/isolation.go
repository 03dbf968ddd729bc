package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type IsolationConfig struct {
	ApiUrl         string
	ApiKey         string
	MaxAttempts    int
	RetryDelay     time.Duration
	AttemptTimeout time.Duration
}

func GetIsolationConfig() (*IsolationConfig, error) {
	apiUrl := os.Getenv("ELEVEN_LABS_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_API_URL must be set")
	}
	apiKey := os.Getenv("ELEVEN_LABS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_API_KEY must be set")
	}

	maxAttempts, err := intFromEnv("ISOLATION_MAX_ATTEMPTS", 3)
	if err != nil {
		return nil, err
	}
	retryDelaySeconds, err := intFromEnv("ISOLATION_RETRY_DELAY_SECONDS", 5)
	if err != nil {
		return nil, err
	}
	timeoutSeconds, err := intFromEnv("ISOLATION_TIMEOUT_SECONDS", 300)
	if err != nil {
		return nil, err
	}

	return &IsolationConfig{
		ApiUrl:         apiUrl,
		ApiKey:         apiKey,
		MaxAttempts:    maxAttempts,
		RetryDelay:     time.Duration(retryDelaySeconds) * time.Second,
		AttemptTimeout: time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

func intFromEnv(name string, fallback int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if val <= 0 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return val, nil
}
