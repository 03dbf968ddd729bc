package config

import (
	"fmt"
	"os"
	"time"
)

type MergeConfig struct {
	SubmitUrl       string
	StatusUrl       string
	ApiKey          string
	PollMaxAttempts int
	PollInterval    time.Duration
}

func GetMergeConfig() (*MergeConfig, error) {
	submitUrl := os.Getenv("MERGE_SUBMIT_URL")
	if submitUrl == "" {
		return nil, fmt.Errorf("MERGE_SUBMIT_URL must be set")
	}
	statusUrl := os.Getenv("MERGE_STATUS_URL")
	if statusUrl == "" {
		return nil, fmt.Errorf("MERGE_STATUS_URL must be set")
	}
	apiKey := os.Getenv("MERGE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("MERGE_API_KEY must be set")
	}

	pollMaxAttempts, err := intFromEnv("MERGE_POLL_MAX_ATTEMPTS", 60)
	if err != nil {
		return nil, err
	}
	pollIntervalSeconds, err := intFromEnv("MERGE_POLL_INTERVAL_SECONDS", 5)
	if err != nil {
		return nil, err
	}

	return &MergeConfig{
		SubmitUrl:       submitUrl,
		StatusUrl:       statusUrl,
		ApiKey:          apiKey,
		PollMaxAttempts: pollMaxAttempts,
		PollInterval:    time.Duration(pollIntervalSeconds) * time.Second,
	}, nil
}
