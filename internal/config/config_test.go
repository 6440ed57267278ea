package config

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLogLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "TASK_QUEUE_NAME", "TASK_QUEUE_MAX_RETRIES", "REDIS_ADDR", "REDIS_DB",
		"SUBMIT_TIMEOUT_SECONDS", "SUBMIT_CONCURRENCY", "SUBMIT_RATE_PER_SECOND", "SUBMIT_BURST",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("REMINDER_STORE_URL", "http://store.local")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("port: got %q, want 8080", cfg.Port)
	}
	if cfg.TaskQueue.QueueName != "default" || cfg.TaskQueue.MaxRetries != 3 {
		t.Errorf("unexpected task queue defaults: %+v", cfg.TaskQueue)
	}
	if cfg.Redis.Addr != defaultRedisAddr {
		t.Errorf("redis addr: got %q", cfg.Redis.Addr)
	}
	if cfg.Scheduler.SubmitTimeout != 10*time.Second || cfg.Scheduler.Concurrency != 1 ||
		cfg.Scheduler.RatePerSecond != 0 || cfg.Scheduler.Burst != 1 {
		t.Errorf("unexpected scheduler defaults: %+v", cfg.Scheduler)
	}
	if err := ValidateForRun(cfg); err != nil {
		t.Errorf("ValidateForRun: %v", err)
	}
}

func TestLoadSchedulerConfig(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected SchedulerConfig
	}{
		{
			name: "explicit values",
			env: map[string]string{
				"SUBMIT_TIMEOUT_SECONDS": "3",
				"SUBMIT_CONCURRENCY":     "8",
				"SUBMIT_RATE_PER_SECOND": "2.5",
				"SUBMIT_BURST":           "4",
			},
			expected: SchedulerConfig{SubmitTimeout: 3 * time.Second, Concurrency: 8, RatePerSecond: 2.5, Burst: 4},
		},
		{
			name: "zero timeout disables the bound",
			env: map[string]string{
				"SUBMIT_TIMEOUT_SECONDS": "0",
			},
			expected: SchedulerConfig{SubmitTimeout: 0, Concurrency: 1, RatePerSecond: 0, Burst: 1},
		},
		{
			name: "invalid values fall back",
			env: map[string]string{
				"SUBMIT_TIMEOUT_SECONDS": "soon",
				"SUBMIT_CONCURRENCY":     "0",
				"SUBMIT_RATE_PER_SECOND": "-1",
				"SUBMIT_BURST":           "many",
			},
			expected: SchedulerConfig{SubmitTimeout: 10 * time.Second, Concurrency: 1, RatePerSecond: 0, Burst: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"SUBMIT_TIMEOUT_SECONDS", "SUBMIT_CONCURRENCY", "SUBMIT_RATE_PER_SECOND", "SUBMIT_BURST"} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got := LoadSchedulerConfig()
			if *got != tt.expected {
				t.Errorf("got %+v, want %+v", *got, tt.expected)
			}
		})
	}
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "zero")

	if _, err := Load(); !errors.Is(err, ErrInvalidRedisDB) {
		t.Errorf("expected ErrInvalidRedisDB, got %v", err)
	}
}

func TestValidateForRun_RequiresReminderStore(t *testing.T) {
	cfg := &Config{Redis: &RedisConfig{Addr: "localhost:6379"}}

	if err := ValidateForRun(cfg); !errors.Is(err, ErrReminderStoreURLMissing) {
		t.Errorf("expected ErrReminderStoreURLMissing, got %v", err)
	}
}
