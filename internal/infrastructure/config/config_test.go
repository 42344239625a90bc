package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestConfig_Defaults(t *testing.T) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		t.Fatalf("process config: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("expected default token ttl 1h, got %s", cfg.TokenTTL)
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("expected default bcrypt cost 10, got %d", cfg.BcryptCost)
	}
	if cfg.PasswordMinLength != 8 {
		t.Errorf("expected default password min length 8, got %d", cfg.PasswordMinLength)
	}
	if cfg.ReminderWorkers != 4 {
		t.Errorf("expected default reminder workers 4, got %d", cfg.ReminderWorkers)
	}
	if cfg.Mongo.Database != "salon_system" {
		t.Errorf("expected default mongo database salon_system, got %q", cfg.Mongo.Database)
	}
}

func TestConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("PASSWORD_MIN_LENGTH", "12")
	t.Setenv("REMINDER_WORKERS", "16")

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		t.Fatalf("process config: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Errorf("expected token ttl 30m, got %s", cfg.TokenTTL)
	}
	if cfg.PasswordMinLength != 12 {
		t.Errorf("expected password min length 12, got %d", cfg.PasswordMinLength)
	}
	if cfg.ReminderWorkers != 16 {
		t.Errorf("expected 16 reminder workers, got %d", cfg.ReminderWorkers)
	}
}
