package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AGROBERT_JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.App.Port != "5000" {
		t.Fatalf("expected default port 5000, got %s", cfg.App.Port)
	}
	if !cfg.App.IsDev() {
		t.Fatalf("expected default env to be dev")
	}
	if cfg.JWT.ExpirationMinutes != 60 {
		t.Fatalf("expected 1h token lifetime, got %d minutes", cfg.JWT.ExpirationMinutes)
	}
	if cfg.DB.Path != "users.db" {
		t.Fatalf("expected default sqlite path, got %s", cfg.DB.Path)
	}
	if cfg.SMS.Enabled() {
		t.Fatalf("expected sms notifier disabled without credentials")
	}
	if cfg.Gemini.Enabled() {
		t.Fatalf("expected gemini disabled without api key")
	}
	if cfg.SMS.OTPTTL != 0 {
		t.Fatalf("expected otp ttl disabled by default, got %s", cfg.SMS.OTPTTL)
	}
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("AGROBERT_JWT_SECRET", "placeholder")
	os.Unsetenv("AGROBERT_JWT_SECRET")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when jwt secret missing")
	}
}

func TestSMSEnabledWithFullCredentials(t *testing.T) {
	t.Setenv("AGROBERT_JWT_SECRET", "test-secret")
	t.Setenv("AGROBERT_TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("AGROBERT_TWILIO_AUTH_TOKEN", "token")
	t.Setenv("AGROBERT_TWILIO_PHONE_NUMBER", "+15005550006")
	t.Setenv("AGROBERT_SMS_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.SMS.Enabled() {
		t.Fatalf("expected sms notifier enabled")
	}
	if cfg.SMS.Timeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", cfg.SMS.Timeout)
	}
}
