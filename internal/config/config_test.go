package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.CreditPackSize != 100 {
		t.Errorf("CreditPackSize = %d, want 100", cfg.CreditPackSize)
	}
	if cfg.PaymentDelay != 2*time.Second || cfg.TokenTTL != 24*time.Hour {
		t.Errorf("durations = %s/%s", cfg.PaymentDelay, cfg.TokenTTL)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", " DEV ")
	t.Setenv("CREDIT_PACK_SIZE", "250")
	t.Setenv("PAYMENT_DELAY", "150ms")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173,https://vale.app")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9000" || !cfg.IsDev() {
		t.Errorf("Port/Env = %q/%q", cfg.Port, cfg.Env)
	}
	if cfg.CreditPackSize != 250 {
		t.Errorf("CreditPackSize = %d, want 250", cfg.CreditPackSize)
	}
	if cfg.PaymentDelay != 150*time.Millisecond {
		t.Errorf("PaymentDelay = %s", cfg.PaymentDelay)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{Port: "8080", Env: "prod", JWTSecret: "s", TokenTTL: time.Hour, CreditPackSize: 100, GeminiAPIKey: "k"}
	}

	tests := []struct {
		name     string
		mutate   func(*Config)
		wantErr  bool
		warnings int
	}{
		{"complete", func(*Config) {}, false, 0},
		{"zero credit pack", func(c *Config) { c.CreditPackSize = 0 }, true, 0},
		{"no secret in prod", func(c *Config) { c.JWTSecret = "" }, true, 0},
		{"no secret in dev", func(c *Config) { c.JWTSecret = ""; c.Env = "dev" }, false, 1},
		{"no gemini key", func(c *Config) { c.GeminiAPIKey = "" }, false, 1},
		{"negative delay", func(c *Config) { c.PaymentDelay = -time.Second }, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			warnings, err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if len(warnings) != tt.warnings {
				t.Errorf("warnings = %v, want %d", warnings, tt.warnings)
			}
		})
	}
}
