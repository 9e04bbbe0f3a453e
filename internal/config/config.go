package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"` // dev|prod

	Log      string `mapstructure:"LOG"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	LogFile  string `mapstructure:"LOG_FILE"`

	JWTSecret string        `mapstructure:"JWT_SECRET"`
	TokenTTL  time.Duration `mapstructure:"TOKEN_TTL"`

	SeedFile       string        `mapstructure:"SEED_FILE"`
	CreditPackSize int           `mapstructure:"CREDIT_PACK_SIZE"`
	PaymentDelay   time.Duration `mapstructure:"PAYMENT_DELAY"`

	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`
	RateLimit   float64  `mapstructure:"RATE_LIMIT"` // requests per second per client, 0 disables
}

var defaults = map[string]any{
	"PORT":             "8080",
	"ENV":              "prod",
	"LOG":              "",
	"LOG_LEVEL":        "info",
	"LOG_FILE":         "logs/app.log",
	"JWT_SECRET":       "",
	"TOKEN_TTL":        "24h",
	"SEED_FILE":        "",
	"CREDIT_PACK_SIZE": 100,
	"PAYMENT_DELAY":    "2s",
	"GEMINI_API_KEY":   "",
	"GEMINI_MODEL":     "gemini-2.5-flash",
	"CORS_ORIGINS":     []string{"*"},
	"RATE_LIMIT":       20,
}

// LoadConfig reads .env when present, then the environment, and fills in
// defaults. It does not log so that the logger can be built from it.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	return &cfg, nil
}

// IsDev reports whether the service runs in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "dev"
}

// Validate returns warnings, and an error when the service cannot start.
func (c *Config) Validate() (warnings []string, err error) {
	if c.CreditPackSize <= 0 {
		return nil, fmt.Errorf("CREDIT_PACK_SIZE must be positive, got %d", c.CreditPackSize)
	}
	if c.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.PaymentDelay < 0 {
		return nil, fmt.Errorf("PAYMENT_DELAY cannot be negative")
	}

	if strings.TrimSpace(c.JWTSecret) == "" {
		if !c.IsDev() {
			return nil, fmt.Errorf("JWT_SECRET is required outside dev")
		}
		warnings = append(warnings, "JWT_SECRET is empty, using an insecure dev secret")
	}
	if c.GeminiAPIKey == "" {
		warnings = append(warnings, "GEMINI_API_KEY is not set, assistant will answer with fallbacks")
	}
	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 8080")
		c.Port = "8080"
	}
	return warnings, nil
}

// Secret returns the JWT signing key, falling back to a fixed dev key.
func (c *Config) Secret() []byte {
	if c.JWTSecret == "" {
		return []byte("vale-conecta-dev-secret")
	}
	return []byte(c.JWTSecret)
}
