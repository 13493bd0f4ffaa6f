package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the envconfig namespace for all service settings.
const EnvPrefix = "agrobert"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	JWT      JWTConfig
	Password PasswordConfig
	SMS      SMSConfig
	Gemini   GeminiConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"AGROBERT_APP_ENV" default:"dev"`
	Port         string `envconfig:"AGROBERT_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"AGROBERT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"AGROBERT_LOG_WARN_STACK" default:"false"`
	SeedUsers    bool   `envconfig:"AGROBERT_SEED_USERS" default:"true"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Path            string        `envconfig:"AGROBERT_DB_PATH" default:"users.db"`
	AutoMigrate     bool          `envconfig:"AGROBERT_AUTO_MIGRATE" default:"true"`
	MaxOpenConns    int           `envconfig:"AGROBERT_DB_MAX_OPEN_CONNS" default:"1"`
	MaxIdleConns    int           `envconfig:"AGROBERT_DB_MAX_IDLE_CONNS" default:"1"`
	ConnMaxLifetime time.Duration `envconfig:"AGROBERT_DB_CONN_MAX_LIFETIME" default:"1h"`
}

type JWTConfig struct {
	Secret            string `envconfig:"AGROBERT_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"AGROBERT_JWT_ISSUER" default:"agrobert"`
	ExpirationMinutes int    `envconfig:"AGROBERT_JWT_EXPIRATION_MINUTES" default:"60"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"AGROBERT_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"AGROBERT_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"AGROBERT_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"AGROBERT_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"AGROBERT_ARGON_KEY_LEN" default:"32"`
}

// SMSConfig carries the Twilio credentials for OTP delivery. When AccountSID
// or AuthToken is empty the service falls back to logging codes instead of
// dispatching SMS.
type SMSConfig struct {
	AccountSID string        `envconfig:"AGROBERT_TWILIO_ACCOUNT_SID"`
	AuthToken  string        `envconfig:"AGROBERT_TWILIO_AUTH_TOKEN"`
	FromNumber string        `envconfig:"AGROBERT_TWILIO_PHONE_NUMBER"`
	Timeout    time.Duration `envconfig:"AGROBERT_SMS_TIMEOUT" default:"10s"`
	OTPTTL     time.Duration `envconfig:"AGROBERT_OTP_TTL" default:"0"`
}

// Enabled reports whether the Twilio notifier should be wired at startup.
func (s SMSConfig) Enabled() bool {
	return s.AccountSID != "" && s.AuthToken != "" && s.FromNumber != ""
}

// GeminiConfig controls the generative fallback for the chatbot. An empty
// APIKey disables the collaborator entirely.
type GeminiConfig struct {
	APIKey  string        `envconfig:"AGROBERT_GEMINI_API_KEY"`
	Model   string        `envconfig:"AGROBERT_GEMINI_MODEL" default:"gemini-2.0-flash"`
	Timeout time.Duration `envconfig:"AGROBERT_GEMINI_TIMEOUT" default:"15s"`
}

// Enabled reports whether the generative collaborator should be wired.
func (g GeminiConfig) Enabled() bool {
	return g.APIKey != ""
}
