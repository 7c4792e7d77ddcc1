package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info" validate:"oneof=trace debug info warn warning error"`
	LogPretty bool   `env:"LOG_PRETTY, default=true"`

	API     APIConfig
	Session SessionConfig
	Redis   RedisConfig
	Stub    StubConfig
}

type APIConfig struct {
	BaseURL     string        `env:"WAREFY_API_URL,      default=http://localhost:8000" validate:"required,url"`
	Timeout     time.Duration `env:"WAREFY_HTTP_TIMEOUT, default=0s"`
	DemoMode    bool          `env:"WAREFY_DEMO_MODE,    default=false"`
	FanOutLimit int           `env:"WAREFY_FANOUT_LIMIT, default=8" validate:"min=1,max=64"`
}

type SessionConfig struct {
	Backend   string        `env:"WAREFY_SESSION_BACKEND,   default=file" validate:"oneof=memory file redis"`
	File      string        `env:"WAREFY_SESSION_FILE"`
	Namespace string        `env:"WAREFY_SESSION_NAMESPACE, default=default"`
	TTL       time.Duration `env:"WAREFY_SESSION_TTL,       default=0s"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379" validate:"required"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0" validate:"min=0"`
}

// StubConfig drives the in-memory reference backend.
type StubConfig struct {
	Port          string `env:"STUB_PORT,           default=8000"`
	JWTSecret     string `env:"STUB_JWT_SECRET,     default=warefy-dev-secret" validate:"required"`
	AdminPassword string `env:"STUB_ADMIN_PASSWORD, default=admin123" validate:"required"`
}

// Load reads an optional .env file, then environment variables, and
// validates the result.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith is Load without the .env step, reading variables from l.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: process environment: %w", err)
	}

	if cfg.Session.File == "" {
		cfg.Session.File = defaultSessionFile()
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".warefy", "session.json")
	}
	return filepath.Join(home, ".warefy", "session.json")
}
