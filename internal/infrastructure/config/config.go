package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	usecasecontract "github.com/pregen/shop-api/internal/usecase/contract"
)

const EnvProduction = "production"

// Config holds application configuration values.
type Config struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"4000"`
	LogLevel    int    `env:"LOG_LEVEL" envDefault:"0"`

	Mongo Mongo `envPrefix:"MONGODB_"`
	JWT   JWT   `envPrefix:"JWT_"`

	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"720h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`

	RedisURL     string        `env:"REDIS_URL"`
	UserCacheTTL time.Duration `env:"USER_CACHE_TTL" envDefault:"5m"`

	AllowedOrigins     []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000,https://preprod-pregen.netlify.app,https://pregen.netlify.app"`
	RateLimitPerSecond float64  `env:"RATE_LIMIT_PER_SECOND" envDefault:"10"`
}

// Mongo contains database connection parameters.
type Mongo struct {
	URI    string `env:"URI" envDefault:"mongodb://127.0.0.1:27017"`
	DBName string `env:"DB_NAME" envDefault:"pregen"`
}

// JWT contains token signing parameters.
type JWT struct {
	Secret string `env:"SECRET,required,notEmpty"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}
	return &cfg, nil
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// IsProduction reports whether secure cookies and terse errors apply.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

func (c *Config) GetEnvironment() string {
	return c.Environment
}

// GetTokenTTL returns the access token validity window.
func (c *Config) GetTokenTTL() time.Duration {
	return c.TokenTTL
}

func (c *Config) GetBcryptCost() int {
	return c.BcryptCost
}

func (c *Config) GetUserCacheTTL() time.Duration {
	return c.UserCacheTTL
}

func (c *Config) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

func (c *Config) GetRateLimitPerSecond() float64 {
	return c.RateLimitPerSecond
}
