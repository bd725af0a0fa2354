package usecasecontract

import "time"

// IConfigProvider exposes runtime settings to usecases and handlers.
type IConfigProvider interface {
	IsProduction() bool
	GetEnvironment() string
	GetTokenTTL() time.Duration
	GetBcryptCost() int
	GetUserCacheTTL() time.Duration
	GetAllowedOrigins() []string
	GetRateLimitPerSecond() float64
}
