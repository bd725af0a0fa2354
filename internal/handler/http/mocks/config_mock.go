package mocks

import (
	"time"

	usecasecontract "github.com/pregen/shop-api/internal/usecase/contract"
)

// MockConfig is a fixed IConfigProvider.
type MockConfig struct {
	Production bool
	TokenTTL   time.Duration
	RateLimit  float64
	Origins    []string
}

var _ usecasecontract.IConfigProvider = (*MockConfig)(nil)

func NewMockConfig() *MockConfig {
	return &MockConfig{
		TokenTTL: 720 * time.Hour,
		Origins:  []string{"http://localhost:3000"},
	}
}

func (m *MockConfig) IsProduction() bool { return m.Production }

func (m *MockConfig) GetEnvironment() string {
	if m.Production {
		return "production"
	}
	return "development"
}

func (m *MockConfig) GetTokenTTL() time.Duration     { return m.TokenTTL }
func (m *MockConfig) GetBcryptCost() int             { return 4 }
func (m *MockConfig) GetUserCacheTTL() time.Duration { return time.Minute }
func (m *MockConfig) GetAllowedOrigins() []string    { return m.Origins }
func (m *MockConfig) GetRateLimitPerSecond() float64 { return m.RateLimit }
