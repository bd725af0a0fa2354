package mocks

import (
	"context"
	"sync"

	"github.com/pregen/shop-api/internal/domain/contract"
	"github.com/pregen/shop-api/internal/domain/entity"
)

// MockUserCache is a map-backed IUserCache.
type MockUserCache struct {
	mu    sync.Mutex
	users map[string]entity.User

	Invalidations int
}

var _ contract.IUserCache = (*MockUserCache)(nil)

func NewMockUserCache() *MockUserCache {
	return &MockUserCache{users: make(map[string]entity.User)}
}

func (m *MockUserCache) GetUser(ctx context.Context, id string) (*entity.User, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, false, nil
	}
	return &u, true, nil
}

func (m *MockUserCache) SetUser(ctx context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = *user
	return nil
}

func (m *MockUserCache) InvalidateUser(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	m.Invalidations++
	return nil
}
