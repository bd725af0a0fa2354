package mocks

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/pregen/shop-api/internal/domain/contract"
	"github.com/pregen/shop-api/internal/domain/entity"
)

// MockUserRepository is an in-memory IUserRepository that enforces the same
// unique username/email rule as the Mongo indexes.
type MockUserRepository struct {
	mu    sync.Mutex
	users map[string]entity.User

	// Control mock behavior
	ShouldFailGet         bool
	ShouldFailCreate      bool
	ShouldFailRecordLogin bool
	// SkipPreCheck makes lookups by email/username miss, simulating a
	// registration race that only the unique index catches.
	SkipPreCheck bool

	GetByIDCalls int
	// GetByIDEntered, when set, receives a value as each GetUserByID starts.
	// GetByIDGate, when set, holds GetUserByID until it is closed.
	GetByIDEntered chan struct{}
	GetByIDGate    chan struct{}
}

var _ contract.IUserRepository = (*MockUserRepository)(nil)

var errStoreDown = errors.New("store unavailable")

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]entity.User)}
}

// Put seeds a user directly.
func (m *MockUserRepository) Put(user entity.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
}

// Get returns the stored document, hash included.
func (m *MockUserRepository) Get(id string) (entity.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	return u, ok
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ShouldFailCreate {
		return errStoreDown
	}
	for _, existing := range m.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return contract.ErrDuplicateUser
		}
	}
	m.users[user.ID] = *user
	return nil
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	if m.GetByIDEntered != nil {
		m.GetByIDEntered <- struct{}{}
	}
	if m.GetByIDGate != nil {
		<-m.GetByIDGate
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetByIDCalls++
	if m.ShouldFailGet {
		return nil, errStoreDown
	}
	u, ok := m.users[id]
	if !ok {
		return nil, contract.ErrUserNotFound
	}
	u.PasswordHash = ""
	return &u, nil
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return m.findBy(func(u entity.User) bool { return u.Username == username }, true)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return m.findBy(func(u entity.User) bool { return u.Email == email }, false)
}

func (m *MockUserRepository) findBy(match func(entity.User) bool, stripSecret bool) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ShouldFailGet {
		return nil, errStoreDown
	}
	if m.SkipPreCheck {
		return nil, contract.ErrUserNotFound
	}
	for _, u := range m.users {
		if match(u) {
			if stripSecret {
				u.PasswordHash = ""
			}
			return &u, nil
		}
	}
	return nil, contract.ErrUserNotFound
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ShouldFailGet {
		return nil, errStoreDown
	}
	users := make([]entity.User, 0, len(m.users))
	for _, u := range m.users {
		u.PasswordHash = ""
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	return users, nil
}

func (m *MockUserRepository) UpdateUserFields(ctx context.Context, id string, fields map[string]interface{}) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, contract.ErrUserNotFound
	}
	for k, v := range fields {
		switch k {
		case "first_name":
			u.FirstName = v.(string)
		case "last_name":
			u.LastName = v.(string)
		case "gender":
			u.Gender = v.(entity.Gender)
		case "profile_photo":
			u.ProfilePhoto = v.(string)
		case "role":
			u.Role = v.(entity.UserRole)
		case "password_hash":
			u.PasswordHash = v.(string)
		case "updated_at":
			u.UpdatedAt = v.(time.Time)
		default:
			return nil, errors.New("unexpected field " + k)
		}
	}
	m.users[id] = u
	u.PasswordHash = ""
	return &u, nil
}

func (m *MockUserRepository) RecordLogin(ctx context.Context, id, ip string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ShouldFailRecordLogin {
		return errStoreDown
	}
	u, ok := m.users[id]
	if !ok {
		return contract.ErrUserNotFound
	}
	u.LastLogin = &at
	u.LastIP = ip
	u.ActivityLog = append(u.ActivityLog, entity.ActivityEntry{Action: entity.ActivityLogin, Timestamp: at})
	m.users[id] = u
	return nil
}

func (m *MockUserRepository) SetDeleted(ctx context.Context, id string, deleted bool, deletedAt *time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok || u.Deleted == deleted {
		return false, nil
	}
	u.Deleted = deleted
	u.DeletedAt = deletedAt
	m.users[id] = u
	return true, nil
}

func (m *MockUserRepository) ToggleBlocked(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return false, contract.ErrUserNotFound
	}
	u.Blocked = !u.Blocked
	m.users[id] = u
	return u.Blocked, nil
}
