package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/pregen/shop-api/internal/domain/entity"
	"github.com/pregen/shop-api/internal/usecase"
	usecasecontract "github.com/pregen/shop-api/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the UserUsecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister     bool
	ShouldFailLogin        bool
	ShouldFailGetByID      bool
	ShouldFailList         bool
	ShouldFailUpdateUser   bool
	ShouldFailPrivileged   bool
	ShouldFailSoftDelete   bool
	ShouldFailRestore      bool
	ShouldFailToggleBlock  bool
	ShouldFailRecordLogin  bool
	ShouldFailAuthenticate bool
	// FailWith replaces the generic error returned by a failing call.
	FailWith error

	// Return values
	MockUser        entity.User
	MockAccessToken string
	// Identities maps extra tokens to users for role checks.
	Identities map[string]entity.User

	// Recorded arguments
	LastActor         *entity.User
	LastRegisterInput usecasecontract.RegisterInput
	LastProfileUpdate usecasecontract.ProfileUpdate
	LastLoginIP       string
	LastNewRole       string
	LastNewPassword   string
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:        "mock-user-id",
			Username:  "testuser",
			Email:     "test@example.com",
			FirstName: "Test",
			LastName:  "User",
			Gender:    entity.GenderOther,
			Role:      entity.UserRoleStudent,
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		MockAccessToken: "mock_access_token",
		Identities:      map[string]entity.User{},
	}
}

// WithIdentity registers token as proof of user.
func (m *MockUserUsecase) WithIdentity(token string, user entity.User) *MockUserUsecase {
	m.Identities[token] = user
	return m
}

func (m *MockUserUsecase) fail(defaultMessage string) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	return errors.New(defaultMessage)
}

func (m *MockUserUsecase) user() *entity.User {
	u := m.MockUser
	return &u
}

func (m *MockUserUsecase) Register(ctx context.Context, in usecasecontract.RegisterInput, actor *entity.User) (*entity.User, string, error) {
	m.LastRegisterInput = in
	m.LastActor = actor
	if m.ShouldFailRegister {
		return nil, "", m.fail("user creation failed")
	}
	return m.user(), m.MockAccessToken, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password, ip string) (*entity.User, string, error) {
	m.LastLoginIP = ip
	if m.ShouldFailLogin {
		return nil, "", m.fail("login failed")
	}
	return m.user(), m.MockAccessToken, nil
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if accessToken == "" {
		return nil, usecase.ErrMissingToken
	}
	if m.ShouldFailAuthenticate {
		return nil, m.fail("authentication failed")
	}
	if u, ok := m.Identities[accessToken]; ok {
		return &u, nil
	}
	if accessToken == m.MockAccessToken {
		return m.user(), nil
	}
	return nil, usecase.ErrInvalidToken
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, m.fail("user not found")
	}
	return m.user(), nil
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	if m.ShouldFailList {
		return nil, m.fail("list failed")
	}
	return []entity.User{m.MockUser}, nil
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, actor *entity.User, userID string, update usecasecontract.ProfileUpdate) (*entity.User, error) {
	m.LastActor = actor
	m.LastProfileUpdate = update
	if m.ShouldFailUpdateUser {
		return nil, m.fail("update user failed")
	}
	u := m.user()
	if update.FirstName != nil {
		u.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		u.LastName = *update.LastName
	}
	if update.Gender != nil {
		u.Gender = entity.Gender(*update.Gender)
	}
	if update.ProfilePhoto != nil {
		u.ProfilePhoto = *update.ProfilePhoto
	}
	return u, nil
}

func (m *MockUserUsecase) UpdateRoleOrPassword(ctx context.Context, actor *entity.User, userID, newRole, newPassword string) error {
	m.LastActor = actor
	m.LastNewRole = newRole
	m.LastNewPassword = newPassword
	if m.ShouldFailPrivileged {
		return m.fail("update failed")
	}
	return nil
}

func (m *MockUserUsecase) SoftDelete(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailSoftDelete {
		return nil, m.fail("delete failed")
	}
	u := m.user()
	now := time.Now()
	u.Deleted = true
	u.DeletedAt = &now
	return u, nil
}

func (m *MockUserUsecase) Restore(ctx context.Context, userID string) error {
	if m.ShouldFailRestore {
		return m.fail("restore failed")
	}
	return nil
}

func (m *MockUserUsecase) ToggleBlock(ctx context.Context, userID string) (bool, error) {
	if m.ShouldFailToggleBlock {
		return false, m.fail("toggle failed")
	}
	m.MockUser.Blocked = !m.MockUser.Blocked
	return m.MockUser.Blocked, nil
}

func (m *MockUserUsecase) RecordLogin(ctx context.Context, userID, ip string) error {
	if m.ShouldFailRecordLogin {
		return m.fail("record login failed")
	}
	return nil
}
