package usecasecontract

import (
	"context"

	"github.com/pregen/shop-api/internal/domain/entity"
)

// RegisterInput carries the sign-up form.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Gender    string
	Role      string
}

// ProfileUpdate lists the only fields a profile update may touch. Nil means unchanged.
type ProfileUpdate struct {
	FirstName    *string
	LastName     *string
	Gender       *string
	ProfilePhoto *string
}

// IUserUseCase defines the interface for user-related operations.
type IUserUseCase interface {
	// Register creates an account. actor is the caller's identity, nil when anonymous.
	Register(ctx context.Context, in RegisterInput, actor *entity.User) (*entity.User, string, error)
	Login(ctx context.Context, email, password, ip string) (*entity.User, string, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]entity.User, error)
	UpdateProfile(ctx context.Context, actor *entity.User, userID string, update ProfileUpdate) (*entity.User, error)
	UpdateRoleOrPassword(ctx context.Context, actor *entity.User, userID, newRole, newPassword string) error
	SoftDelete(ctx context.Context, userID string) (*entity.User, error)
	Restore(ctx context.Context, userID string) error
	ToggleBlock(ctx context.Context, userID string) (bool, error)
	RecordLogin(ctx context.Context, userID, ip string) error
}
