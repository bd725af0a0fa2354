package contract

import (
	"context"
	"errors"
	"time"

	"github.com/pregen/shop-api/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no document matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when an insert violates the username or email unique index.
	ErrDuplicateUser = errors.New("user with this username or email already exists")
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByUsername retrieves a user by normalized username.
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	// GetUserByEmail retrieves a user by normalized email, hash included.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// ListUsers returns every user, newest first, without password hashes.
	ListUsers(ctx context.Context) ([]entity.User, error)
	// UpdateUserFields sets the given bson fields and returns the updated user.
	UpdateUserFields(ctx context.Context, id string, fields map[string]interface{}) (*entity.User, error)
	// RecordLogin stamps login metadata and appends an activity log entry.
	RecordLogin(ctx context.Context, id, ip string, at time.Time) error
	// SetDeleted flips the soft-delete marker only if it currently differs from deleted.
	// It reports whether a document was changed.
	SetDeleted(ctx context.Context, id string, deleted bool, deletedAt *time.Time) (bool, error)
	// ToggleBlocked flips the blocked flag and returns the new value.
	ToggleBlocked(ctx context.Context, id string) (bool, error)
}
