package contract

import (
	"context"

	"github.com/pregen/shop-api/internal/domain/entity"
)

// IUserCache caches public user records by id.
type IUserCache interface {
	// GetUser reports a miss with found=false and a nil error.
	GetUser(ctx context.Context, id string) (user *entity.User, found bool, err error)
	SetUser(ctx context.Context, user *entity.User) error
	InvalidateUser(ctx context.Context, id string) error
}
