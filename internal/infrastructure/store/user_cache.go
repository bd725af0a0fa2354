package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pregen/shop-api/internal/domain/contract"
	"github.com/pregen/shop-api/internal/domain/entity"
)

const defaultUserTTL = 5 * time.Minute

type UserCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ contract.IUserCache = (*UserCacheStore)(nil)

func NewUserCacheStore(rdb *redis.Client, ttl time.Duration) *UserCacheStore {
	if ttl <= 0 {
		ttl = defaultUserTTL
	}
	return &UserCacheStore{rdb: rdb, ttl: ttl}
}

func userKey(id string) string { return fmt.Sprintf("user:id:%s", id) }

func (c *UserCacheStore) GetUser(ctx context.Context, id string) (*entity.User, bool, error) {
	b, err := c.rdb.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var user entity.User
	if err := json.Unmarshal(b, &user); err != nil {
		// treat a corrupt entry as a miss; the next SetUser overwrites it
		return nil, false, nil
	}
	return &user, true, nil
}

// SetUser stores the public record. The hash is tagged json:"-" and never written.
func (c *UserCacheStore) SetUser(ctx context.Context, user *entity.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, userKey(user.ID), data, c.ttl).Err()
}

func (c *UserCacheStore) InvalidateUser(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, userKey(id)).Err()
}
