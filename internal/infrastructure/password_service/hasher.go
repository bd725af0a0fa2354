package passwordservice

import (
	"errors"
	"fmt"

	"github.com/pregen/shop-api/internal/domain/contract"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the work factor existing accounts were hashed with.
const DefaultCost = 10

type Hasher struct {
	cost int
}

// check if IHasher was implemented at compile time
var _ contract.IHasher = (*Hasher)(nil)

// NewHasher returns a bcrypt hasher. Costs outside bcrypt's range fall back to DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedPassword), nil
}

func (h *Hasher) ComparePasswordHash(password, hashedPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return contract.ErrPasswordMismatch
		}
		return fmt.Errorf("failed to check password hash: %w", err)
	}
	return nil
}
