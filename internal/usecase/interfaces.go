package usecase

import (
	"errors"

	"github.com/pregen/shop-api/internal/domain/entity"
)

var (
	// ErrTokenInvalid covers malformed tokens, bad signatures and unexpected algorithms.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired is returned for a well-signed token past its expiry.
	ErrTokenExpired = errors.New("token has expired")
)

// JWTService defines the interface for JWT operations.
type JWTService interface {
	GenerateAccessToken(user *entity.User) (string, error)
	// ParseAccessToken returns ErrTokenExpired or ErrTokenInvalid on failure.
	ParseAccessToken(token string) (*entity.Claims, error)
}
