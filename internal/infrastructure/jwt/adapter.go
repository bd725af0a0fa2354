package jwt

import (
	"errors"
	"fmt"

	"github.com/pregen/shop-api/internal/domain/entity"
	"github.com/pregen/shop-api/internal/usecase"
)

// JWTServiceAdapter adapts JWTManager to the usecase.JWTService interface.
type JWTServiceAdapter struct {
	mgr *JWTManager
}

// NewJWTService creates a new usecase.JWTService from JWTManager
func NewJWTService(mgr *JWTManager) usecase.JWTService {
	return &JWTServiceAdapter{mgr: mgr}
}

// GenerateAccessToken issues an access token for a user.
func (a *JWTServiceAdapter) GenerateAccessToken(user *entity.User) (string, error) {
	return a.mgr.GenerateAccessToken(user.ID, string(user.Role), user.Username, user.Email)
}

// ParseAccessToken validates an access token and returns Claims, mapping manager
// errors onto the usecase sentinels.
func (a *JWTServiceAdapter) ParseAccessToken(tokenStr string) (*entity.Claims, error) {
	claims, err := a.mgr.VerifyToken(tokenStr)
	if err != nil {
		if errors.Is(err, ErrExpiredToken) {
			return nil, fmt.Errorf("%w: %v", usecase.ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", usecase.ErrTokenInvalid, err)
	}
	return claims, nil
}
