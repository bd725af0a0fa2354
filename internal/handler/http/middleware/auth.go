package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pregen/shop-api/internal/domain/entity"
	usecasecontract "github.com/pregen/shop-api/internal/usecase/contract"
)

const (
	// TokenCookie is the cookie the login handler sets.
	TokenCookie = "token"

	currentUserKey  = "currentUser"
	currentTokenKey = "currentToken"
)

// Authenticator is the part of the user usecase the middleware needs.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
}

var _ Authenticator = (usecasecontract.IUserUseCase)(nil)

// AuthMiddleWare requires a valid token and attaches the caller's public record
// to the context. It does not check roles.
func AuthMiddleWare(auth Authenticator, errs ErrorResponder) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			errs.Abort(c, err)
			return
		}
		setIdentity(c, user, token)
		c.Next()
	}
}

// OptionalAuth attaches the identity when the token is good and otherwise
// lets the request through anonymously.
func OptionalAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token != "" {
			if user, err := auth.Authenticate(c.Request.Context(), token); err == nil {
				setIdentity(c, user, token)
			}
		}
		c.Next()
	}
}

// ExtractToken reads a Bearer token from the Authorization header, falling
// back to the token cookie.
func ExtractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			if token = strings.TrimSpace(token); token != "" {
				return token
			}
		}
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie
	}
	return ""
}

func setIdentity(c *gin.Context, user *entity.User, token string) {
	c.Set(currentUserKey, user)
	c.Set(currentTokenKey, token)
}

// CurrentUser returns the identity attached by AuthMiddleWare or OptionalAuth.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok && user != nil
}

// CurrentToken returns the raw token the identity was proven with.
func CurrentToken(c *gin.Context) string {
	return c.GetString(currentTokenKey)
}
