package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pregen/shop-api/internal/domain/apperr"
	"github.com/pregen/shop-api/internal/handler/http/dto"
	"github.com/pregen/shop-api/internal/handler/http/middleware"
	"github.com/pregen/shop-api/internal/infrastructure/metrics"
	"github.com/pregen/shop-api/internal/usecase"
	usecasecontract "github.com/pregen/shop-api/internal/usecase/contract"
)

// AuthHandler owns the session endpoints: login, logout and checkAuth.
type AuthHandler struct {
	userUsecase  usecasecontract.IUserUseCase
	errors       middleware.ErrorResponder
	secureCookie bool
	tokenTTL     time.Duration
}

func NewAuthHandler(userUsecase usecasecontract.IUserUseCase, config usecasecontract.IConfigProvider) *AuthHandler {
	return &AuthHandler{
		userUsecase:  userUsecase,
		errors:       middleware.ErrorResponder{Verbose: !config.IsProduction()},
		secureCookie: config.IsProduction(),
		tokenTTL:     config.GetTokenTTL(),
	}
}

// Login verifies credentials, sets the session cookie and returns the token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncLogin(metrics.LoginRejected)
		ErrorHandler(c, http.StatusBadRequest, "Email and password are required.")
		return
	}

	user, token, err := h.userUsecase.Login(c.Request.Context(), req.Email, req.Password, c.ClientIP())
	metrics.IncLogin(loginOutcome(err))
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	h.setSessionCookie(c, token)
	SuccessHandler(c, http.StatusOK, dto.AuthResponse{
		Success: true,
		Message: "Login successful.",
		Token:   token,
		User:    dto.ToSessionUser(*user),
	})
}

// Logout clears the session cookie. Tokens are stateless, so nothing is revoked.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSameSite(c)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", h.secureCookie, true)
	MessageHandler(c, http.StatusOK, "Logged out successfully")
}

// CheckAuth reports the identity proven by the request's token.
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
	c.Header("Surrogate-Control", "no-store")

	SuccessHandler(c, http.StatusOK, dto.CheckAuthResponse{
		User:  dto.ToSessionUser(*user),
		Token: middleware.CurrentToken(c),
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	h.setSameSite(c)
	c.SetCookie(middleware.TokenCookie, token, int(h.tokenTTL.Seconds()), "/", "", h.secureCookie, true)
}

func (h *AuthHandler) setSameSite(c *gin.Context) {
	if h.secureCookie {
		c.SetSameSite(http.SameSiteStrictMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
}

func loginOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.LoginSuccess
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return metrics.LoginInvalidCredentials
	case errors.Is(err, usecase.ErrAccountBlocked):
		return metrics.LoginBlocked
	case errors.Is(err, usecase.ErrAccountDeleted):
		return metrics.LoginDeleted
	case apperr.KindOf(err) == apperr.KindValidation:
		return metrics.LoginRejected
	default:
		return metrics.LoginError
	}
}
