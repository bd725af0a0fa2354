package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pregen/shop-api/internal/handler/http/dto"
	"github.com/pregen/shop-api/internal/handler/http/middleware"
	usecasecontract "github.com/pregen/shop-api/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	Signup(*gin.Context)
	GetCurrentUser(*gin.Context)
	UpdateProfile(*gin.Context)
	ListUsers(*gin.Context)
	GetUser(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
	errors      middleware.ErrorResponder
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase, config usecasecontract.IConfigProvider) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		errors:      middleware.ErrorResponder{Verbose: !config.IsProduction()},
	}
}

// Signup handles user registration. A super admin calling with a valid token
// may hand out elevated roles; everyone else gets the default role.
func (h *UserHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	actor, _ := middleware.CurrentUser(c)
	user, token, err := h.userUsecase.Register(c.Request.Context(), usecasecontract.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    req.Gender,
		Role:      req.Role,
	}, actor)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.AuthResponse{
		Success: true,
		Message: "User registered successfully",
		Token:   token,
		User:    dto.ToSessionUser(*user),
	})
}

// GetCurrentUser handles retrieving the current authenticated user
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// UpdateProfile changes the allow-listed profile fields of :userId.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req dto.UpdateProfileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updated, err := h.userUsecase.UpdateProfile(c.Request.Context(), actor, c.Param("userId"), usecasecontract.ProfileUpdate{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Gender:       req.Gender,
		ProfilePhoto: req.ProfilePhoto,
	})
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UserEnvelope{Success: true, User: dto.ToUserResponse(*updated)})
}

// ListUsers returns every account, newest first.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUsecase.ListUsers(c.Request.Context())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponses(users))
}

// GetUser handles retrieving user by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}
