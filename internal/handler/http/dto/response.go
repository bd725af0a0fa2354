package dto

import (
	"time"

	"github.com/pregen/shop-api/internal/domain/entity"
)

// UserResponse is the DTO for a user. It never carries the password hash.
type UserResponse struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Gender       string     `json:"gender"`
	ProfilePhoto string     `json:"profile_photo"`
	Blocked      bool       `json:"blocked"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *string    `json:"deleted_at,omitempty"`
	LastLogin    *string    `json:"last_login,omitempty"`
	LastIP       string     `json:"last_ip,omitempty"`
	CreatedAt    string     `json:"created_at"`
}

// SessionUser is the compact identity returned with a token.
type SessionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    SessionUser `json:"user"`
}

// CheckAuthResponse echoes the authenticated identity and the token it was proven with.
type CheckAuthResponse struct {
	User  SessionUser `json:"user"`
	Token string      `json:"token"`
}

// UserEnvelope wraps a single user for mutation responses.
type UserEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    UserResponse `json:"user"`
}

// BlockResponse reports the new blocked state.
type BlockResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Blocked bool   `json:"blocked"`
}

// AccessDeniedResponse is the authorization gate's rejection body.
type AccessDeniedResponse struct {
	Error         string   `json:"error"`
	RequiredRoles []string `json:"required_roles"`
	YourRole      string   `json:"your_role"`
}

// HealthResponse is served by the health endpoint.
type HealthResponse struct {
	OK          bool   `json:"ok"`
	Environment string `json:"environment"`
}

// converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		Role:         string(user.Role),
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Gender:       string(user.Gender),
		ProfilePhoto: user.ProfilePhoto,
		Blocked:      user.Blocked,
		Deleted:      user.Deleted,
		LastIP:       user.LastIP,
		DeletedAt:    formatTime(user.DeletedAt),
		LastLogin:    formatTime(user.LastLogin),
		CreatedAt:    user.CreatedAt.Format(time.RFC3339),
	}
}

// ToUserResponses converts a list of users.
func ToUserResponses(users []entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}

func ToSessionUser(user entity.User) SessionUser {
	return SessionUser{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is a response for errors. Detail is only filled outside production.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}
