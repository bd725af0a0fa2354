package dto

// SignupRequest is the registration form. Role is a request, not a grant.
type SignupRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender" binding:"omitempty,gender"`
	Role      string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest holds the only fields a profile update may change.
// Anything else in the body is dropped by the binder.
type UpdateProfileRequest struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Gender       *string `json:"gender" binding:"omitempty,gender"`
	ProfilePhoto *string `json:"profilePhoto"`
}

// UpdateRoleOrPasswordRequest is the admin update form.
type UpdateRoleOrPasswordRequest struct {
	NewRole     string `json:"newRole"`
	NewPassword string `json:"newPassword"`
}
