package entity

import "github.com/golang-jwt/jwt/v5"

// Claims is the identity carried by an access token.
type Claims struct {
	UserID   string   `json:"id"`
	Role     UserRole `json:"role"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	jwt.RegisteredClaims
}
