package dto

import (
	"github.com/traqbank/backoffice/internal/core/domain"
)

// LoginRequest carries the login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest carries the signup form. The length and confirmation rules
// mirror the login records' constraints.
type SignupRequest struct {
	Username        string `json:"username" binding:"required,min=3,max=100"`
	Password        string `json:"password" binding:"required,min=6,max=100"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
}

// LoginResponse returns the session token after login or signup.
type LoginResponse struct {
	Token string            `json:"token"`
	User  UserLoginResponse `json:"user"`
}

// UserLoginResponse defines the data returned for a login record.
type UserLoginResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// ToUserLoginResponse converts a domain.UserLogin to a response.
func ToUserLoginResponse(u *domain.UserLogin) UserLoginResponse {
	return UserLoginResponse{
		ID:       u.ID,
		Username: u.Username,
	}
}
