package http

import (
	"time"

	"github.com/nekogravitycat/bulkstay-backend/internal/user"
)

// RegisterRequest defines the payload for account sign-up.
type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Role            string `json:"role" binding:"required,oneof=guest host"`
	TravelFrequency string `json:"travel_frequency" binding:"omitempty,oneof=weekly monthly quarterly annually"`
}

// Validate performs custom validation for RegisterRequest.
func (r *RegisterRequest) Validate() error {
	if r.Password != r.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(r.Password) < user.MinPasswordLength {
		return user.ErrPasswordTooShort
	}
	return nil
}

// LoginRequest defines the payload for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the shape of user data returned in API responses.
type UserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	TravelFrequency *string   `json:"travel_frequency,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewUserResponse converts domain user.User to UserResponse used by the API.
func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		Role:            string(u.Role),
		TravelFrequency: u.TravelFrequency,
		CreatedAt:       u.CreatedAt,
	}
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// MeResponse is the response for GET /v1/me.
type MeResponse struct {
	User UserResponse `json:"user"`
}
