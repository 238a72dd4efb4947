package model

import "time"

// User represents a user in the database.
type User struct {
	ID        int64
	Name      string
	Email     string
	AuthHash  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SignupRequest represents a user signup request.
type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupResponse represents a successful signup with a JWT token.
type SignupResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// LoginResponse represents a successful login with a JWT token.
type LoginResponse struct {
	Token string `json:"token"`
}

// UserResponse represents user data safe for API responses (no sensitive fields).
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// MeResponse wraps the authenticated user for GET /api/auth/me.
type MeResponse struct {
	User UserResponse `json:"user"`
}
