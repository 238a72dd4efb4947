package service

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/jaiganesh5555/arcade/internal/crypto"
	"github.com/jaiganesh5555/arcade/internal/model"
	"github.com/jaiganesh5555/arcade/internal/repository"
)

var (
	ErrNameTooShort       = errors.New("name must be at least 3 characters")
	ErrInvalidEmail       = errors.New("a valid email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles signup, login and identity lookups.
type AuthService struct {
	repo      *repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// validateSignup checks a signup request and returns the first violation found.
func validateSignup(req model.SignupRequest) error {
	if len(req.Name) < 3 {
		return ErrNameTooShort
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return ErrInvalidEmail
	}
	if req.Password == "" {
		return ErrPasswordRequired
	}
	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

// Signup creates a new user account and returns a session token.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (string, error) {
	if err := validateSignup(req); err != nil {
		return "", err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return "", err
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		AuthHash: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return "", ErrEmailTaken
		}
		return "", err
	}

	return crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
}

// Login authenticates a user and returns a session token. A missing user and
// a wrong password produce the same error so responses do not reveal which
// emails are registered.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	if req.Email == "" || req.Password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	match, err := crypto.VerifyPassword(req.Password, user.AuthHash)
	if err != nil {
		return "", err
	}
	if !match {
		return "", ErrInvalidCredentials
	}

	return crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
}

// GetUser retrieves a user by ID and returns safe user data.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	return model.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}
