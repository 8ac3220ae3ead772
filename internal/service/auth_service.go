// internal/service/auth_service.go
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"tracker/internal/database"
	"tracker/internal/models"
	"tracker/internal/repository"
	"tracker/pkg/auth"
)

// AuthService owns user identity: registration and credential verification.
type AuthService struct {
	users           *repository.UserRepository
	passwordManager *auth.PasswordManager
}

func NewAuthService(users *repository.UserRepository) *AuthService {
	return &AuthService{
		users:           users,
		passwordManager: auth.NewPasswordManager(),
	}
}

// Register creates a new user account and returns its id. Passwords are
// stored as bcrypt hashes, never as given.
func (s *AuthService) Register(ctx context.Context, username, password, confirm string) (int64, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	confirm = strings.TrimSpace(confirm)

	if username == "" || password == "" || confirm == "" {
		return 0, &ValidationError{Msg: "Please fill out all fields."}
	}
	if err := s.passwordManager.ValidatePassword(password); err != nil {
		return 0, &ValidationError{Msg: fmt.Sprintf("Password must be at least %d characters.", s.passwordManager.MinLength())}
	}
	if password != confirm {
		return 0, &ValidationError{Msg: "Passwords do not match."}
	}

	// Fast path; the unique constraint below is the real authority.
	exists, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return 0, ErrDuplicateUsername
	}

	passwordHash, err := s.passwordManager.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.users.Create(ctx, username, passwordHash)
	if err != nil {
		if database.IsUniqueViolation(err) {
			// A concurrent registration won the race.
			return 0, ErrDuplicateUsername
		}
		return 0, fmt.Errorf("create user: %w", err)
	}

	return id, nil
}

// Authenticate verifies a username/password pair and returns the user.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if username == "" || password == "" {
		return nil, &ValidationError{Msg: "Please enter both username and password."}
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := s.passwordManager.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
