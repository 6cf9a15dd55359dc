// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"quizapp/internal/domain"
)

// ErrEmptyCredentials indicates that a username or password was empty.
var ErrEmptyCredentials = errors.New("username and password must not be empty")

// AuthService registers and authenticates quiz players.
type AuthService struct {
	users  domain.UserRepository
	hasher PasswordHasher
	log    *slog.Logger
}

// NewAuthService creates a new authentication service. A nil hasher selects
// SHA256Hasher and a nil logger selects slog.Default().
func NewAuthService(users domain.UserRepository, hasher PasswordHasher, logger *slog.Logger) *AuthService {
	if hasher == nil {
		hasher = SHA256Hasher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		users:  users,
		hasher: hasher,
		log:    logger,
	}
}

// Register creates a user. It returns false, nil when the username is taken.
func (s *AuthService) Register(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, ErrEmptyCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.users.CreateUser(ctx, username, hash); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			s.log.Info("registration rejected", "username", username, "reason", "duplicate")
			return false, nil
		}
		return false, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", "username", username)
	return true, nil
}

// Login reports whether username and password match a registered user.
func (s *AuthService) Login(ctx context.Context, username, password string) (bool, error) {
	user, err := s.lookup(ctx, username, password)
	if err != nil {
		return false, err
	}
	if user == nil {
		s.log.Info("login failed", "username", username)
		return false, nil
	}
	s.log.Info("login succeeded", "username", username)
	return true, nil
}

func (s *AuthService) lookup(ctx context.Context, username, password string) (*domain.User, error) {
	if d, ok := s.hasher.(Digester); ok {
		user, err := s.users.FindUser(ctx, username, d.Digest(password))
		if err != nil {
			return nil, fmt.Errorf("find user: %w", err)
		}
		return user, nil
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, nil
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if !errors.Is(err, ErrPasswordMismatch) {
			// Usually a digest written by a different hasher.
			s.log.Warn("stored password hash unusable", "username", username, "error", err)
		}
		return nil, nil
	}
	return user, nil
}
