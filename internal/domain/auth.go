// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"errors"
)

// ErrDuplicateUsername is returned by UserRepository.CreateUser when the
// username is already registered.
var ErrDuplicateUsername = errors.New("username already exists")

// User represents a registered quiz player.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}

// UserRepository defines the port for user persistence operations.
//
// Lookups return (nil, nil) when no row matches.
type UserRepository interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*User, error)
	FindUser(ctx context.Context, username, passwordHash string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	CountUsers(ctx context.Context) (int, error)
}
