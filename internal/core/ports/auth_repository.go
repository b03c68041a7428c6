package ports

import (
	"context"

	"github.com/ticketly/ticketing-system/internal/core/domain"
)

// AuthRepository defines the interface for principal persistence.
type AuthRepository interface {
	// Create inserts a new user; returns domain.ErrUserExists when the
	// username is already taken. The existing digest is never overwritten.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByUsername returns domain.ErrUserNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
