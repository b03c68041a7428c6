package ports

import (
	"context"
	"time"

	"github.com/ticketly/ticketing-system/internal/core/domain"
)

// TokenClaims carries the verified contents of a bearer token.
type TokenClaims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// AuthService defines credential operations: registration, login, and
// stateless token verification.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	VerifyToken(tokenString string) (*TokenClaims, error)
}
