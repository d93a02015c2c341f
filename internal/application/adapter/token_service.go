// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// SessionToken is a signed token returned after a successful unlock.
type SessionToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenClaims represents the claims contained in a session token.
type TokenClaims struct {
	SessionID string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for session token operations.
type TokenService interface {
	// GenerateSessionToken issues a new token for an unlocked session.
	GenerateSessionToken(ctx context.Context) (*SessionToken, error)

	// ValidateSessionToken validates a token and returns its claims.
	ValidateSessionToken(ctx context.Context, token string) (*TokenClaims, error)
}
