// Package dto defines data transfer objects for API requests and responses.
package dto

import "time"

// UnlockRequest represents the request body for unlocking the app.
type UnlockRequest struct {
	Passcode string `json:"passcode" binding:"required"`
}

// SessionResponse represents an issued session token.
type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
