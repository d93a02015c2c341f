package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	domainerror "github.com/wealthflow/backend/internal/domain/error"
)

func TestTokenService_RoundTrip(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)

	token, err := service.GenerateSessionToken(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.Token == "" {
		t.Fatal("expected token")
	}

	claims, err := service.ValidateSessionToken(context.Background(), token.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.SessionID == "" {
		t.Error("expected session id")
	}
	if !claims.ExpiresAt.Equal(token.ExpiresAt.Truncate(time.Second)) {
		t.Errorf("expected expiry %v, got %v", token.ExpiresAt, claims.ExpiresAt)
	}
}

func TestTokenService_Rejects(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)
	other := NewTokenService("other-secret", time.Hour)

	foreign, err := other.GenerateSessionToken(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expiredService := NewTokenService("test-secret", time.Hour).(*tokenService)
	expiredService.now = func() time.Time { return time.Now().UTC().Add(-2 * time.Hour) }
	expired, err := expiredService.GenerateSessionToken(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "garbage", token: "not-a-token", wantErr: domainerror.ErrInvalidToken},
		{name: "wrong secret", token: foreign.Token, wantErr: domainerror.ErrInvalidToken},
		{name: "expired", token: expired.Token, wantErr: domainerror.ErrExpiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ValidateSessionToken(context.Background(), tt.token)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPasscodeService(t *testing.T) {
	service := &passcodeService{cost: bcrypt.MinCost}

	hash, err := service.HashPasscode("2468")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := service.VerifyPasscode(hash, "2468"); err != nil {
		t.Errorf("expected passcode to verify, got %v", err)
	}
	if err := service.VerifyPasscode(hash, "1357"); err == nil {
		t.Error("expected mismatch error")
	}
	if _, err := service.HashPasscode("12"); err == nil {
		t.Error("expected error for short passcode")
	}
}
