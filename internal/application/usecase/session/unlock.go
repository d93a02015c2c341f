// Package session contains app-lock use cases.
package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wealthflow/backend/internal/application/adapter"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
)

// UnlockInput represents the input for unlocking the app.
type UnlockInput struct {
	Passcode string
}

// UnlockOutput represents the output of a successful unlock.
type UnlockOutput struct {
	Token     string
	ExpiresAt time.Time
}

// UnlockUseCase exchanges the app passcode for a session token.
type UnlockUseCase struct {
	passcodeHash    string
	passcodeService adapter.PasscodeService
	tokenService    adapter.TokenService
}

// NewUnlockUseCase creates a new UnlockUseCase instance.
// An empty passcodeHash means the app lock is disabled.
func NewUnlockUseCase(
	passcodeHash string,
	passcodeService adapter.PasscodeService,
	tokenService adapter.TokenService,
) *UnlockUseCase {
	return &UnlockUseCase{
		passcodeHash:    passcodeHash,
		passcodeService: passcodeService,
		tokenService:    tokenService,
	}
}

// Enabled reports whether an app passcode is configured.
func (uc *UnlockUseCase) Enabled() bool {
	return uc.passcodeHash != ""
}

// Execute verifies the passcode and issues a session token.
func (uc *UnlockUseCase) Execute(ctx context.Context, input UnlockInput) (*UnlockOutput, error) {
	if !uc.Enabled() {
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodeLockNotConfigured,
			"app lock is not configured",
			domainerror.ErrLockNotConfigured,
		)
	}

	if strings.TrimSpace(input.Passcode) == "" {
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodePasscodeRequired,
			"passcode is required",
			domainerror.ErrPasscodeRequired,
		)
	}

	if err := uc.passcodeService.VerifyPasscode(uc.passcodeHash, input.Passcode); err != nil {
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodeInvalidPasscode,
			"invalid passcode",
			domainerror.ErrInvalidPasscode,
		)
	}

	token, err := uc.tokenService.GenerateSessionToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &UnlockOutput{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
	}, nil
}
