// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/wealthflow/backend/internal/application/adapter"
)

const (
	// bcryptCost is the cost factor for bcrypt hashing.
	bcryptCost = 12
	// MinPasscodeLength is the minimum accepted passcode length.
	MinPasscodeLength = 4
)

// passcodeService implements the adapter.PasscodeService interface.
type passcodeService struct {
	cost int
}

// NewPasscodeService creates a new passcode service instance.
func NewPasscodeService() adapter.PasscodeService {
	return &passcodeService{cost: bcryptCost}
}

// HashPasscode hashes a plain text passcode using bcrypt with cost 12.
func (s *passcodeService) HashPasscode(passcode string) (string, error) {
	if len(passcode) < MinPasscodeLength {
		return "", fmt.Errorf("passcode must be at least %d characters long", MinPasscodeLength)
	}
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(passcode), s.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPasscode compares a plain text passcode with a hashed passcode.
func (s *passcodeService) VerifyPasscode(hashedPasscode, passcode string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPasscode), []byte(passcode))
}
