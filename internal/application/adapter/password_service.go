// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasscodeService defines the interface for app-lock passcode hashing and verification.
type PasscodeService interface {
	// HashPasscode hashes a plain text passcode using bcrypt.
	HashPasscode(passcode string) (string, error)

	// VerifyPasscode compares a plain text passcode with a hashed one.
	VerifyPasscode(hashedPasscode, passcode string) error
}
