package error

import "errors"

// Session domain errors for the optional app lock.
var (
	// ErrInvalidPasscode is returned when the supplied passcode does not match.
	ErrInvalidPasscode = errors.New("invalid passcode")

	// ErrPasscodeRequired is returned when the unlock request carries no passcode.
	ErrPasscodeRequired = errors.New("passcode is required")

	// ErrLockNotConfigured is returned when unlock is requested but no passcode is set.
	ErrLockNotConfigured = errors.New("app lock is not configured")

	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")
)

// SessionErrorCode defines error codes for session errors.
// Format: SES-XXYYYY where XX is category and YYYY is specific error.
type SessionErrorCode string

const (
	// Unlock errors (01XXXX)
	ErrCodePasscodeRequired  SessionErrorCode = "SES-010001"
	ErrCodeInvalidPasscode   SessionErrorCode = "SES-010002"
	ErrCodeLockNotConfigured SessionErrorCode = "SES-010003"
	ErrCodeRateLimited       SessionErrorCode = "SES-010004"

	// Token errors (02XXXX)
	ErrCodeInvalidToken SessionErrorCode = "SES-020001"
	ErrCodeExpiredToken SessionErrorCode = "SES-020002"
	ErrCodeMissingToken SessionErrorCode = "SES-020003"

	// Internal errors (99XXXX)
	ErrCodeSessionInternalError SessionErrorCode = "SES-990001"
)

// SessionError represents a session error with code and message.
type SessionError struct {
	Code    SessionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SessionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SessionError) Unwrap() error {
	return e.Err
}

// NewSessionError creates a new SessionError with the given code and message.
func NewSessionError(code SessionErrorCode, message string, err error) *SessionError {
	return &SessionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
