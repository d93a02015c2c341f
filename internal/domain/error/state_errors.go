package error

import "errors"

// State persistence errors.
var (
	// ErrStateNotFound is returned when no state blob has been persisted yet.
	ErrStateNotFound = errors.New("state not found")

	// ErrCorruptState is returned when a persisted state blob cannot be decoded.
	ErrCorruptState = errors.New("corrupt state")
)

// StateErrorCode defines error codes for state persistence errors.
// Format: STA-XXYYYY where XX is category and YYYY is specific error.
type StateErrorCode string

const (
	// Storage errors (01XXXX)
	ErrCodeStateLoadFailed StateErrorCode = "STA-010001"
	ErrCodeStateSaveFailed StateErrorCode = "STA-010002"
	ErrCodeCorruptState    StateErrorCode = "STA-010003"
)

// StateError represents a persistence error with code and message.
type StateError struct {
	Code    StateErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StateError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StateError) Unwrap() error {
	return e.Err
}

// NewStateError creates a new StateError with the given code and message.
func NewStateError(code StateErrorCode, message string, err error) *StateError {
	return &StateError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
