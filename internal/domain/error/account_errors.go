package error

import "errors"

// Wallet domain errors covering accounts, saving goals and debts.
var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrItemNameRequired is returned when a wallet item has no name.
	ErrItemNameRequired = errors.New("name is required")

	// ErrItemNameTooLong is returned when a wallet item name exceeds the maximum length.
	ErrItemNameTooLong = errors.New("name too long")

	// ErrInvalidAccountType is returned when the account type is unknown.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrInvalidItemKind is returned when the item kind is not account, saving or debt.
	ErrInvalidItemKind = errors.New("invalid item kind")

	// ErrInvalidItemAmount is returned when a balance, target or total is negative.
	ErrInvalidItemAmount = errors.New("invalid amount")

	// ErrInvalidBillingDay is returned when a closing or due day is outside 1..31.
	ErrInvalidBillingDay = errors.New("billing day must be between 1 and 31")

	// ErrInvalidLastDigits is returned when last digits are not exactly four digits.
	ErrInvalidLastDigits = errors.New("last digits must be four digits")
)

// AccountErrorCode defines error codes for wallet errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAccountNotFound     AccountErrorCode = "ACC-010001"
	ErrCodeItemNameRequired    AccountErrorCode = "ACC-010002"
	ErrCodeItemNameTooLong     AccountErrorCode = "ACC-010003"
	ErrCodeInvalidAccountType  AccountErrorCode = "ACC-010004"
	ErrCodeInvalidItemKind     AccountErrorCode = "ACC-010005"
	ErrCodeInvalidItemAmount   AccountErrorCode = "ACC-010006"
	ErrCodeInvalidBillingDay   AccountErrorCode = "ACC-010007"
	ErrCodeInvalidLastDigits   AccountErrorCode = "ACC-010008"
	ErrCodeAccInvalidCurrency  AccountErrorCode = "ACC-010009"
	ErrCodeMissingAccountField AccountErrorCode = "ACC-010010"

	// Internal errors (99XXXX)
	ErrCodeAccountInternalError AccountErrorCode = "ACC-990001"
)

// AccountError represents a wallet error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
