// Package error defines domain-specific errors for the WealthFlow ledger.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrInvalidTransactionType is returned when the transaction type is not expense or income.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the transaction amount is not positive.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrMissingAccountID is returned when a transaction does not name an account.
	ErrMissingAccountID = errors.New("account id is required")

	// ErrMerchantTooLong is returned when the merchant text exceeds the maximum length.
	ErrMerchantTooLong = errors.New("merchant too long")

	// ErrNoteTooLong is returned when the transaction note exceeds the maximum length.
	ErrNoteTooLong = errors.New("note too long")

	// ErrInvalidCurrency is returned when the currency is not supported.
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrInvalidDateRange is returned when a period filter ends before it starts.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidPagination is returned when limit or offset are out of range.
	ErrInvalidPagination = errors.New("invalid pagination parameters")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010002"
	ErrCodeMissingAccountID         TransactionErrorCode = "TXN-010003"
	ErrCodeMerchantTooLong          TransactionErrorCode = "TXN-010004"
	ErrCodeNoteTooLong              TransactionErrorCode = "TXN-010005"
	ErrCodeTxnInvalidCurrency       TransactionErrorCode = "TXN-010006"
	ErrCodeInvalidPagination        TransactionErrorCode = "TXN-010007"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010008"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010009"

	// Internal errors (99XXXX)
	ErrCodeTransactionInternalError TransactionErrorCode = "TXN-990001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
