package error

import "errors"

// Transfer domain errors.
var (
	// ErrInvalidTransferAmount is returned when the transfer amount is not positive.
	ErrInvalidTransferAmount = errors.New("invalid transfer amount")

	// ErrMissingTransferSource is returned when no source account was selected.
	ErrMissingTransferSource = errors.New("source account is required")

	// ErrMissingTransferTarget is returned when no destination was selected.
	ErrMissingTransferTarget = errors.New("transfer target is required")

	// ErrInvalidTargetType is returned when the target type is not account, saving or debt.
	ErrInvalidTargetType = errors.New("invalid transfer target type")

	// ErrSameAccountTransfer is returned when source and target are the same account.
	ErrSameAccountTransfer = errors.New("source and target accounts must differ")

	// ErrSourceAccountNotFound is returned when the source account does not exist.
	ErrSourceAccountNotFound = errors.New("source account not found")

	// ErrTransferTargetNotFound is returned when the destination does not exist.
	ErrTransferTargetNotFound = errors.New("transfer target not found")
)

// TransferErrorCode defines error codes for transfer errors.
// Format: TRF-XXYYYY where XX is category and YYYY is specific error.
type TransferErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransferAmount  TransferErrorCode = "TRF-010001"
	ErrCodeMissingTransferSource  TransferErrorCode = "TRF-010002"
	ErrCodeMissingTransferTarget  TransferErrorCode = "TRF-010003"
	ErrCodeInvalidTargetType      TransferErrorCode = "TRF-010004"
	ErrCodeSameAccountTransfer    TransferErrorCode = "TRF-010005"
	ErrCodeSourceAccountNotFound  TransferErrorCode = "TRF-010006"
	ErrCodeTransferTargetNotFound TransferErrorCode = "TRF-010007"

	// Internal errors (99XXXX)
	ErrCodeTransferInternalError TransferErrorCode = "TRF-990001"
)

// TransferError represents a transfer error with code and message.
type TransferError struct {
	Code    TransferErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransferError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransferError) Unwrap() error {
	return e.Err
}

// NewTransferError creates a new TransferError with the given code and message.
func NewTransferError(code TransferErrorCode, message string, err error) *TransferError {
	return &TransferError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
