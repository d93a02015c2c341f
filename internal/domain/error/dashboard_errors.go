// Package error defines domain-specific errors for the WealthFlow ledger.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidPeriod is returned when period is not WEEK, MONTH or YEAR.
	ErrInvalidPeriod = errors.New("period must be: WEEK, MONTH, or YEAR")

	// ErrInvalidMonth is returned when month is outside 1..12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidYear is returned when year is not a plausible calendar year.
	ErrInvalidYear = errors.New("invalid year")

	// ErrInvalidAnalyticsCurrency is returned when the currency filter is not supported.
	ErrInvalidAnalyticsCurrency = errors.New("currency must be: ARS or USD")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriod            DashboardErrorCode = "DSH-010001"
	ErrCodeInvalidMonth             DashboardErrorCode = "DSH-010002"
	ErrCodeInvalidYear              DashboardErrorCode = "DSH-010003"
	ErrCodeInvalidAnalyticsCurrency DashboardErrorCode = "DSH-010004"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
