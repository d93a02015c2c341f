package error

import "errors"

// Voice entry domain errors.
var (
	// ErrVoiceTextRequired is returned when the spoken text is empty.
	ErrVoiceTextRequired = errors.New("voice text is required")

	// ErrVoiceTextTooLong is returned when the spoken text exceeds the maximum length.
	ErrVoiceTextTooLong = errors.New("voice text too long")

	// ErrTranscriptionUnavailable is returned when no transcription service is configured.
	ErrTranscriptionUnavailable = errors.New("transcription service is not available")

	// ErrTranscriptionFailed is returned when the transcription service could not produce a result.
	ErrTranscriptionFailed = errors.New("couldn't process that. Try: 'Spent 500 ars on food'")

	// ErrNoAccountsForVoice is returned when there is no account to record the entry against.
	ErrNoAccountsForVoice = errors.New("no accounts available for voice entry")
)

// VoiceErrorCode defines error codes for voice entry errors.
// Format: VOI-XXYYYY where XX is category and YYYY is specific error.
type VoiceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeVoiceTextRequired  VoiceErrorCode = "VOI-010001"
	ErrCodeVoiceTextTooLong   VoiceErrorCode = "VOI-010002"
	ErrCodeNoAccountsForVoice VoiceErrorCode = "VOI-010003"

	// External service errors (02XXXX)
	ErrCodeTranscriptionUnavailable VoiceErrorCode = "VOI-020001"
	ErrCodeTranscriptionTimeout     VoiceErrorCode = "VOI-020002"
	ErrCodeTranscriptionRateLimited VoiceErrorCode = "VOI-020003"
	ErrCodeTranscriptionAuth        VoiceErrorCode = "VOI-020004"
	ErrCodeTranscriptionParse       VoiceErrorCode = "VOI-020005"
	ErrCodeTranscriptionFailed      VoiceErrorCode = "VOI-020006"

	// Internal errors (99XXXX)
	ErrCodeVoiceInternalError VoiceErrorCode = "VOI-990001"
)

// VoiceError represents a voice entry error with code and message.
type VoiceError struct {
	Code    VoiceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *VoiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *VoiceError) Unwrap() error {
	return e.Err
}

// NewVoiceError creates a new VoiceError with the given code and message.
func NewVoiceError(code VoiceErrorCode, message string, err error) *VoiceError {
	return &VoiceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
