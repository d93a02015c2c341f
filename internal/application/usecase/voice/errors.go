// Package voice contains voice-entry use cases.
package voice

import (
	"context"
	"errors"
	"strings"

	domainerror "github.com/wealthflow/backend/internal/domain/error"
)

// errorMessages contains user-facing messages for each error code.
var errorMessages = map[domainerror.VoiceErrorCode]string{
	domainerror.ErrCodeTranscriptionUnavailable: "Voice entry is temporarily unavailable. Try again later.",
	domainerror.ErrCodeTranscriptionRateLimited: "Too many voice entries. Wait a minute and try again.",
	domainerror.ErrCodeTranscriptionAuth:        "Voice entry is misconfigured. Check the transcription API key.",
	domainerror.ErrCodeTranscriptionTimeout:     "Voice entry took too long. Try a shorter phrase.",
	domainerror.ErrCodeTranscriptionParse:       domainerror.ErrTranscriptionFailed.Error(),
	domainerror.ErrCodeTranscriptionFailed:      domainerror.ErrTranscriptionFailed.Error(),
}

// classifyError converts a transcription failure to a VoiceError with an
// appropriate code and user-facing message.
func classifyError(err error) *domainerror.VoiceError {
	code := classifyCode(err)
	return domainerror.NewVoiceError(code, errorMessages[code], err)
}

func classifyCode(err error) domainerror.VoiceErrorCode {
	errStr := strings.ToLower(err.Error())

	// Check for timeout/cancellation (context errors)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domainerror.ErrCodeTranscriptionTimeout
	}

	// Check for rate limiting
	if strings.Contains(errStr, "rate limit") || strings.Contains(errStr, "quota") ||
		strings.Contains(errStr, "429") || strings.Contains(errStr, "resource exhausted") {
		return domainerror.ErrCodeTranscriptionRateLimited
	}

	// Check for authentication errors
	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") ||
		strings.Contains(errStr, "invalid api key") || strings.Contains(errStr, "unauthorized") ||
		strings.Contains(errStr, "authentication") {
		return domainerror.ErrCodeTranscriptionAuth
	}

	// Check for network/connection errors
	if strings.Contains(errStr, "connection") || strings.Contains(errStr, "network") ||
		strings.Contains(errStr, "dial") || strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "unavailable") || strings.Contains(errStr, "503") {
		return domainerror.ErrCodeTranscriptionUnavailable
	}

	// Check for parse errors
	if strings.Contains(errStr, "parse") || strings.Contains(errStr, "json") ||
		strings.Contains(errStr, "unmarshal") || strings.Contains(errStr, "decode") {
		return domainerror.ErrCodeTranscriptionParse
	}

	return domainerror.ErrCodeTranscriptionFailed
}
