// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/wealthflow/backend/internal/domain/error"
	"github.com/wealthflow/backend/internal/integration/entrypoint/dto"
)

// handleError maps coded domain errors to HTTP responses.
func handleError(ctx *gin.Context, err error) {
	var (
		txnErr      *domainerror.TransactionError
		transferErr *domainerror.TransferError
		accountErr  *domainerror.AccountError
		categoryErr *domainerror.CategoryError
		dashErr     *domainerror.DashboardError
		voiceErr    *domainerror.VoiceError
		sessionErr  *domainerror.SessionError
		stateErr    *domainerror.StateError
	)

	switch {
	case errors.As(err, &txnErr):
		respond(ctx, getStatusCodeForTransactionError(txnErr.Code), txnErr.Message, string(txnErr.Code))
	case errors.As(err, &transferErr):
		respond(ctx, getStatusCodeForTransferError(transferErr.Code), transferErr.Message, string(transferErr.Code))
	case errors.As(err, &accountErr):
		respond(ctx, getStatusCodeForAccountError(accountErr.Code), accountErr.Message, string(accountErr.Code))
	case errors.As(err, &categoryErr):
		respond(ctx, getStatusCodeForCategoryError(categoryErr.Code), categoryErr.Message, string(categoryErr.Code))
	case errors.As(err, &dashErr):
		respond(ctx, getStatusCodeForDashboardError(dashErr.Code), dashErr.Message, string(dashErr.Code))
	case errors.As(err, &voiceErr):
		respond(ctx, getStatusCodeForVoiceError(voiceErr.Code), voiceErr.Message, string(voiceErr.Code))
	case errors.As(err, &sessionErr):
		respond(ctx, getStatusCodeForSessionError(sessionErr.Code), sessionErr.Message, string(sessionErr.Code))
	case errors.As(err, &stateErr):
		slog.Error("State storage failed", "error", err)
		respond(ctx, http.StatusInternalServerError, stateErr.Message, string(stateErr.Code))
	default:
		slog.Error("Unhandled error", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

func respond(ctx *gin.Context, status int, message, code string) {
	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// getStatusCodeForTransferError maps transfer error codes to HTTP status codes.
func getStatusCodeForTransferError(code domainerror.TransferErrorCode) int {
	switch code {
	case domainerror.ErrCodeSourceAccountNotFound,
		domainerror.ErrCodeTransferTargetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeTransferInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// getStatusCodeForAccountError maps wallet error codes to HTTP status codes.
func getStatusCodeForAccountError(code domainerror.AccountErrorCode) int {
	switch code {
	case domainerror.ErrCodeAccountNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAccountInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// getStatusCodeForCategoryError maps category error codes to HTTP status codes.
func getStatusCodeForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryNameExists:
		return http.StatusConflict
	case domainerror.ErrCodeCategoryInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// getStatusCodeForDashboardError maps dashboard error codes to HTTP status codes.
func getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeDashboardInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// getStatusCodeForVoiceError maps voice error codes to HTTP status codes.
func getStatusCodeForVoiceError(code domainerror.VoiceErrorCode) int {
	switch code {
	case domainerror.ErrCodeVoiceTextRequired,
		domainerror.ErrCodeVoiceTextTooLong:
		return http.StatusBadRequest
	case domainerror.ErrCodeNoAccountsForVoice:
		return http.StatusConflict
	case domainerror.ErrCodeTranscriptionUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeTranscriptionRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeTranscriptionTimeout:
		return http.StatusGatewayTimeout
	case domainerror.ErrCodeVoiceInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}

// getStatusCodeForSessionError maps session error codes to HTTP status codes.
func getStatusCodeForSessionError(code domainerror.SessionErrorCode) int {
	switch code {
	case domainerror.ErrCodePasscodeRequired:
		return http.StatusBadRequest
	case domainerror.ErrCodeLockNotConfigured:
		return http.StatusNotFound
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeSessionInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusUnauthorized
	}
}
