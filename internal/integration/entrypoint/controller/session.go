// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wealthflow/backend/internal/application/usecase/session"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
	"github.com/wealthflow/backend/internal/integration/entrypoint/dto"
)

// SessionController handles app-lock endpoints.
type SessionController struct {
	unlockUseCase *session.UnlockUseCase
}

// NewSessionController creates a new session controller instance.
func NewSessionController(unlockUseCase *session.UnlockUseCase) *SessionController {
	return &SessionController{
		unlockUseCase: unlockUseCase,
	}
}

// Unlock handles POST /session requests.
func (c *SessionController) Unlock(ctx *gin.Context) {
	var req dto.UnlockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodePasscodeRequired),
		})
		return
	}

	output, err := c.unlockUseCase.Execute(ctx.Request.Context(), session.UnlockInput{
		Passcode: req.Passcode,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SessionResponse{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
	})
}
