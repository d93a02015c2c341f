// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wealthflow/backend/internal/application/usecase/voice"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
	"github.com/wealthflow/backend/internal/integration/entrypoint/dto"
)

// VoiceController handles natural-language entry endpoints.
type VoiceController struct {
	processUseCase *voice.ProcessVoiceEntryUseCase
}

// NewVoiceController creates a new voice controller instance.
func NewVoiceController(processUseCase *voice.ProcessVoiceEntryUseCase) *VoiceController {
	return &VoiceController{
		processUseCase: processUseCase,
	}
}

// Process handles POST /voice requests.
func (c *VoiceController) Process(ctx *gin.Context) {
	var req dto.VoiceEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeVoiceTextRequired),
		})
		return
	}

	output, err := c.processUseCase.Execute(ctx.Request.Context(), voice.ProcessVoiceEntryInput{
		Text:    req.Text,
		Confirm: req.Confirm,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	status := http.StatusOK
	if output.Applied != nil {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.ToVoiceEntryResponse(output))
}
