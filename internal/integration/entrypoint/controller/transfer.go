// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wealthflow/backend/internal/application/usecase/transfer"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
	"github.com/wealthflow/backend/internal/domain/ledger"
	"github.com/wealthflow/backend/internal/integration/entrypoint/dto"
)

// TransferController handles transfer endpoints.
type TransferController struct {
	transferUseCase *transfer.TransferFundsUseCase
}

// NewTransferController creates a new transfer controller instance.
func NewTransferController(transferUseCase *transfer.TransferFundsUseCase) *TransferController {
	return &TransferController{
		transferUseCase: transferUseCase,
	}
}

// Create handles POST /transfers requests.
func (c *TransferController) Create(ctx *gin.Context) {
	var req dto.TransferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidTargetType),
			Details: err.Error(),
		})
		return
	}

	output, err := c.transferUseCase.Execute(ctx.Request.Context(), transfer.TransferFundsInput{
		SourceAccountID: req.SourceAccountID,
		TargetID:        req.TargetID,
		TargetType:      ledger.TargetType(req.TargetType),
		Amount:          req.Amount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransferResponse(output))
}
