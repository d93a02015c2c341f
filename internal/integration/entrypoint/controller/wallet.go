// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wealthflow/backend/internal/application/usecase/transfer"
	"github.com/wealthflow/backend/internal/application/usecase/wallet"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
	"github.com/wealthflow/backend/internal/integration/entrypoint/dto"
)

// WalletController handles accounts, saving goals and debts.
type WalletController struct {
	overviewUseCase      *wallet.GetOverviewUseCase
	listUseCase          *wallet.ListItemsUseCase
	createUseCase        *wallet.CreateItemUseCase
	deleteAccountUseCase *wallet.DeleteAccountUseCase
	payCardUseCase       *transfer.PayCardUseCase
}

// NewWalletController creates a new wallet controller instance.
func NewWalletController(
	overviewUseCase *wallet.GetOverviewUseCase,
	listUseCase *wallet.ListItemsUseCase,
	createUseCase *wallet.CreateItemUseCase,
	deleteAccountUseCase *wallet.DeleteAccountUseCase,
	payCardUseCase *transfer.PayCardUseCase,
) *WalletController {
	return &WalletController{
		overviewUseCase:      overviewUseCase,
		listUseCase:          listUseCase,
		createUseCase:        createUseCase,
		deleteAccountUseCase: deleteAccountUseCase,
		payCardUseCase:       payCardUseCase,
	}
}

// Overview handles GET /overview requests.
func (c *WalletController) Overview(ctx *gin.Context) {
	output, err := c.overviewUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}

// ListAccounts handles GET /accounts requests.
func (c *WalletController) ListAccounts(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"accounts": dto.ToAccountListResponse(output.Accounts)})
}

// ListSavings handles GET /savings requests.
func (c *WalletController) ListSavings(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"savings": dto.ToSavingGoalListResponse(output.Savings)})
}

// ListDebts handles GET /debts requests.
func (c *WalletController) ListDebts(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"debts": dto.ToDebtListResponse(output.Debts)})
}

// CreateItem handles POST /items requests.
func (c *WalletController) CreateItem(ctx *gin.Context) {
	var req dto.CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingAccountField),
			Details: err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), req.ToItemDraft())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreateItemResponse(output))
}

// DeleteAccount handles DELETE /accounts/:id requests.
func (c *WalletController) DeleteAccount(ctx *gin.Context) {
	output, err := c.deleteAccountUseCase.Execute(ctx.Request.Context(), wallet.DeleteAccountInput{
		AccountID: ctx.Param("id"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteAccountResponse{
		Account:              dto.ToAccountResponse(output.Account),
		RetainedTransactions: output.RetainedTransactions,
	})
}

// PayCard handles POST /accounts/:id/pay requests.
func (c *WalletController) PayCard(ctx *gin.Context) {
	var req dto.PayCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTransferSource),
		})
		return
	}

	output, err := c.payCardUseCase.Execute(ctx.Request.Context(), transfer.PayCardInput{
		CardAccountID:   ctx.Param("id"),
		SourceAccountID: req.SourceAccountID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransferResponse(output))
}
