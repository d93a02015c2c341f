// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/wealthflow/backend/internal/application/usecase/transfer"
)

// TransferRequest represents the request body for moving funds.
type TransferRequest struct {
	SourceAccountID string          `json:"source_account_id" binding:"required"`
	TargetID        string          `json:"target_id" binding:"required"`
	TargetType      string          `json:"target_type" binding:"required,oneof=account saving debt"`
	Amount          decimal.Decimal `json:"amount"`
}

// PayCardRequest represents the request body for paying a credit card in full.
type PayCardRequest struct {
	SourceAccountID string `json:"source_account_id" binding:"required"`
}

// TransferTargetResponse represents the destination after a transfer.
type TransferTargetResponse struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// TransferResponse represents the response for a transfer.
type TransferResponse struct {
	Transaction   TransactionResponse    `json:"transaction"`
	SourceBalance string                 `json:"source_balance"`
	Target        TransferTargetResponse `json:"target"`
}

// ToTransferResponse converts a TransferFundsOutput to a TransferResponse DTO.
func ToTransferResponse(output *transfer.TransferFundsOutput) TransferResponse {
	return TransferResponse{
		Transaction:   ToTransactionResponse(output.Transaction),
		SourceBalance: output.SourceBalance.String(),
		Target: TransferTargetResponse{
			ID:     output.Target.ID,
			Type:   string(output.Target.Type),
			Name:   output.Target.Name,
			Amount: output.Target.Amount.String(),
		},
	}
}
