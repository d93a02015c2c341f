// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	AccountID string          `json:"account_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type" binding:"required,oneof=expense income"`
	Category  string          `json:"category,omitempty"`
	Merchant  string          `json:"merchant,omitempty" binding:"omitempty,max=255"`
	Currency  string          `json:"currency,omitempty" binding:"omitempty,oneof=ARS USD"`
	// Time is RFC3339; empty means now.
	Time string `json:"time,omitempty"`
	Note string `json:"note,omitempty" binding:"omitempty,max=1000"`
}

// CreateTransactionResponse represents the response for transaction creation.
type CreateTransactionResponse struct {
	Transaction    TransactionResponse `json:"transaction"`
	AccountBalance *string             `json:"account_balance,omitempty"`
}

// PaginationResponse represents pagination information.
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TotalsResponse represents aggregated totals.
type TotalsResponse struct {
	IncomeTotal   string `json:"income_total"`
	ExpenseTotal  string `json:"expense_total"`
	TransferTotal string `json:"transfer_total"`
	NetTotal      string `json:"net_total"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationResponse    `json:"pagination"`
	Totals       TotalsResponse        `json:"totals"`
}

// ToTransactionOutputResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionOutputResponse(output *transaction.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:          output.ID,
		AccountID:   output.AccountID,
		AccountName: output.AccountName,
		Amount:      output.Amount.String(),
		Currency:    string(output.Currency),
		Category:    output.Category,
		Merchant:    output.Merchant,
		Time:        output.Time.UTC().Format(time.RFC3339),
		Type:        string(output.Type),
		Note:        output.Note,
	}
}

// ToCreateTransactionResponse converts a CreateTransactionOutput to a response DTO.
func ToCreateTransactionResponse(output *transaction.CreateTransactionOutput) CreateTransactionResponse {
	return CreateTransactionResponse{
		Transaction:    ToTransactionOutputResponse(output.Transaction),
		AccountBalance: decimalString(output.AccountBalance),
	}
}

// ToTransactionListResponse converts a ListTransactionsOutput to a TransactionListResponse DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, 0, len(output.Transactions))
	for _, tx := range output.Transactions {
		transactions = append(transactions, ToTransactionOutputResponse(tx))
	}

	return TransactionListResponse{
		Transactions: transactions,
		Pagination: PaginationResponse{
			Page:       output.Pagination.Page,
			Limit:      output.Pagination.Limit,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
		},
		Totals: TotalsResponse{
			IncomeTotal:   output.Totals.IncomeTotal.String(),
			ExpenseTotal:  output.Totals.ExpenseTotal.String(),
			TransferTotal: output.Totals.TransferTotal.String(),
			NetTotal:      output.Totals.NetTotal.String(),
		},
	}
}
