// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/backend/internal/domain/entity"
)

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Currency     string  `json:"currency"`
	Balance      string  `json:"balance"`
	LastDigits   string  `json:"last_digits,omitempty"`
	Color        string  `json:"color,omitempty"`
	Icon         string  `json:"icon,omitempty"`
	TargetAmount *string `json:"target_amount,omitempty"`
	Limit        *string `json:"limit,omitempty"`
	ClosingDay   *int    `json:"closing_day,omitempty"`
	DueDay       *int    `json:"due_day,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string `json:"id"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name,omitempty"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Category    string `json:"category"`
	Merchant    string `json:"merchant"`
	Time        string `json:"time"`
	Type        string `json:"type"`
	Note        string `json:"note,omitempty"`
}

// SavingGoalResponse represents a single saving goal in API responses.
type SavingGoalResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	CurrentAmount string  `json:"current_amount"`
	TargetAmount  string  `json:"target_amount"`
	Currency      string  `json:"currency"`
	Color         string  `json:"color,omitempty"`
	Icon          string  `json:"icon,omitempty"`
	Progress      float64 `json:"progress"`
}

// DebtResponse represents a single debt in API responses.
type DebtResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	TotalAmount     string  `json:"total_amount"`
	RemainingAmount string  `json:"remaining_amount"`
	Currency        string  `json:"currency"`
	Color           string  `json:"color,omitempty"`
	Icon            string  `json:"icon,omitempty"`
	PaidProgress    float64 `json:"paid_progress"`
}

// StateResponse represents the whole ledger.
type StateResponse struct {
	Accounts     []AccountResponse     `json:"accounts"`
	Transactions []TransactionResponse `json:"transactions"`
	Categories   []CategoryResponse    `json:"categories"`
	Savings      []SavingGoalResponse  `json:"savings"`
	Debts        []DebtResponse        `json:"debts"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(account entity.Account) AccountResponse {
	return AccountResponse{
		ID:           account.ID,
		Name:         account.Name,
		Type:         string(account.Type),
		Currency:     string(account.Currency),
		Balance:      account.Balance.String(),
		LastDigits:   account.LastDigits,
		Color:        account.Color,
		Icon:         account.Icon,
		TargetAmount: decimalString(account.TargetAmount),
		Limit:        decimalString(account.Limit),
		ClosingDay:   account.ClosingDay,
		DueDay:       account.DueDay,
	}
}

// ToAccountListResponse converts accounts to AccountResponse DTOs.
func ToAccountListResponse(accounts []entity.Account) []AccountResponse {
	responses := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		responses = append(responses, ToAccountResponse(a))
	}
	return responses
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(tx entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        tx.ID,
		AccountID: tx.AccountID,
		Amount:    tx.Amount.String(),
		Currency:  string(tx.Currency),
		Category:  tx.Category,
		Merchant:  tx.Merchant,
		Time:      tx.Time.UTC().Format(time.RFC3339),
		Type:      string(tx.Type),
		Note:      tx.Note,
	}
}

// ToSavingGoalResponse converts a domain SavingGoal entity to a SavingGoalResponse DTO.
func ToSavingGoalResponse(goal entity.SavingGoal) SavingGoalResponse {
	return SavingGoalResponse{
		ID:            goal.ID,
		Name:          goal.Name,
		CurrentAmount: goal.CurrentAmount.String(),
		TargetAmount:  goal.TargetAmount.String(),
		Currency:      string(goal.Currency),
		Color:         goal.Color,
		Icon:          goal.Icon,
		Progress:      goal.Progress(),
	}
}

// ToDebtResponse converts a domain Debt entity to a DebtResponse DTO.
func ToDebtResponse(debt entity.Debt) DebtResponse {
	return DebtResponse{
		ID:              debt.ID,
		Name:            debt.Name,
		TotalAmount:     debt.TotalAmount.String(),
		RemainingAmount: debt.RemainingAmount.String(),
		Currency:        string(debt.Currency),
		Color:           debt.Color,
		Icon:            debt.Icon,
		PaidProgress:    debt.PaidProgress(),
	}
}

// ToSavingGoalListResponse converts saving goals to SavingGoalResponse DTOs.
func ToSavingGoalListResponse(goals []entity.SavingGoal) []SavingGoalResponse {
	responses := make([]SavingGoalResponse, 0, len(goals))
	for _, g := range goals {
		responses = append(responses, ToSavingGoalResponse(g))
	}
	return responses
}

// ToDebtListResponse converts debts to DebtResponse DTOs.
func ToDebtListResponse(debts []entity.Debt) []DebtResponse {
	responses := make([]DebtResponse, 0, len(debts))
	for _, d := range debts {
		responses = append(responses, ToDebtResponse(d))
	}
	return responses
}

// ToStateResponse converts the whole bundle.
func ToStateResponse(bundle *entity.StateBundle) StateResponse {
	response := StateResponse{
		Accounts:     ToAccountListResponse(bundle.Accounts),
		Transactions: make([]TransactionResponse, 0, len(bundle.Transactions)),
		Categories:   make([]CategoryResponse, 0, len(bundle.Categories)),
		Savings:      ToSavingGoalListResponse(bundle.Savings),
		Debts:        ToDebtListResponse(bundle.Debts),
	}
	for _, tx := range bundle.Transactions {
		response.Transactions = append(response.Transactions, ToTransactionResponse(tx))
	}
	for i := range bundle.Categories {
		response.Categories = append(response.Categories, ToCategoryResponse(&bundle.Categories[i]))
	}
	return response
}

func decimalString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
