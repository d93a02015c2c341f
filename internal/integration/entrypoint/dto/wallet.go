// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/wealthflow/backend/internal/application/usecase/wallet"
	"github.com/wealthflow/backend/internal/domain/entity"
)

// CreateItemRequest represents the request body for creating an account, saving goal or debt.
// Kind selects which of the remaining fields apply.
type CreateItemRequest struct {
	Kind     string `json:"kind" binding:"required,oneof=account saving debt"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Currency string `json:"currency,omitempty" binding:"omitempty,oneof=ARS USD"`
	Color    string `json:"color,omitempty"`
	Icon     string `json:"icon,omitempty"`

	// account
	Type         string           `json:"type,omitempty"`
	Balance      decimal.Decimal  `json:"balance"`
	LastDigits   string           `json:"last_digits,omitempty"`
	TargetAmount *decimal.Decimal `json:"target_amount,omitempty"`
	Limit        *decimal.Decimal `json:"limit,omitempty"`
	ClosingDay   *int             `json:"closing_day,omitempty"`
	DueDay       *int             `json:"due_day,omitempty"`

	// saving
	CurrentAmount decimal.Decimal `json:"current_amount"`

	// debt
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// ToItemDraft converts the request to the matching draft variant.
func (r CreateItemRequest) ToItemDraft() wallet.ItemDraft {
	currency := entity.Currency(r.Currency)

	switch wallet.ItemKind(r.Kind) {
	case wallet.ItemKindSaving:
		target := decimal.Zero
		if r.TargetAmount != nil {
			target = *r.TargetAmount
		}
		return wallet.SavingDraft{
			Name:          r.Name,
			Currency:      currency,
			TargetAmount:  target,
			CurrentAmount: r.CurrentAmount,
			Color:         r.Color,
			Icon:          r.Icon,
		}
	case wallet.ItemKindDebt:
		return wallet.DebtDraft{
			Name:        r.Name,
			Currency:    currency,
			TotalAmount: r.TotalAmount,
			Color:       r.Color,
			Icon:        r.Icon,
		}
	default:
		return wallet.AccountDraft{
			Name:         r.Name,
			Type:         entity.AccountType(r.Type),
			Currency:     currency,
			Balance:      r.Balance,
			LastDigits:   r.LastDigits,
			Color:        r.Color,
			Icon:         r.Icon,
			TargetAmount: r.TargetAmount,
			Limit:        r.Limit,
			ClosingDay:   r.ClosingDay,
			DueDay:       r.DueDay,
		}
	}
}

// CreateItemResponse represents the response for item creation. Exactly one
// of Account, Saving and Debt is set.
type CreateItemResponse struct {
	Kind    string              `json:"kind"`
	Account *AccountResponse    `json:"account,omitempty"`
	Saving  *SavingGoalResponse `json:"saving,omitempty"`
	Debt    *DebtResponse       `json:"debt,omitempty"`
}

// ToCreateItemResponse converts a CreateItemOutput to a response DTO.
func ToCreateItemResponse(output *wallet.CreateItemOutput) CreateItemResponse {
	response := CreateItemResponse{Kind: string(output.Kind)}
	switch {
	case output.Account != nil:
		account := ToAccountResponse(*output.Account)
		response.Account = &account
	case output.Saving != nil:
		saving := ToSavingGoalResponse(*output.Saving)
		response.Saving = &saving
	case output.Debt != nil:
		debt := ToDebtResponse(*output.Debt)
		response.Debt = &debt
	}
	return response
}

// DeleteAccountResponse represents the response for deleting an account.
type DeleteAccountResponse struct {
	Account              AccountResponse `json:"account"`
	RetainedTransactions int             `json:"retained_transactions"`
}

// CurrencyTotalResponse represents the totals for one currency.
type CurrencyTotalResponse struct {
	Currency    string `json:"currency"`
	Balance     string `json:"balance"`
	Assets      string `json:"assets"`
	Liabilities string `json:"liabilities"`
}

// OverviewResponse represents the wallet overview.
type OverviewResponse struct {
	Totals        []CurrencyTotalResponse `json:"totals"`
	BankAccounts  []AccountResponse       `json:"bank_accounts"`
	GoalAccounts  []AccountResponse       `json:"goal_accounts"`
	Savings       []SavingGoalResponse    `json:"savings"`
	Debts         []DebtResponse          `json:"debts"`
	NegativeCount int                     `json:"negative_count"`
	Recent        []TransactionResponse   `json:"recent"`
}

// ToOverviewResponse converts a GetOverviewOutput to an OverviewResponse DTO.
func ToOverviewResponse(output *wallet.GetOverviewOutput) OverviewResponse {
	response := OverviewResponse{
		Totals:        make([]CurrencyTotalResponse, 0, len(output.Totals)),
		BankAccounts:  ToAccountListResponse(output.BankAccounts),
		GoalAccounts:  ToAccountListResponse(output.GoalAccounts),
		Savings:       make([]SavingGoalResponse, 0, len(output.Savings)),
		Debts:         make([]DebtResponse, 0, len(output.Debts)),
		NegativeCount: output.NegativeCount,
		Recent:        make([]TransactionResponse, 0, len(output.Recent)),
	}

	for _, t := range output.Totals {
		response.Totals = append(response.Totals, CurrencyTotalResponse{
			Currency:    string(t.Currency),
			Balance:     t.Balance.String(),
			Assets:      t.Assets.String(),
			Liabilities: t.Liabilities.String(),
		})
	}
	for _, s := range output.Savings {
		saving := ToSavingGoalResponse(s.Goal)
		saving.Progress = s.Progress
		response.Savings = append(response.Savings, saving)
	}
	for _, d := range output.Debts {
		debt := ToDebtResponse(d.Debt)
		debt.PaidProgress = d.PaidProgress
		response.Debts = append(response.Debts, debt)
	}
	for _, tx := range output.Recent {
		response.Recent = append(response.Recent, ToTransactionResponse(tx))
	}

	return response
}
