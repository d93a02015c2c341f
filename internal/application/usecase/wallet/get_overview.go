// Package wallet contains use cases for accounts, saving goals and debts.
package wallet

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/backend/internal/application/state"
	"github.com/wealthflow/backend/internal/domain/entity"
)

// CurrencyTotal is the sum of account balances in one currency.
type CurrencyTotal struct {
	Currency entity.Currency
	Balance  decimal.Decimal
	// Assets sums positive balances and Liabilities sums the absolute value of negative ones.
	Assets      decimal.Decimal
	Liabilities decimal.Decimal
}

// SavingProgress is a saving goal with its completion percentage.
type SavingProgress struct {
	Goal     entity.SavingGoal
	Progress float64
}

// DebtProgress is a debt with its paid-off percentage.
type DebtProgress struct {
	Debt         entity.Debt
	PaidProgress float64
}

// GetOverviewOutput represents the home and wallet summary.
type GetOverviewOutput struct {
	Totals        []CurrencyTotal
	BankAccounts  []entity.Account
	GoalAccounts  []entity.Account
	Savings       []SavingProgress
	Debts         []DebtProgress
	NegativeCount int
	Recent        []entity.Transaction
}

// RecentTransactionsLimit bounds the recent activity list in the overview.
const RecentTransactionsLimit = 5

// GetOverviewUseCase builds the read-only wallet summary.
type GetOverviewUseCase struct {
	store *state.Store
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(store *state.Store) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		store: store,
	}
}

// Execute computes totals per currency and progress for goals and debts.
func (uc *GetOverviewUseCase) Execute(ctx context.Context) (*GetOverviewOutput, error) {
	bundle, err := uc.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	output := &GetOverviewOutput{
		Totals:       make([]CurrencyTotal, 0, len(entity.SupportedCurrencies)),
		BankAccounts: []entity.Account{},
		GoalAccounts: []entity.Account{},
		Savings:      make([]SavingProgress, 0, len(bundle.Savings)),
		Debts:        make([]DebtProgress, 0, len(bundle.Debts)),
	}

	for _, currency := range entity.SupportedCurrencies {
		total := CurrencyTotal{
			Currency:    currency,
			Balance:     decimal.Zero,
			Assets:      decimal.Zero,
			Liabilities: decimal.Zero,
		}
		for _, a := range bundle.Accounts {
			if a.Currency != currency {
				continue
			}
			total.Balance = total.Balance.Add(a.Balance)
			if a.Balance.IsPositive() {
				total.Assets = total.Assets.Add(a.Balance)
			} else {
				total.Liabilities = total.Liabilities.Add(a.Balance.Abs())
			}
		}
		output.Totals = append(output.Totals, total)
	}

	for _, a := range bundle.Accounts {
		switch a.Type {
		case entity.AccountTypeSavings, entity.AccountTypeLoan:
			output.GoalAccounts = append(output.GoalAccounts, a)
		default:
			output.BankAccounts = append(output.BankAccounts, a)
		}
		if a.Balance.IsNegative() {
			output.NegativeCount++
		}
	}

	for _, s := range bundle.Savings {
		output.Savings = append(output.Savings, SavingProgress{Goal: s, Progress: s.Progress()})
	}
	for _, d := range bundle.Debts {
		output.Debts = append(output.Debts, DebtProgress{Debt: d, PaidProgress: d.PaidProgress()})
	}

	recent := bundle.Transactions
	if len(recent) > RecentTransactionsLimit {
		recent = recent[:RecentTransactionsLimit]
	}
	output.Recent = recent

	return output, nil
}
