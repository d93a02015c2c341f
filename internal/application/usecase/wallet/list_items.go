// Package wallet contains use cases for accounts, saving goals and debts.
package wallet

import (
	"context"

	"github.com/wealthflow/backend/internal/application/state"
	"github.com/wealthflow/backend/internal/domain/entity"
)

// ListItemsOutput represents every wallet item.
type ListItemsOutput struct {
	Accounts []entity.Account
	Savings  []entity.SavingGoal
	Debts    []entity.Debt
}

// ListItemsUseCase lists accounts, saving goals and debts.
type ListItemsUseCase struct {
	store *state.Store
}

// NewListItemsUseCase creates a new ListItemsUseCase instance.
func NewListItemsUseCase(store *state.Store) *ListItemsUseCase {
	return &ListItemsUseCase{
		store: store,
	}
}

// Execute returns the wallet items in stored order.
func (uc *ListItemsUseCase) Execute(ctx context.Context) (*ListItemsOutput, error) {
	bundle, err := uc.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &ListItemsOutput{
		Accounts: bundle.Accounts,
		Savings:  bundle.Savings,
		Debts:    bundle.Debts,
	}, nil
}
