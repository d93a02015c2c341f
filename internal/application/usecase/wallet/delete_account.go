// Package wallet contains use cases for accounts, saving goals and debts.
package wallet

import (
	"context"
	"log/slog"

	"github.com/wealthflow/backend/internal/application/state"
	"github.com/wealthflow/backend/internal/domain/entity"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
	"github.com/wealthflow/backend/internal/domain/ledger"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	AccountID string
}

// DeleteAccountOutput represents the output of account deletion.
type DeleteAccountOutput struct {
	Account entity.Account
	// RetainedTransactions counts history entries that still reference the deleted id.
	RetainedTransactions int
}

// DeleteAccountUseCase handles account deletion.
type DeleteAccountUseCase struct {
	store *state.Store
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(store *state.Store) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		store: store,
	}
}

// Execute removes the account. Its transactions are kept.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) (*DeleteAccountOutput, error) {
	output := &DeleteAccountOutput{}

	_, err := uc.store.Mutate(ctx, "delete_account", func(current *entity.StateBundle) (*entity.StateBundle, error) {
		account, ok := ledger.FindAccount(current, input.AccountID)
		if !ok {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFound,
			)
		}
		output.Account = account

		for _, tx := range current.Transactions {
			if tx.AccountID == account.ID {
				output.RetainedTransactions++
			}
		}

		return uc.store.Engine().DeleteAccount(current, account.ID), nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Account deleted", "account_id", output.Account.ID, "retained_transactions", output.RetainedTransactions)

	return output, nil
}
