// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/backend/internal/application/state"
	"github.com/wealthflow/backend/internal/domain/entity"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
	"github.com/wealthflow/backend/internal/domain/ledger"
)

const (
	// MaxMerchantLength is the maximum allowed length for merchant text.
	MaxMerchantLength = 255
	// MaxNoteLength is the maximum allowed length for transaction notes.
	MaxNoteLength = 1000
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	AccountID string
	Amount    decimal.Decimal
	Type      entity.TransactionType
	Category  string
	Merchant  string
	Currency  entity.Currency
	Time      time.Time
	Note      string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
	// AccountBalance is the balance after the transaction, nil when the account did not resolve.
	AccountBalance *decimal.Decimal
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	store *state.Store
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(store *state.Store) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		store: store,
	}
}

// Execute validates the input and applies the transaction to the ledger.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = entity.FallbackCategory
	}
	merchant := strings.TrimSpace(input.Merchant)
	if merchant == "" {
		merchant = category
	}

	var applied entity.Transaction
	next, err := uc.store.Mutate(ctx, "create_transaction", func(current *entity.StateBundle) (*entity.StateBundle, error) {
		currency := input.Currency
		if currency == "" {
			currency = entity.CurrencyARS
			if account, ok := ledger.FindAccount(current, input.AccountID); ok {
				currency = account.Currency
			}
		}

		tx := entity.NewTransaction(input.AccountID, input.Amount, currency, category, merchant, input.Time, input.Type, strings.TrimSpace(input.Note))
		next := uc.store.Engine().ApplyTransaction(current, *tx)
		applied = next.Transactions[0]
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	output := &CreateTransactionOutput{}
	account, found := ledger.FindAccount(next, applied.AccountID)
	output.Transaction = toTransactionOutput(applied, account, found)
	if found {
		balance := account.Balance
		output.AccountBalance = &balance
	} else {
		slog.Warn("Transaction recorded against unknown account", "transaction_id", applied.ID, "account_id", applied.AccountID)
	}

	return output, nil
}

func validateCreateInput(input CreateTransactionInput) error {
	if strings.TrimSpace(input.AccountID) == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingAccountID,
			"account id is required",
			domainerror.ErrMissingAccountID,
		)
	}

	if !input.Amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if !isValidTransactionType(input.Type) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if input.Currency != "" && !input.Currency.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTxnInvalidCurrency,
			"currency must be 'ARS' or 'USD'",
			domainerror.ErrInvalidCurrency,
		)
	}

	if len(input.Merchant) > MaxMerchantLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMerchantTooLong,
			fmt.Sprintf("merchant must not exceed %d characters", MaxMerchantLength),
			domainerror.ErrMerchantTooLong,
		)
	}

	if len(input.Note) > MaxNoteLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNoteTooLong,
			fmt.Sprintf("note must not exceed %d characters", MaxNoteLength),
			domainerror.ErrNoteTooLong,
		)
	}

	return nil
}

// isValidTransactionType validates the transaction type.
func isValidTransactionType(transactionType entity.TransactionType) bool {
	return transactionType == entity.TransactionTypeExpense || transactionType == entity.TransactionTypeIncome
}
