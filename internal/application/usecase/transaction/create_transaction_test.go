package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/backend/internal/application/state"
	"github.com/wealthflow/backend/internal/domain/entity"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
	"github.com/wealthflow/backend/internal/domain/ledger"
	"github.com/wealthflow/backend/internal/integration/persistence"
)

func newTestStore(t *testing.T) *state.Store {
	t.Helper()
	store := state.NewStore(persistence.NewMemoryStateRepository(), ledger.NewEngine(), nil)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	return store
}

func TestCreateTransactionUseCase_Validation(t *testing.T) {
	valid := CreateTransactionInput{
		AccountID: "a1",
		Amount:    decimal.NewFromInt(5000),
		Type:      entity.TransactionTypeExpense,
	}

	tests := []struct {
		name     string
		mutate   func(in *CreateTransactionInput)
		wantCode domainerror.TransactionErrorCode
	}{
		{name: "missing account", mutate: func(in *CreateTransactionInput) { in.AccountID = " " }, wantCode: domainerror.ErrCodeMissingAccountID},
		{name: "zero amount", mutate: func(in *CreateTransactionInput) { in.Amount = decimal.Zero }, wantCode: domainerror.ErrCodeInvalidTransactionAmount},
		{name: "negative amount", mutate: func(in *CreateTransactionInput) { in.Amount = decimal.NewFromInt(-5) }, wantCode: domainerror.ErrCodeInvalidTransactionAmount},
		{name: "transfer type", mutate: func(in *CreateTransactionInput) { in.Type = entity.TransactionTypeTransfer }, wantCode: domainerror.ErrCodeInvalidTransactionType},
		{name: "unknown currency", mutate: func(in *CreateTransactionInput) { in.Currency = "EUR" }, wantCode: domainerror.ErrCodeTxnInvalidCurrency},
		{name: "merchant too long", mutate: func(in *CreateTransactionInput) { in.Merchant = strings.Repeat("m", MaxMerchantLength+1) }, wantCode: domainerror.ErrCodeMerchantTooLong},
		{name: "note too long", mutate: func(in *CreateTransactionInput) { in.Note = strings.Repeat("n", MaxNoteLength+1) }, wantCode: domainerror.ErrCodeNoteTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			uc := NewCreateTransactionUseCase(store)
			input := valid
			tt.mutate(&input)

			_, err := uc.Execute(context.Background(), input)

			var txErr *domainerror.TransactionError
			if !errors.As(err, &txErr) {
				t.Fatalf("expected TransactionError, got %v", err)
			}
			if txErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, txErr.Code)
			}

			snap, _ := store.Snapshot(context.Background())
			if len(snap.Transactions) != 0 {
				t.Error("expected no transaction to be recorded")
			}
		})
	}
}

func TestCreateTransactionUseCase_Expense(t *testing.T) {
	store := newTestStore(t)
	uc := NewCreateTransactionUseCase(store)

	output, err := uc.Execute(context.Background(), CreateTransactionInput{
		AccountID: "a1",
		Amount:    decimal.NewFromInt(5000),
		Type:      entity.TransactionTypeExpense,
		Category:  "Food & Dining",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.AccountBalance == nil || !output.AccountBalance.Equal(decimal.NewFromInt(145000)) {
		t.Errorf("expected balance 145000, got %v", output.AccountBalance)
	}
	if output.Transaction.Merchant != "Food & Dining" {
		t.Errorf("expected merchant to default to category, got %s", output.Transaction.Merchant)
	}
	if output.Transaction.Currency != entity.CurrencyARS {
		t.Errorf("expected account currency ARS, got %s", output.Transaction.Currency)
	}
	if output.Transaction.AccountName != "Santander Debit" {
		t.Errorf("expected account name Santander Debit, got %s", output.Transaction.AccountName)
	}
	if output.Transaction.Time.IsZero() {
		t.Error("expected a timestamp")
	}

	snap, _ := store.Snapshot(context.Background())
	if snap.Transactions[0].ID != output.Transaction.ID {
		t.Error("expected new transaction at history head")
	}
}

func TestCreateTransactionUseCase_Defaults(t *testing.T) {
	store := newTestStore(t)
	uc := NewCreateTransactionUseCase(store)

	output, err := uc.Execute(context.Background(), CreateTransactionInput{
		AccountID: "ghost",
		Amount:    decimal.NewFromInt(10),
		Type:      entity.TransactionTypeIncome,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Transaction.Category != entity.FallbackCategory {
		t.Errorf("expected category %s, got %s", entity.FallbackCategory, output.Transaction.Category)
	}
	if output.Transaction.Merchant != entity.FallbackCategory {
		t.Errorf("expected merchant %s, got %s", entity.FallbackCategory, output.Transaction.Merchant)
	}
	if output.AccountBalance != nil || output.Transaction.AccountFound {
		t.Error("expected unknown account not to resolve")
	}

	snap, _ := store.Snapshot(context.Background())
	if len(snap.Transactions) != 1 {
		t.Errorf("expected the transaction to be recorded, got %d", len(snap.Transactions))
	}
	if !snap.Accounts[0].Balance.Equal(decimal.NewFromInt(150000)) {
		t.Errorf("expected balances untouched, got %s", snap.Accounts[0].Balance)
	}
}
