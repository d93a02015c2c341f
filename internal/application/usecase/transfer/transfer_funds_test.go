package transfer

import (
	"context"
	"errors"
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
	ctx := context.Background()
	if err := store.Load(ctx); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	_, err := store.Mutate(ctx, "seed_debt", func(b *entity.StateBundle) (*entity.StateBundle, error) {
		return store.Engine().AddDebt(b, entity.Debt{
			ID:              "d1",
			Name:            "Car Loan",
			TotalAmount:     decimal.NewFromInt(8000),
			RemainingAmount: decimal.NewFromInt(3000),
			Currency:        entity.CurrencyARS,
		}), nil
	})
	if err != nil {
		t.Fatalf("failed to seed debt: %v", err)
	}
	return store
}

func TestTransferFundsUseCase_Validation(t *testing.T) {
	tests := []struct {
		name     string
		input    TransferFundsInput
		wantCode domainerror.TransferErrorCode
	}{
		{name: "zero amount", input: TransferFundsInput{SourceAccountID: "a1", TargetID: "a2", TargetType: ledger.TargetAccount}, wantCode: domainerror.ErrCodeInvalidTransferAmount},
		{name: "missing source", input: TransferFundsInput{TargetID: "a2", TargetType: ledger.TargetAccount, Amount: decimal.NewFromInt(1)}, wantCode: domainerror.ErrCodeMissingTransferSource},
		{name: "missing target", input: TransferFundsInput{SourceAccountID: "a1", TargetType: ledger.TargetAccount, Amount: decimal.NewFromInt(1)}, wantCode: domainerror.ErrCodeMissingTransferTarget},
		{name: "bad target type", input: TransferFundsInput{SourceAccountID: "a1", TargetID: "a2", TargetType: "card", Amount: decimal.NewFromInt(1)}, wantCode: domainerror.ErrCodeInvalidTargetType},
		{name: "same account", input: TransferFundsInput{SourceAccountID: "a1", TargetID: "a1", TargetType: ledger.TargetAccount, Amount: decimal.NewFromInt(1)}, wantCode: domainerror.ErrCodeSameAccountTransfer},
		{name: "unknown source", input: TransferFundsInput{SourceAccountID: "zz", TargetID: "a2", TargetType: ledger.TargetAccount, Amount: decimal.NewFromInt(1)}, wantCode: domainerror.ErrCodeSourceAccountNotFound},
		{name: "unknown target", input: TransferFundsInput{SourceAccountID: "a1", TargetID: "zz", TargetType: ledger.TargetSaving, Amount: decimal.NewFromInt(1)}, wantCode: domainerror.ErrCodeTransferTargetNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			uc := NewTransferFundsUseCase(store)

			_, err := uc.Execute(context.Background(), tt.input)

			var trfErr *domainerror.TransferError
			if !errors.As(err, &trfErr) {
				t.Fatalf("expected TransferError, got %v", err)
			}
			if trfErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, trfErr.Code)
			}

			snap, _ := store.Snapshot(context.Background())
			if !snap.Accounts[0].Balance.Equal(decimal.NewFromInt(150000)) || len(snap.Transactions) != 0 {
				t.Error("expected committed state to be unchanged")
			}
		})
	}
}

func TestTransferFundsUseCase_Targets(t *testing.T) {
	tests := []struct {
		name       string
		input      TransferFundsInput
		wantSource int64
		wantTarget int64
		wantName   string
	}{
		{
			name:       "to saving goal past target",
			input:      TransferFundsInput{SourceAccountID: "a1", TargetID: "s1", TargetType: ledger.TargetSaving, Amount: decimal.NewFromInt(6000)},
			wantSource: 144000,
			wantTarget: 7200,
			wantName:   "Trip to Japan",
		},
		{
			name:       "to debt with overshoot",
			input:      TransferFundsInput{SourceAccountID: "a2", TargetID: "d1", TargetType: ledger.TargetDebt, Amount: decimal.NewFromInt(5000)},
			wantSource: 7000,
			wantTarget: 0,
			wantName:   "Car Loan",
		},
		{
			name:       "to account",
			input:      TransferFundsInput{SourceAccountID: "a1", TargetID: "a2", TargetType: ledger.TargetAccount, Amount: decimal.NewFromInt(3000)},
			wantSource: 147000,
			wantTarget: 15000,
			wantName:   "Cash Wallet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewTransferFundsUseCase(newTestStore(t))

			output, err := uc.Execute(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !output.SourceBalance.Equal(decimal.NewFromInt(tt.wantSource)) {
				t.Errorf("expected source %d, got %s", tt.wantSource, output.SourceBalance)
			}
			if !output.Target.Amount.Equal(decimal.NewFromInt(tt.wantTarget)) {
				t.Errorf("expected target %d, got %s", tt.wantTarget, output.Target.Amount)
			}
			if output.Target.Name != tt.wantName {
				t.Errorf("expected target name %s, got %s", tt.wantName, output.Target.Name)
			}
			if output.Transaction.Type != entity.TransactionTypeTransfer {
				t.Errorf("expected transfer transaction, got %s", output.Transaction.Type)
			}
		})
	}
}

func TestPayCardUseCase(t *testing.T) {
	store := newTestStore(t)
	uc := NewPayCardUseCase(store, NewTransferFundsUseCase(store))

	output, err := uc.Execute(context.Background(), PayCardInput{CardAccountID: "a3", SourceAccountID: "a1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Target.Amount.IsZero() {
		t.Errorf("expected card balance 0, got %s", output.Target.Amount)
	}
	if !output.SourceBalance.Equal(decimal.NewFromInt(105000)) {
		t.Errorf("expected source 105000, got %s", output.SourceBalance)
	}

	_, err = uc.Execute(context.Background(), PayCardInput{CardAccountID: "a3", SourceAccountID: "a1"})
	if !errors.Is(err, domainerror.ErrInvalidTransferAmount) {
		t.Errorf("expected settled card to be rejected, got %v", err)
	}

	_, err = uc.Execute(context.Background(), PayCardInput{CardAccountID: "a2", SourceAccountID: "a1"})
	if !errors.Is(err, domainerror.ErrTransferTargetNotFound) {
		t.Errorf("expected non-credit account to be rejected, got %v", err)
	}
}

func TestPaymentSources(t *testing.T) {
	sources := PaymentSources(entity.SeedBundle())

	if len(sources) != 2 {
		t.Fatalf("expected 2 payment sources, got %d", len(sources))
	}
	for _, s := range sources {
		if s.Type == entity.AccountTypeCredit {
			t.Errorf("expected credit account to be excluded, got %s", s.ID)
		}
	}
}
