package persistence

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/backend/internal/domain/entity"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
	"github.com/wealthflow/backend/internal/domain/ledger"
)

func sampleBundle() *entity.StateBundle {
	b := entity.SeedBundle()
	limit := decimal.RequireFromString("250000.50")
	closing, due := 24, 3
	b.Accounts[2].Limit = &limit
	b.Accounts[2].ClosingDay = &closing
	b.Accounts[2].DueDay = &due
	b.Transactions = []entity.Transaction{
		{
			ID:        "t2",
			AccountID: "a1",
			Amount:    decimal.RequireFromString("1520.75"),
			Currency:  entity.CurrencyARS,
			Category:  "Food & Dining",
			Merchant:  "Coto",
			Time:      time.UnixMilli(1710498600123).UTC(),
			Type:      entity.TransactionTypeExpense,
			Note:      "weekly groceries",
		},
		{
			ID:        "t1",
			AccountID: "deleted-account",
			Amount:    decimal.NewFromInt(5000),
			Currency:  entity.CurrencyARS,
			Category:  entity.TransferCategory,
			Merchant:  "Transfer: Santander Debit -> Trip to Japan",
			Time:      time.UnixMilli(1710400000000).UTC(),
			Type:      entity.TransactionTypeTransfer,
		},
	}
	b.Debts = []entity.Debt{
		{ID: "d1", Name: "Car", TotalAmount: decimal.NewFromInt(8000), RemainingAmount: decimal.Zero, Currency: entity.CurrencyUSD, Color: "red", Icon: "directions_car"},
	}
	return b
}

func TestStateCodec_RoundTrip(t *testing.T) {
	original := sampleBundle()

	data, err := EncodeState(original)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}

	decoded, err := DecodeState(data)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	again, err := EncodeState(decoded)
	if err != nil {
		t.Fatalf("unexpected re-encode error: %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Errorf("expected identical blobs\nfirst:  %s\nsecond: %s", data, again)
	}

	if decoded.Counts() != original.Counts() {
		t.Errorf("expected counts %+v, got %+v", original.Counts(), decoded.Counts())
	}
	tx := decoded.Transactions[0]
	if !tx.Amount.Equal(decimal.RequireFromString("1520.75")) {
		t.Errorf("expected amount 1520.75, got %s", tx.Amount)
	}
	if !tx.Time.Equal(original.Transactions[0].Time) {
		t.Errorf("expected time %v, got %v", original.Transactions[0].Time, tx.Time)
	}
	if decoded.Accounts[2].Limit == nil || !decoded.Accounts[2].Limit.Equal(decimal.RequireFromString("250000.5")) {
		t.Errorf("expected credit limit to survive, got %v", decoded.Accounts[2].Limit)
	}
	if decoded.Accounts[0].TargetAmount != nil {
		t.Errorf("expected no target amount on debit account, got %v", decoded.Accounts[0].TargetAmount)
	}
	if decoded.Transactions[1].AccountID != "deleted-account" {
		t.Errorf("expected dangling account id to survive, got %s", decoded.Transactions[1].AccountID)
	}
}

func TestStateCodec_RoundTripEngineOutput(t *testing.T) {
	engine := ledger.NewEngine()
	bundle, transfer := engine.TransferFunds(entity.SeedBundle(), ledger.TransferRequest{
		SourceAccountID: "a1",
		TargetID:        "s1",
		TargetType:      ledger.TargetSaving,
		Amount:          decimal.NewFromInt(10),
	})
	if transfer == nil {
		t.Fatal("expected a transfer transaction")
	}
	bundle = engine.ApplyTransaction(bundle, entity.Transaction{
		AccountID: "a2",
		Amount:    decimal.RequireFromString("99.99"),
		Currency:  entity.CurrencyARS,
		Category:  "Food & Dining",
		Merchant:  "Kiosco",
		Type:      entity.TransactionTypeExpense,
	})

	data, err := EncodeState(bundle)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	decoded, err := DecodeState(data)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	if len(decoded.Transactions) != len(bundle.Transactions) {
		t.Fatalf("expected %d transactions, got %d", len(bundle.Transactions), len(decoded.Transactions))
	}
	for i, want := range bundle.Transactions {
		got := decoded.Transactions[i]
		if got.Time != want.Time {
			t.Errorf("transaction %d: expected time %#v, got %#v", i, want.Time, got.Time)
		}
		if got.ID != want.ID || got.AccountID != want.AccountID || got.Merchant != want.Merchant ||
			got.Category != want.Category || got.Type != want.Type || got.Currency != want.Currency {
			t.Errorf("transaction %d: expected %+v, got %+v", i, want, got)
		}
		if !got.Amount.Equal(want.Amount) {
			t.Errorf("transaction %d: expected amount %s, got %s", i, want.Amount, got.Amount)
		}
	}
	for i, want := range bundle.Accounts {
		if !decoded.Accounts[i].Balance.Equal(want.Balance) {
			t.Errorf("account %s: expected balance %s, got %s", want.ID, want.Balance, decoded.Accounts[i].Balance)
		}
	}
	if !decoded.Savings[0].CurrentAmount.Equal(bundle.Savings[0].CurrentAmount) {
		t.Errorf("expected saving at %s, got %s", bundle.Savings[0].CurrentAmount, decoded.Savings[0].CurrentAmount)
	}
}

func TestStateCodec_Layout(t *testing.T) {
	data, err := EncodeState(sampleBundle())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{`"accounts":`, `"transactions":`, `"categories":`, `"savings":`, `"debts":`, `"accountId":"a1"`, `"time":1710498600123`, `"balance":150000`, `"lastDigits":"4242"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("expected blob to contain %s", want)
		}
	}
}

func TestDecodeState_MissingCollections(t *testing.T) {
	bundle, err := DecodeState([]byte(`{"accounts":[{"id":"x","name":"Only","type":"Cash","currency":"ARS","balance":10,"color":"","icon":""}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if bundle.Categories != nil {
		t.Errorf("expected nil categories when key is absent, got %v", bundle.Categories)
	}
	if bundle.Transactions == nil || len(bundle.Transactions) != 0 {
		t.Errorf("expected empty transactions, got %v", bundle.Transactions)
	}

	bundle, err = DecodeState([]byte(`{"categories":[]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bundle.Categories == nil {
		t.Error("expected explicit empty categories to be kept")
	}
}

func TestDecodeState_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: ""},
		{name: "not json", data: "{accounts:"},
		{name: "wrong shape", data: `{"accounts":"nope"}`},
		{name: "bad number", data: `{"debts":[{"id":"d","totalAmount":"abc"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeState([]byte(tt.data))
			if !errors.Is(err, domainerror.ErrCorruptState) {
				t.Errorf("expected ErrCorruptState, got %v", err)
			}
		})
	}
}
