package voice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/backend/internal/application/adapter"
	"github.com/wealthflow/backend/internal/application/state"
	"github.com/wealthflow/backend/internal/application/usecase/transaction"
	"github.com/wealthflow/backend/internal/domain/entity"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
	"github.com/wealthflow/backend/internal/domain/ledger"
	"github.com/wealthflow/backend/internal/integration/persistence"
)

type fakeTranscriber struct {
	result    *adapter.TranscriptionResult
	err       error
	available bool
	calls     int
	request   *adapter.TranscriptionRequest
}

func (f *fakeTranscriber) Transcribe(_ context.Context, request *adapter.TranscriptionRequest) (*adapter.TranscriptionResult, error) {
	f.calls++
	f.request = request
	return f.result, f.err
}

func (f *fakeTranscriber) IsAvailable() bool {
	return f.available
}

func newUseCase(t *testing.T, transcriber adapter.TranscriptionService) (*ProcessVoiceEntryUseCase, *state.Store) {
	t.Helper()
	store := state.NewStore(persistence.NewMemoryStateRepository(), ledger.NewEngine(), nil)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	return NewProcessVoiceEntryUseCase(store, transcriber, transaction.NewCreateTransactionUseCase(store)), store
}

func TestProcessVoiceEntryUseCase_Draft(t *testing.T) {
	tests := []struct {
		name         string
		result       *adapter.TranscriptionResult
		wantAccount  string
		wantType     entity.TransactionType
		wantCategory string
		wantMerchant string
	}{
		{
			name:         "full result",
			result:       &adapter.TranscriptionResult{Amount: decimal.NewFromInt(500), Type: "expense", Category: "Food & Dining", AccountName: "cash", Merchant: "Pizza Place"},
			wantAccount:  "a2",
			wantType:     entity.TransactionTypeExpense,
			wantCategory: "Food & Dining",
			wantMerchant: "Pizza Place",
		},
		{
			name:         "merchant falls back to category",
			result:       &adapter.TranscriptionResult{Amount: decimal.NewFromInt(10), Type: "income", Category: "Salary"},
			wantAccount:  "a1",
			wantType:     entity.TransactionTypeIncome,
			wantCategory: "Salary",
			wantMerchant: "Salary",
		},
		{
			name:         "all fallbacks",
			result:       &adapter.TranscriptionResult{Amount: decimal.NewFromInt(10), Type: "something", AccountName: "nope"},
			wantAccount:  "a1",
			wantType:     entity.TransactionTypeExpense,
			wantCategory: entity.FallbackCategory,
			wantMerchant: DefaultVoiceMerchant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transcriber := &fakeTranscriber{result: tt.result, available: true}
			uc, store := newUseCase(t, transcriber)

			output, err := uc.Execute(context.Background(), ProcessVoiceEntryInput{Text: "spent 500 on pizza"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			draft := output.Draft
			if draft.AccountID != tt.wantAccount {
				t.Errorf("expected account %s, got %s", tt.wantAccount, draft.AccountID)
			}
			if draft.Type != tt.wantType {
				t.Errorf("expected type %s, got %s", tt.wantType, draft.Type)
			}
			if draft.Category != tt.wantCategory {
				t.Errorf("expected category %s, got %s", tt.wantCategory, draft.Category)
			}
			if draft.Merchant != tt.wantMerchant {
				t.Errorf("expected merchant %s, got %s", tt.wantMerchant, draft.Merchant)
			}
			if output.Applied != nil {
				t.Error("expected draft only without confirm")
			}

			snapshot, _ := store.Snapshot(context.Background())
			if len(snapshot.Transactions) != 0 {
				t.Errorf("expected no transactions, got %d", len(snapshot.Transactions))
			}
			if len(transcriber.request.AccountNames) != 3 || len(transcriber.request.CategoryNames) != 7 {
				t.Errorf("expected account and category names in request, got %+v", transcriber.request)
			}
		})
	}
}

func TestProcessVoiceEntryUseCase_Confirm(t *testing.T) {
	transcriber := &fakeTranscriber{
		result:    &adapter.TranscriptionResult{Amount: decimal.NewFromInt(500), Type: "expense", Category: "Food & Dining", AccountName: "Santander"},
		available: true,
	}
	uc, store := newUseCase(t, transcriber)

	output, err := uc.Execute(context.Background(), ProcessVoiceEntryInput{Text: "spent 500 ars on food", Confirm: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Applied == nil {
		t.Fatal("expected applied transaction")
	}
	if !output.Applied.AccountBalance.Equal(decimal.NewFromInt(149500)) {
		t.Errorf("expected balance 149500, got %s", output.Applied.AccountBalance)
	}

	snapshot, _ := store.Snapshot(context.Background())
	if len(snapshot.Transactions) != 1 || snapshot.Transactions[0].Merchant != "Food & Dining" {
		t.Errorf("expected one transaction with merchant Food & Dining, got %+v", snapshot.Transactions)
	}
}

func TestProcessVoiceEntryUseCase_Failures(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		transcriber *fakeTranscriber
		wantCode    domainerror.VoiceErrorCode
		wantCalls   int
	}{
		{name: "empty text", text: "  ", transcriber: &fakeTranscriber{available: true}, wantCode: domainerror.ErrCodeVoiceTextRequired},
		{name: "unavailable", text: "coffee 5", transcriber: &fakeTranscriber{}, wantCode: domainerror.ErrCodeTranscriptionUnavailable},
		{name: "zero amount", text: "coffee", transcriber: &fakeTranscriber{available: true, result: &adapter.TranscriptionResult{Amount: decimal.Zero}}, wantCode: domainerror.ErrCodeTranscriptionParse, wantCalls: 1},
		{name: "nil result", text: "coffee", transcriber: &fakeTranscriber{available: true}, wantCode: domainerror.ErrCodeTranscriptionParse, wantCalls: 1},
		{name: "rate limited", text: "coffee 5", transcriber: &fakeTranscriber{available: true, err: errors.New("googleapi: Error 429: quota")}, wantCode: domainerror.ErrCodeTranscriptionRateLimited, wantCalls: 1},
		{name: "timeout", text: "coffee 5", transcriber: &fakeTranscriber{available: true, err: context.DeadlineExceeded}, wantCode: domainerror.ErrCodeTranscriptionTimeout, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, store := newUseCase(t, tt.transcriber)

			_, err := uc.Execute(context.Background(), ProcessVoiceEntryInput{Text: tt.text, Confirm: true})

			var voiceErr *domainerror.VoiceError
			if !errors.As(err, &voiceErr) {
				t.Fatalf("expected VoiceError, got %v", err)
			}
			if voiceErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, voiceErr.Code)
			}
			if tt.transcriber.calls != tt.wantCalls {
				t.Errorf("expected %d calls, got %d", tt.wantCalls, tt.transcriber.calls)
			}

			snapshot, _ := store.Snapshot(context.Background())
			if len(snapshot.Transactions) != 0 {
				t.Errorf("expected no state change, got %d transactions", len(snapshot.Transactions))
			}
		})
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode domainerror.VoiceErrorCode
	}{
		{name: "context deadline exceeded", err: context.DeadlineExceeded, expectedCode: domainerror.ErrCodeTranscriptionTimeout},
		{name: "context canceled", err: context.Canceled, expectedCode: domainerror.ErrCodeTranscriptionTimeout},
		{name: "resource exhausted", err: errors.New("resource exhausted"), expectedCode: domainerror.ErrCodeTranscriptionRateLimited},
		{name: "403 forbidden", err: errors.New("403 forbidden"), expectedCode: domainerror.ErrCodeTranscriptionAuth},
		{name: "invalid api key", err: errors.New("invalid API key"), expectedCode: domainerror.ErrCodeTranscriptionAuth},
		{name: "connection refused", err: errors.New("dial tcp: connection refused"), expectedCode: domainerror.ErrCodeTranscriptionUnavailable},
		{name: "503", err: errors.New("HTTP 503"), expectedCode: domainerror.ErrCodeTranscriptionUnavailable},
		{name: "json", err: errors.New("failed to unmarshal response"), expectedCode: domainerror.ErrCodeTranscriptionParse},
		{name: "unknown", err: errors.New("something odd"), expectedCode: domainerror.ErrCodeTranscriptionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.err)
			if got.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, got.Code)
			}
			if got.Message == "" {
				t.Error("expected non-empty message")
			}
			if !errors.Is(got, tt.err) {
				t.Error("expected classified error to wrap the original")
			}
		})
	}
}
