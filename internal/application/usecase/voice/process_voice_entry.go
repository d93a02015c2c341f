// Package voice contains voice-entry use cases.
package voice

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/backend/internal/application/adapter"
	"github.com/wealthflow/backend/internal/application/state"
	"github.com/wealthflow/backend/internal/application/usecase/transaction"
	"github.com/wealthflow/backend/internal/domain/entity"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
	"github.com/wealthflow/backend/internal/domain/ledger"
)

const (
	// MaxVoiceTextLength is the maximum allowed length for spoken text.
	MaxVoiceTextLength = 500
	// DefaultVoiceMerchant is used when the model returns neither merchant nor category.
	DefaultVoiceMerchant = "Voice Entry"
)

// ProcessVoiceEntryInput represents the input for a voice entry.
type ProcessVoiceEntryInput struct {
	Text string
	// Confirm applies the draft to the ledger; otherwise only the draft is returned.
	Confirm bool
}

// VoiceDraft is the transaction the text was mapped to.
type VoiceDraft struct {
	AccountID   string
	AccountName string
	Amount      decimal.Decimal
	Currency    entity.Currency
	Type        entity.TransactionType
	Category    string
	Merchant    string
}

// ProcessVoiceEntryOutput represents the output of a voice entry.
type ProcessVoiceEntryOutput struct {
	Draft   VoiceDraft
	Applied *transaction.CreateTransactionOutput
}

// ProcessVoiceEntryUseCase handles natural-language transaction entry.
type ProcessVoiceEntryUseCase struct {
	store         *state.Store
	transcriber   adapter.TranscriptionService
	createUseCase *transaction.CreateTransactionUseCase
}

// NewProcessVoiceEntryUseCase creates a new ProcessVoiceEntryUseCase instance.
func NewProcessVoiceEntryUseCase(
	store *state.Store,
	transcriber adapter.TranscriptionService,
	createUseCase *transaction.CreateTransactionUseCase,
) *ProcessVoiceEntryUseCase {
	return &ProcessVoiceEntryUseCase{
		store:         store,
		transcriber:   transcriber,
		createUseCase: createUseCase,
	}
}

// Execute transcribes the text into a draft transaction and applies it when confirmed.
// A failed transcription never changes state and is not retried.
func (uc *ProcessVoiceEntryUseCase) Execute(ctx context.Context, input ProcessVoiceEntryInput) (*ProcessVoiceEntryOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, domainerror.NewVoiceError(
			domainerror.ErrCodeVoiceTextRequired,
			"text is required",
			domainerror.ErrVoiceTextRequired,
		)
	}
	if utf8.RuneCountInString(text) > MaxVoiceTextLength {
		return nil, domainerror.NewVoiceError(
			domainerror.ErrCodeVoiceTextTooLong,
			"text must be 500 characters or less",
			domainerror.ErrVoiceTextTooLong,
		)
	}

	if uc.transcriber == nil || !uc.transcriber.IsAvailable() {
		return nil, domainerror.NewVoiceError(
			domainerror.ErrCodeTranscriptionUnavailable,
			errorMessages[domainerror.ErrCodeTranscriptionUnavailable],
			domainerror.ErrTranscriptionUnavailable,
		)
	}

	bundle, err := uc.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if len(bundle.Accounts) == 0 {
		return nil, domainerror.NewVoiceError(
			domainerror.ErrCodeNoAccountsForVoice,
			"add an account before using voice entry",
			domainerror.ErrNoAccountsForVoice,
		)
	}

	request := &adapter.TranscriptionRequest{
		Text:          text,
		AccountNames:  make([]string, 0, len(bundle.Accounts)),
		CategoryNames: make([]string, 0, len(bundle.Categories)),
	}
	for _, a := range bundle.Accounts {
		request.AccountNames = append(request.AccountNames, a.Name)
	}
	for _, c := range bundle.Categories {
		request.CategoryNames = append(request.CategoryNames, c.Name)
	}

	result, err := uc.transcriber.Transcribe(ctx, request)
	if err != nil {
		slog.Warn("Voice transcription failed", "error", err)
		return nil, classifyError(err)
	}
	if result == nil || !result.Amount.IsPositive() {
		return nil, domainerror.NewVoiceError(
			domainerror.ErrCodeTranscriptionParse,
			errorMessages[domainerror.ErrCodeTranscriptionParse],
			domainerror.ErrTranscriptionFailed,
		)
	}

	draft := buildDraft(bundle, result)
	output := &ProcessVoiceEntryOutput{Draft: draft}

	if !input.Confirm {
		return output, nil
	}

	applied, err := uc.createUseCase.Execute(ctx, transaction.CreateTransactionInput{
		AccountID: draft.AccountID,
		Amount:    draft.Amount,
		Type:      draft.Type,
		Category:  draft.Category,
		Merchant:  draft.Merchant,
		Currency:  draft.Currency,
	})
	if err != nil {
		return nil, err
	}
	output.Applied = applied

	return output, nil
}

// buildDraft fills the gaps a model leaves. The account always resolves
// because the bundle holds at least one account.
func buildDraft(bundle *entity.StateBundle, result *adapter.TranscriptionResult) VoiceDraft {
	account, _ := ledger.MatchAccountByName(bundle, result.AccountName)

	txType := entity.TransactionType(strings.ToLower(strings.TrimSpace(result.Type)))
	if txType != entity.TransactionTypeIncome {
		txType = entity.TransactionTypeExpense
	}

	category := strings.TrimSpace(result.Category)
	merchant := strings.TrimSpace(result.Merchant)
	if merchant == "" {
		merchant = category
	}
	if merchant == "" {
		merchant = DefaultVoiceMerchant
	}
	if category == "" {
		category = entity.FallbackCategory
	}

	return VoiceDraft{
		AccountID:   account.ID,
		AccountName: account.Name,
		Amount:      result.Amount,
		Currency:    account.Currency,
		Type:        txType,
		Category:    category,
		Merchant:    merchant,
	}
}
