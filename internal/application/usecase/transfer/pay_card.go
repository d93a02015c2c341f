package transfer

import (
	"context"
	"strings"

	"github.com/wealthflow/backend/internal/application/state"
	"github.com/wealthflow/backend/internal/domain/entity"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
	"github.com/wealthflow/backend/internal/domain/ledger"
)

// PayCardInput represents a request to pay a credit card's full outstanding balance.
type PayCardInput struct {
	CardAccountID   string
	SourceAccountID string
}

// PayCardUseCase settles a credit card by transferring its outstanding
// balance from a payment source.
type PayCardUseCase struct {
	store    *state.Store
	transfer *TransferFundsUseCase
}

// NewPayCardUseCase creates a new PayCardUseCase instance.
func NewPayCardUseCase(store *state.Store, transfer *TransferFundsUseCase) *PayCardUseCase {
	return &PayCardUseCase{
		store:    store,
		transfer: transfer,
	}
}

// Execute transfers abs(card balance) from the source into the card.
func (uc *PayCardUseCase) Execute(ctx context.Context, input PayCardInput) (*TransferFundsOutput, error) {
	if strings.TrimSpace(input.CardAccountID) == "" {
		return nil, domainerror.NewTransferError(
			domainerror.ErrCodeMissingTransferTarget,
			"card account is required",
			domainerror.ErrMissingTransferTarget,
		)
	}

	bundle, err := uc.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	card, ok := ledger.FindAccount(bundle, input.CardAccountID)
	if !ok || card.Type != entity.AccountTypeCredit {
		return nil, domainerror.NewTransferError(
			domainerror.ErrCodeTransferTargetNotFound,
			"credit card not found",
			domainerror.ErrTransferTargetNotFound,
		)
	}

	if !card.Balance.IsNegative() {
		return nil, domainerror.NewTransferError(
			domainerror.ErrCodeInvalidTransferAmount,
			"card has no outstanding debt",
			domainerror.ErrInvalidTransferAmount,
		)
	}

	return uc.transfer.Execute(ctx, TransferFundsInput{
		SourceAccountID: input.SourceAccountID,
		TargetID:        card.ID,
		TargetType:      ledger.TargetAccount,
		Amount:          card.Balance.Abs(),
	})
}

// PaymentSources returns the accounts that can pay a card: debit and cash
// accounts with a positive balance.
func PaymentSources(b *entity.StateBundle) []entity.Account {
	sources := make([]entity.Account, 0, len(b.Accounts))
	for _, a := range b.Accounts {
		if (a.Type == entity.AccountTypeDebit || a.Type == entity.AccountTypeCash) && a.Balance.IsPositive() {
			sources = append(sources, a)
		}
	}
	return sources
}
