// Package transfer contains use cases that move money between ledger items.
package transfer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/backend/internal/application/state"
	"github.com/wealthflow/backend/internal/domain/entity"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
	"github.com/wealthflow/backend/internal/domain/ledger"
)

// TransferFundsInput represents the input for a transfer.
type TransferFundsInput struct {
	SourceAccountID string
	TargetID        string
	TargetType      ledger.TargetType
	Amount          decimal.Decimal
}

// TransferFundsOutput represents the output of a transfer.
type TransferFundsOutput struct {
	Transaction   entity.Transaction
	SourceBalance decimal.Decimal
	Target        TargetOutput
}

// TargetOutput describes the credited item after the transfer.
type TargetOutput struct {
	ID   string
	Type ledger.TargetType
	Name string
	// Amount is the balance, current amount or remaining amount depending on Type.
	Amount decimal.Decimal
}

// TransferFundsUseCase handles transfer logic.
type TransferFundsUseCase struct {
	store *state.Store
}

// NewTransferFundsUseCase creates a new TransferFundsUseCase instance.
func NewTransferFundsUseCase(store *state.Store) *TransferFundsUseCase {
	return &TransferFundsUseCase{
		store: store,
	}
}

// Execute validates the request and performs the transfer.
func (uc *TransferFundsUseCase) Execute(ctx context.Context, input TransferFundsInput) (*TransferFundsOutput, error) {
	if err := validateTransferInput(input); err != nil {
		return nil, err
	}

	var tx *entity.Transaction
	next, err := uc.store.Mutate(ctx, "transfer_funds", func(current *entity.StateBundle) (*entity.StateBundle, error) {
		if _, ok := ledger.FindAccount(current, input.SourceAccountID); !ok {
			return nil, domainerror.NewTransferError(
				domainerror.ErrCodeSourceAccountNotFound,
				"source account not found",
				domainerror.ErrSourceAccountNotFound,
			)
		}

		next, synthesized := uc.store.Engine().TransferFunds(current, ledger.TransferRequest{
			SourceAccountID: input.SourceAccountID,
			TargetID:        input.TargetID,
			TargetType:      input.TargetType,
			Amount:          input.Amount,
		})
		if synthesized == nil {
			return nil, domainerror.NewTransferError(
				domainerror.ErrCodeTransferTargetNotFound,
				"transfer target not found",
				domainerror.ErrTransferTargetNotFound,
			)
		}

		tx = synthesized
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	source, _ := ledger.FindAccount(next, input.SourceAccountID)
	output := &TransferFundsOutput{
		Transaction:   *tx,
		SourceBalance: source.Balance,
		Target:        describeTarget(next, input.TargetType, input.TargetID),
	}

	slog.Info("Funds transferred",
		"source_account_id", input.SourceAccountID,
		"target_type", input.TargetType,
		"target_id", input.TargetID,
		"amount", input.Amount.String(),
	)

	return output, nil
}

func validateTransferInput(input TransferFundsInput) error {
	if !input.Amount.IsPositive() {
		return domainerror.NewTransferError(
			domainerror.ErrCodeInvalidTransferAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransferAmount,
		)
	}

	if strings.TrimSpace(input.SourceAccountID) == "" {
		return domainerror.NewTransferError(
			domainerror.ErrCodeMissingTransferSource,
			"source account is required",
			domainerror.ErrMissingTransferSource,
		)
	}

	if strings.TrimSpace(input.TargetID) == "" {
		return domainerror.NewTransferError(
			domainerror.ErrCodeMissingTransferTarget,
			"transfer target is required",
			domainerror.ErrMissingTransferTarget,
		)
	}

	if !input.TargetType.IsValid() {
		return domainerror.NewTransferError(
			domainerror.ErrCodeInvalidTargetType,
			"target type must be 'account', 'saving' or 'debt'",
			domainerror.ErrInvalidTargetType,
		)
	}

	if input.TargetType == ledger.TargetAccount && input.TargetID == input.SourceAccountID {
		return domainerror.NewTransferError(
			domainerror.ErrCodeSameAccountTransfer,
			"source and target accounts must differ",
			domainerror.ErrSameAccountTransfer,
		)
	}

	return nil
}

func describeTarget(b *entity.StateBundle, targetType ledger.TargetType, id string) TargetOutput {
	target := TargetOutput{ID: id, Type: targetType}
	switch targetType {
	case ledger.TargetAccount:
		a, _ := ledger.FindAccount(b, id)
		target.Name, target.Amount = a.Name, a.Balance
	case ledger.TargetSaving:
		s, _ := ledger.FindSavingGoal(b, id)
		target.Name, target.Amount = s.Name, s.CurrentAmount
	case ledger.TargetDebt:
		d, _ := ledger.FindDebt(b, id)
		target.Name, target.Amount = d.Name, d.RemainingAmount
	}
	return target
}
