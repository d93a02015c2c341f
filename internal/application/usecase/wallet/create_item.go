// Package wallet contains use cases for accounts, saving goals and debts.
package wallet

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/backend/internal/application/state"
	"github.com/wealthflow/backend/internal/domain/entity"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
)

// MaxItemNameLength is the maximum allowed length for item names.
const MaxItemNameLength = 100

// ItemKind tags which variant an ItemDraft carries.
type ItemKind string

const (
	ItemKindAccount ItemKind = "account"
	ItemKindSaving  ItemKind = "saving"
	ItemKindDebt    ItemKind = "debt"
)

// ItemDraft is the input of CreateItem. It is implemented only by
// AccountDraft, SavingDraft and DebtDraft.
type ItemDraft interface {
	Kind() ItemKind
	itemDraft()
}

// AccountDraft describes a new account.
type AccountDraft struct {
	Name         string
	Type         entity.AccountType
	Currency     entity.Currency
	Balance      decimal.Decimal
	LastDigits   string
	Color        string
	Icon         string
	TargetAmount *decimal.Decimal
	Limit        *decimal.Decimal
	ClosingDay   *int
	DueDay       *int
}

// SavingDraft describes a new saving goal. TargetAmount defaults to 100.
type SavingDraft struct {
	Name          string
	Currency      entity.Currency
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Color         string
	Icon          string
}

// DebtDraft describes a new debt. TotalAmount defaults to 100.
type DebtDraft struct {
	Name        string
	Currency    entity.Currency
	TotalAmount decimal.Decimal
	Color       string
	Icon        string
}

func (AccountDraft) Kind() ItemKind { return ItemKindAccount }
func (SavingDraft) Kind() ItemKind  { return ItemKindSaving }
func (DebtDraft) Kind() ItemKind    { return ItemKindDebt }

func (AccountDraft) itemDraft() {}
func (SavingDraft) itemDraft()  {}
func (DebtDraft) itemDraft()    {}

// CreateItemOutput carries the created entity. Exactly one field is set.
type CreateItemOutput struct {
	Kind    ItemKind
	Account *entity.Account
	Saving  *entity.SavingGoal
	Debt    *entity.Debt
}

// CreateItemUseCase handles creation of accounts, saving goals and debts.
type CreateItemUseCase struct {
	store *state.Store
}

// NewCreateItemUseCase creates a new CreateItemUseCase instance.
func NewCreateItemUseCase(store *state.Store) *CreateItemUseCase {
	return &CreateItemUseCase{
		store: store,
	}
}

// Execute validates the draft, builds the entity for its variant and adds it.
func (uc *CreateItemUseCase) Execute(ctx context.Context, draft ItemDraft) (*CreateItemOutput, error) {
	output := &CreateItemOutput{}

	var apply func(current *entity.StateBundle) *entity.StateBundle
	switch d := draft.(type) {
	case AccountDraft:
		if err := validateAccountDraft(d); err != nil {
			return nil, err
		}
		account := entity.NewAccount(entity.AccountFields{
			Name:         strings.TrimSpace(d.Name),
			Type:         d.Type,
			Currency:     currencyOrDefault(d.Currency),
			Balance:      d.Balance,
			LastDigits:   d.LastDigits,
			Color:        colorOrDefault(d.Color, "blue"),
			Icon:         d.Icon,
			TargetAmount: d.TargetAmount,
			Limit:        d.Limit,
			ClosingDay:   d.ClosingDay,
			DueDay:       d.DueDay,
		})
		output.Kind, output.Account = ItemKindAccount, account
		apply = func(current *entity.StateBundle) *entity.StateBundle {
			return uc.store.Engine().AddAccount(current, *account)
		}

	case SavingDraft:
		if err := validateCommon(d.Name, d.Currency); err != nil {
			return nil, err
		}
		if d.TargetAmount.IsNegative() || d.CurrentAmount.IsNegative() {
			return nil, invalidAmount()
		}
		saving := entity.NewSavingGoal(
			strings.TrimSpace(d.Name),
			d.TargetAmount,
			d.CurrentAmount,
			currencyOrDefault(d.Currency),
			colorOrDefault(d.Color, "indigo"),
			iconOrDefault(d.Icon, "savings"),
		)
		output.Kind, output.Saving = ItemKindSaving, saving
		apply = func(current *entity.StateBundle) *entity.StateBundle {
			return uc.store.Engine().AddSavingGoal(current, *saving)
		}

	case DebtDraft:
		if err := validateCommon(d.Name, d.Currency); err != nil {
			return nil, err
		}
		if d.TotalAmount.IsNegative() {
			return nil, invalidAmount()
		}
		debt := entity.NewDebt(
			strings.TrimSpace(d.Name),
			d.TotalAmount,
			currencyOrDefault(d.Currency),
			colorOrDefault(d.Color, "red"),
			iconOrDefault(d.Icon, "money_off"),
		)
		output.Kind, output.Debt = ItemKindDebt, debt
		apply = func(current *entity.StateBundle) *entity.StateBundle {
			return uc.store.Engine().AddDebt(current, *debt)
		}

	default:
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidItemKind,
			"item kind must be 'account', 'saving' or 'debt'",
			domainerror.ErrInvalidItemKind,
		)
	}

	_, err := uc.store.Mutate(ctx, "create_"+string(output.Kind), func(current *entity.StateBundle) (*entity.StateBundle, error) {
		return apply(current), nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

func validateAccountDraft(d AccountDraft) error {
	if err := validateCommon(d.Name, d.Currency); err != nil {
		return err
	}

	if !d.Type.IsValid() {
		return domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountType,
			"account type must be one of Debit, Credit, Cash, Savings, Loan",
			domainerror.ErrInvalidAccountType,
		)
	}

	if d.LastDigits != "" && !isFourDigits(d.LastDigits) {
		return domainerror.NewAccountError(
			domainerror.ErrCodeInvalidLastDigits,
			"last digits must be exactly four digits",
			domainerror.ErrInvalidLastDigits,
		)
	}

	for _, day := range []*int{d.ClosingDay, d.DueDay} {
		if day != nil && (*day < 1 || *day > 31) {
			return domainerror.NewAccountError(
				domainerror.ErrCodeInvalidBillingDay,
				"billing day must be between 1 and 31",
				domainerror.ErrInvalidBillingDay,
			)
		}
	}

	for _, amount := range []*decimal.Decimal{d.TargetAmount, d.Limit} {
		if amount != nil && amount.IsNegative() {
			return invalidAmount()
		}
	}

	return nil
}

func validateCommon(name string, currency entity.Currency) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domainerror.NewAccountError(
			domainerror.ErrCodeItemNameRequired,
			"name is required",
			domainerror.ErrItemNameRequired,
		)
	}
	if len(name) > MaxItemNameLength {
		return domainerror.NewAccountError(
			domainerror.ErrCodeItemNameTooLong,
			fmt.Sprintf("name must not exceed %d characters", MaxItemNameLength),
			domainerror.ErrItemNameTooLong,
		)
	}
	if currency != "" && !currency.IsValid() {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccInvalidCurrency,
			"currency must be 'ARS' or 'USD'",
			domainerror.ErrInvalidCurrency,
		)
	}
	return nil
}

func invalidAmount() error {
	return domainerror.NewAccountError(
		domainerror.ErrCodeInvalidItemAmount,
		"amounts must not be negative",
		domainerror.ErrInvalidItemAmount,
	)
}

func isFourDigits(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func currencyOrDefault(c entity.Currency) entity.Currency {
	if c == "" {
		return entity.CurrencyARS
	}
	return c
}

func colorOrDefault(color, fallback string) string {
	if color == "" {
		return fallback
	}
	return color
}

func iconOrDefault(icon, fallback string) string {
	if icon == "" {
		return fallback
	}
	return icon
}
