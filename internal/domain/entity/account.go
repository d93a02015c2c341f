// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the kind of money store an account models.
type AccountType string

const (
	AccountTypeDebit   AccountType = "Debit"
	AccountTypeCredit  AccountType = "Credit"
	AccountTypeCash    AccountType = "Cash"
	AccountTypeSavings AccountType = "Savings"
	AccountTypeLoan    AccountType = "Loan"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeDebit, AccountTypeCredit, AccountTypeCash, AccountTypeSavings, AccountTypeLoan:
		return true
	}
	return false
}

// IsLiability reports whether balances of this type represent money owed.
func (t AccountType) IsLiability() bool {
	return t == AccountTypeCredit || t == AccountTypeLoan
}

// Currency is an ISO code for the currencies the ledger tracks.
type Currency string

const (
	CurrencyARS Currency = "ARS"
	CurrencyUSD Currency = "USD"
)

// IsValid reports whether c is a supported currency.
func (c Currency) IsValid() bool {
	return c == CurrencyARS || c == CurrencyUSD
}

// SupportedCurrencies lists currencies in display order.
var SupportedCurrencies = []Currency{CurrencyARS, CurrencyUSD}

// Account represents a named store of money.
// Balance is signed; a negative balance means money is owed.
type Account struct {
	ID         string
	Name       string
	Type       AccountType
	Currency   Currency
	Balance    decimal.Decimal
	LastDigits string
	Color      string
	Icon       string

	// TargetAmount is only meaningful for Savings and Loan accounts.
	TargetAmount *decimal.Decimal

	// Credit-specific fields.
	Limit      *decimal.Decimal
	ClosingDay *int
	DueDay     *int
}

// AccountFields carries the user-supplied fields for a new account.
type AccountFields struct {
	Name         string
	Type         AccountType
	Currency     Currency
	Balance      decimal.Decimal
	LastDigits   string
	Color        string
	Icon         string
	TargetAmount *decimal.Decimal
	Limit        *decimal.Decimal
	ClosingDay   *int
	DueDay       *int
}

// NewAccount creates a new Account entity from fields.
// Credit and Loan accounts always open with a non-positive balance.
func NewAccount(fields AccountFields) *Account {
	balance := fields.Balance
	if fields.Type.IsLiability() {
		balance = balance.Abs().Neg()
	}

	icon := fields.Icon
	if icon == "" {
		icon = DefaultAccountIcon(fields.Type)
	}

	account := &Account{
		ID:         uuid.NewString(),
		Name:       fields.Name,
		Type:       fields.Type,
		Currency:   fields.Currency,
		Balance:    balance,
		LastDigits: fields.LastDigits,
		Color:      fields.Color,
		Icon:       icon,
	}

	if fields.Type == AccountTypeSavings || fields.Type == AccountTypeLoan {
		account.TargetAmount = fields.TargetAmount
	}

	if fields.Type == AccountTypeCredit {
		account.Limit = fields.Limit
		account.ClosingDay = fields.ClosingDay
		account.DueDay = fields.DueDay
	}

	return account
}

// DefaultAccountIcon returns the icon used when none is chosen.
func DefaultAccountIcon(accountType AccountType) string {
	switch accountType {
	case AccountTypeCredit:
		return "credit_card"
	case AccountTypeCash:
		return "payments"
	case AccountTypeSavings:
		return "savings"
	case AccountTypeLoan:
		return "real_estate_agent"
	default:
		return "account_balance"
	}
}
