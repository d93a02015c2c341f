// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a money movement.
type TransactionType string

const (
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeTransfer TransactionType = "transfer"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeExpense, TransactionTypeIncome, TransactionTypeTransfer:
		return true
	}
	return false
}

const (
	// TransferCategory is the category recorded on synthesized transfer transactions.
	TransferCategory = "Transfer"
	// FallbackCategory is used when no category was given.
	FallbackCategory = "Other"
)

// Transaction is an immutable record of money movement.
// Amount is always a positive magnitude; direction is carried by Type.
// AccountID is a weak reference and may not resolve to a live account.
type Transaction struct {
	ID        string
	AccountID string
	Amount    decimal.Decimal
	Currency  Currency
	Category  string
	Merchant  string
	Time      time.Time
	Type      TransactionType
	Note      string
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	accountID string,
	amount decimal.Decimal,
	currency Currency,
	category string,
	merchant string,
	at time.Time,
	transactionType TransactionType,
	note string,
) *Transaction {
	return &Transaction{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Amount:    amount,
		Currency:  currency,
		Category:  category,
		Merchant:  merchant,
		Time:      at,
		Type:      transactionType,
		Note:      note,
	}
}

// SignedAmount returns the balance effect of the transaction on its account.
// Transfers return zero because their effect is computed by the transfer itself.
func (t Transaction) SignedAmount() decimal.Decimal {
	switch t.Type {
	case TransactionTypeExpense:
		return t.Amount.Neg()
	case TransactionTypeIncome:
		return t.Amount
	default:
		return decimal.Zero
	}
}
