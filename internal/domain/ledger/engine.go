// Package ledger implements the pure state transitions that keep account
// balances, saving goals and debts consistent as money moves.
//
// Every Engine method takes a bundle and returns a new one. Inputs are never
// mutated, so a caller can compute the next state, persist it, and only then
// make it visible.
package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealthflow/backend/internal/domain/entity"
)

// TargetType identifies which collection a transfer credits.
type TargetType string

const (
	TargetAccount TargetType = "account"
	TargetSaving  TargetType = "saving"
	TargetDebt    TargetType = "debt"
)

// IsValid reports whether t names a known transfer destination.
func (t TargetType) IsValid() bool {
	return t == TargetAccount || t == TargetSaving || t == TargetDebt
}

// TransferRequest describes a movement of money out of an account.
type TransferRequest struct {
	SourceAccountID string
	TargetID        string
	TargetType      TargetType
	Amount          decimal.Decimal
}

// Engine computes next-state bundles.
type Engine struct {
	now   func() time.Time
	newID func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the clock used to timestamp synthesized transactions.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithIDGenerator overrides the id generator used for synthesized transactions.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) {
		e.newID = newID
	}
}

// persistedTime drops what the state blob cannot hold: the location, the
// monotonic reading and anything finer than a millisecond.
func persistedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// NewEngine creates a new Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ApplyTransaction prepends tx to the history and adjusts the balance of the
// account it references. An unknown account leaves every balance untouched
// but the transaction is still recorded. Types other than expense and income
// are recorded without a balance effect.
func (e *Engine) ApplyTransaction(b *entity.StateBundle, tx entity.Transaction) *entity.StateBundle {
	next := b.Clone()

	if tx.ID == "" {
		tx.ID = e.newID()
	}
	if tx.Time.IsZero() {
		tx.Time = e.now()
	}
	tx.Time = persistedTime(tx.Time)

	next.Transactions = prepend(next.Transactions, tx)

	if i := indexOfAccount(next.Accounts, tx.AccountID); i >= 0 {
		next.Accounts[i].Balance = next.Accounts[i].Balance.Add(tx.SignedAmount())
	}

	return next
}

// TransferFunds debits the source account, records a transfer transaction and
// credits the destination, all in one step. When the source, the target or the
// target type cannot be resolved the input is returned unchanged together with
// a nil transaction.
//
// Debt paydowns floor the remaining amount at zero while the source is still
// debited the full amount.
func (e *Engine) TransferFunds(b *entity.StateBundle, req TransferRequest) (*entity.StateBundle, *entity.Transaction) {
	srcIdx := indexOfAccount(b.Accounts, req.SourceAccountID)
	if srcIdx < 0 {
		return b, nil
	}

	targetName, ok := resolveTargetName(b, req.TargetType, req.TargetID)
	if !ok {
		return b, nil
	}

	next := b.Clone()
	source := &next.Accounts[srcIdx]
	source.Balance = source.Balance.Sub(req.Amount)

	switch req.TargetType {
	case TargetAccount:
		i := indexOfAccount(next.Accounts, req.TargetID)
		next.Accounts[i].Balance = next.Accounts[i].Balance.Add(req.Amount)
	case TargetSaving:
		i := indexOfSaving(next.Savings, req.TargetID)
		next.Savings[i].CurrentAmount = next.Savings[i].CurrentAmount.Add(req.Amount)
	case TargetDebt:
		i := indexOfDebt(next.Debts, req.TargetID)
		remaining := next.Debts[i].RemainingAmount.Sub(req.Amount)
		next.Debts[i].RemainingAmount = decimal.Max(decimal.Zero, remaining)
	}

	tx := entity.Transaction{
		ID:        e.newID(),
		AccountID: source.ID,
		Amount:    req.Amount,
		Currency:  source.Currency,
		Category:  entity.TransferCategory,
		Merchant:  fmt.Sprintf("Transfer: %s -> %s", source.Name, targetName),
		Time:      persistedTime(e.now()),
		Type:      entity.TransactionTypeTransfer,
	}
	next.Transactions = prepend(next.Transactions, tx)

	return next, &tx
}

// AddCategory appends a category.
func (e *Engine) AddCategory(b *entity.StateBundle, c entity.Category) *entity.StateBundle {
	next := b.Clone()
	next.Categories = append(next.Categories, c)
	return next
}

// EditCategory replaces the category with the same id. Historical
// transactions keep the name they were recorded with.
func (e *Engine) EditCategory(b *entity.StateBundle, c entity.Category) *entity.StateBundle {
	next := b.Clone()
	for i := range next.Categories {
		if next.Categories[i].ID == c.ID {
			next.Categories[i] = c
			break
		}
	}
	return next
}

// DeleteCategory removes the category with the given id. Transactions are not touched.
func (e *Engine) DeleteCategory(b *entity.StateBundle, id string) *entity.StateBundle {
	next := b.Clone()
	kept := next.Categories[:0]
	for _, c := range next.Categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	next.Categories = kept
	return next
}

// DeleteAccount removes the account with the given id. Transactions that
// reference it keep their dangling account id.
func (e *Engine) DeleteAccount(b *entity.StateBundle, id string) *entity.StateBundle {
	next := b.Clone()
	kept := next.Accounts[:0]
	for _, a := range next.Accounts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	next.Accounts = kept
	return next
}

// AddAccount appends an account.
func (e *Engine) AddAccount(b *entity.StateBundle, a entity.Account) *entity.StateBundle {
	next := b.Clone()
	next.Accounts = append(next.Accounts, a)
	return next
}

// AddSavingGoal appends a saving goal.
func (e *Engine) AddSavingGoal(b *entity.StateBundle, s entity.SavingGoal) *entity.StateBundle {
	next := b.Clone()
	next.Savings = append(next.Savings, s)
	return next
}

// AddDebt appends a debt.
func (e *Engine) AddDebt(b *entity.StateBundle, d entity.Debt) *entity.StateBundle {
	next := b.Clone()
	next.Debts = append(next.Debts, d)
	return next
}

func resolveTargetName(b *entity.StateBundle, targetType TargetType, id string) (string, bool) {
	switch targetType {
	case TargetAccount:
		if a, ok := FindAccount(b, id); ok {
			return a.Name, true
		}
	case TargetSaving:
		if s, ok := FindSavingGoal(b, id); ok {
			return s.Name, true
		}
	case TargetDebt:
		if d, ok := FindDebt(b, id); ok {
			return d.Name, true
		}
	}
	return "", false
}

func prepend(history []entity.Transaction, tx entity.Transaction) []entity.Transaction {
	out := make([]entity.Transaction, 0, len(history)+1)
	out = append(out, tx)
	return append(out, history...)
}
