// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/backend/internal/domain/entity"
)

// StateDocument is the persisted JSON layout of the full state bundle.
// Categories stays nil when the key is absent so the loader can seed defaults.
type StateDocument struct {
	Accounts     []AccountDocument     `json:"accounts"`
	Transactions []TransactionDocument `json:"transactions"`
	Categories   []CategoryDocument    `json:"categories"`
	Savings      []SavingGoalDocument  `json:"savings"`
	Debts        []DebtDocument        `json:"debts"`
}

// AccountDocument is the persisted form of an Account.
type AccountDocument struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Type         string       `json:"type"`
	Currency     string       `json:"currency"`
	Balance      json.Number  `json:"balance"`
	LastDigits   string       `json:"lastDigits,omitempty"`
	Color        string       `json:"color"`
	Icon         string       `json:"icon"`
	TargetAmount *json.Number `json:"targetAmount,omitempty"`
	Limit        *json.Number `json:"limit,omitempty"`
	ClosingDay   *int         `json:"closingDay,omitempty"`
	DueDay       *int         `json:"dueDay,omitempty"`
}

// TransactionDocument is the persisted form of a Transaction. Time is epoch milliseconds.
type TransactionDocument struct {
	ID        string      `json:"id"`
	AccountID string      `json:"accountId"`
	Amount    json.Number `json:"amount"`
	Currency  string      `json:"currency"`
	Category  string      `json:"category"`
	Merchant  string      `json:"merchant"`
	Time      int64       `json:"time"`
	Type      string      `json:"type"`
	Note      string      `json:"note,omitempty"`
}

// CategoryDocument is the persisted form of a Category.
type CategoryDocument struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Icon  string       `json:"icon"`
	Color string       `json:"color"`
	Limit *json.Number `json:"limit,omitempty"`
	Type  string       `json:"type,omitempty"`
}

// SavingGoalDocument is the persisted form of a SavingGoal.
type SavingGoalDocument struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	TargetAmount  json.Number `json:"targetAmount"`
	CurrentAmount json.Number `json:"currentAmount"`
	Currency      string      `json:"currency"`
	Color         string      `json:"color"`
	Icon          string      `json:"icon"`
}

// DebtDocument is the persisted form of a Debt.
type DebtDocument struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	TotalAmount     json.Number `json:"totalAmount"`
	RemainingAmount json.Number `json:"remainingAmount"`
	Currency        string      `json:"currency"`
	Color           string      `json:"color"`
	Icon            string      `json:"icon"`
}

// StateFromEntity creates a StateDocument from a domain StateBundle.
func StateFromEntity(b *entity.StateBundle) *StateDocument {
	doc := &StateDocument{
		Accounts:     make([]AccountDocument, len(b.Accounts)),
		Transactions: make([]TransactionDocument, len(b.Transactions)),
		Categories:   make([]CategoryDocument, len(b.Categories)),
		Savings:      make([]SavingGoalDocument, len(b.Savings)),
		Debts:        make([]DebtDocument, len(b.Debts)),
	}

	for i, a := range b.Accounts {
		doc.Accounts[i] = AccountDocument{
			ID:           a.ID,
			Name:         a.Name,
			Type:         string(a.Type),
			Currency:     string(a.Currency),
			Balance:      number(a.Balance),
			LastDigits:   a.LastDigits,
			Color:        a.Color,
			Icon:         a.Icon,
			TargetAmount: optionalNumber(a.TargetAmount),
			Limit:        optionalNumber(a.Limit),
			ClosingDay:   a.ClosingDay,
			DueDay:       a.DueDay,
		}
	}
	for i, t := range b.Transactions {
		doc.Transactions[i] = TransactionDocument{
			ID:        t.ID,
			AccountID: t.AccountID,
			Amount:    number(t.Amount),
			Currency:  string(t.Currency),
			Category:  t.Category,
			Merchant:  t.Merchant,
			Time:      t.Time.UnixMilli(),
			Type:      string(t.Type),
			Note:      t.Note,
		}
	}
	for i, c := range b.Categories {
		doc.Categories[i] = CategoryDocument{
			ID:    c.ID,
			Name:  c.Name,
			Icon:  c.Icon,
			Color: c.Color,
			Limit: optionalNumber(c.Limit),
			Type:  string(c.Type),
		}
	}
	for i, s := range b.Savings {
		doc.Savings[i] = SavingGoalDocument{
			ID:            s.ID,
			Name:          s.Name,
			TargetAmount:  number(s.TargetAmount),
			CurrentAmount: number(s.CurrentAmount),
			Currency:      string(s.Currency),
			Color:         s.Color,
			Icon:          s.Icon,
		}
	}
	for i, d := range b.Debts {
		doc.Debts[i] = DebtDocument{
			ID:              d.ID,
			Name:            d.Name,
			TotalAmount:     number(d.TotalAmount),
			RemainingAmount: number(d.RemainingAmount),
			Currency:        string(d.Currency),
			Color:           d.Color,
			Icon:            d.Icon,
		}
	}

	return doc
}

// ToEntity converts a StateDocument to a domain StateBundle.
// A nil Categories slice is preserved.
func (d *StateDocument) ToEntity() (*entity.StateBundle, error) {
	b := &entity.StateBundle{
		Accounts:     make([]entity.Account, len(d.Accounts)),
		Transactions: make([]entity.Transaction, len(d.Transactions)),
		Savings:      make([]entity.SavingGoal, len(d.Savings)),
		Debts:        make([]entity.Debt, len(d.Debts)),
	}

	p := &parser{}

	for i, a := range d.Accounts {
		b.Accounts[i] = entity.Account{
			ID:           a.ID,
			Name:         a.Name,
			Type:         entity.AccountType(a.Type),
			Currency:     entity.Currency(a.Currency),
			Balance:      p.decimal(a.Balance),
			LastDigits:   a.LastDigits,
			Color:        a.Color,
			Icon:         a.Icon,
			TargetAmount: p.optionalDecimal(a.TargetAmount),
			Limit:        p.optionalDecimal(a.Limit),
			ClosingDay:   a.ClosingDay,
			DueDay:       a.DueDay,
		}
	}
	for i, t := range d.Transactions {
		b.Transactions[i] = entity.Transaction{
			ID:        t.ID,
			AccountID: t.AccountID,
			Amount:    p.decimal(t.Amount),
			Currency:  entity.Currency(t.Currency),
			Category:  t.Category,
			Merchant:  t.Merchant,
			Time:      time.UnixMilli(t.Time).UTC(),
			Type:      entity.TransactionType(t.Type),
			Note:      t.Note,
		}
	}
	if d.Categories != nil {
		b.Categories = make([]entity.Category, len(d.Categories))
		for i, c := range d.Categories {
			b.Categories[i] = entity.Category{
				ID:    c.ID,
				Name:  c.Name,
				Icon:  c.Icon,
				Color: c.Color,
				Limit: p.optionalDecimal(c.Limit),
				Type:  entity.CategoryType(c.Type),
			}
		}
	}
	for i, s := range d.Savings {
		b.Savings[i] = entity.SavingGoal{
			ID:            s.ID,
			Name:          s.Name,
			TargetAmount:  p.decimal(s.TargetAmount),
			CurrentAmount: p.decimal(s.CurrentAmount),
			Currency:      entity.Currency(s.Currency),
			Color:         s.Color,
			Icon:          s.Icon,
		}
	}
	for i, debt := range d.Debts {
		b.Debts[i] = entity.Debt{
			ID:              debt.ID,
			Name:            debt.Name,
			TotalAmount:     p.decimal(debt.TotalAmount),
			RemainingAmount: p.decimal(debt.RemainingAmount),
			Currency:        entity.Currency(debt.Currency),
			Color:           debt.Color,
			Icon:            debt.Icon,
		}
	}

	if p.err != nil {
		return nil, p.err
	}
	return b, nil
}

// parser accumulates the first number conversion error.
type parser struct {
	err error
}

func (p *parser) decimal(n json.Number) decimal.Decimal {
	if n == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(string(n))
	if err != nil && p.err == nil {
		p.err = err
	}
	return d
}

func (p *parser) optionalDecimal(n *json.Number) *decimal.Decimal {
	if n == nil {
		return nil
	}
	d := p.decimal(*n)
	return &d
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func optionalNumber(d *decimal.Decimal) *json.Number {
	if d == nil {
		return nil
	}
	n := number(*d)
	return &n
}
