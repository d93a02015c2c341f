// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultGoalAmount is used for saving targets and debt totals left blank.
var DefaultGoalAmount = decimal.NewFromInt(100)

// SavingGoal is a target-amount accumulator.
// CurrentAmount is never clamped and may exceed TargetAmount.
type SavingGoal struct {
	ID            string
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Currency      Currency
	Color         string
	Icon          string
}

// NewSavingGoal creates a new SavingGoal entity.
func NewSavingGoal(name string, target, current decimal.Decimal, currency Currency, color, icon string) *SavingGoal {
	if target.IsZero() {
		target = DefaultGoalAmount
	}
	return &SavingGoal{
		ID:            uuid.NewString(),
		Name:          name,
		TargetAmount:  target,
		CurrentAmount: current,
		Currency:      currency,
		Color:         color,
		Icon:          icon,
	}
}

// Progress returns CurrentAmount as a percentage of TargetAmount.
func (g SavingGoal) Progress() float64 {
	if g.TargetAmount.IsZero() {
		return 0
	}
	pct, _ := g.CurrentAmount.Mul(decimal.NewFromInt(100)).Div(g.TargetAmount).Round(2).Float64()
	return pct
}

// Debt tracks the outstanding balance of money owed.
// RemainingAmount is floored at zero on every paydown.
type Debt struct {
	ID              string
	Name            string
	TotalAmount     decimal.Decimal
	RemainingAmount decimal.Decimal
	Currency        Currency
	Color           string
	Icon            string
}

// NewDebt creates a new Debt entity with the full total outstanding.
func NewDebt(name string, total decimal.Decimal, currency Currency, color, icon string) *Debt {
	if total.IsZero() {
		total = DefaultGoalAmount
	}
	return &Debt{
		ID:              uuid.NewString(),
		Name:            name,
		TotalAmount:     total,
		RemainingAmount: total,
		Currency:        currency,
		Color:           color,
		Icon:            icon,
	}
}

// PaidProgress returns the paid-off share of TotalAmount as a percentage.
func (d Debt) PaidProgress() float64 {
	if d.TotalAmount.IsZero() {
		return 0
	}
	paid := d.TotalAmount.Sub(d.RemainingAmount)
	pct, _ := paid.Mul(decimal.NewFromInt(100)).Div(d.TotalAmount).Round(2).Float64()
	return pct
}
