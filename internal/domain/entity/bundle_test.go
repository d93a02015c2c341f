package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestStateBundle_Clone(t *testing.T) {
	t.Run("keeps absent categories absent", func(t *testing.T) {
		b := &StateBundle{Accounts: []Account{{ID: "x", Name: "Only"}}}

		clone := b.Clone()
		if clone.Categories != nil {
			t.Errorf("expected nil categories, got %v", clone.Categories)
		}
		if len(clone.Accounts) != 1 {
			t.Errorf("expected 1 account, got %d", len(clone.Accounts))
		}
	})

	t.Run("keeps an empty category list empty", func(t *testing.T) {
		b := &StateBundle{Categories: []Category{}}

		clone := b.Clone()
		if clone.Categories == nil || len(clone.Categories) != 0 {
			t.Errorf("expected empty non-nil categories, got %#v", clone.Categories)
		}
	})

	t.Run("shares no memory with the original", func(t *testing.T) {
		b := SeedBundle()
		limit := decimal.NewFromInt(1000)
		b.Categories[0].Limit = &limit

		clone := b.Clone()
		clone.Accounts[0].Balance = decimal.Zero
		*clone.Categories[0].Limit = decimal.NewFromInt(1)

		if b.Accounts[0].Balance.IsZero() {
			t.Error("expected original balance untouched")
		}
		if !b.Categories[0].Limit.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected original limit 1000, got %s", b.Categories[0].Limit)
		}
	})
}
