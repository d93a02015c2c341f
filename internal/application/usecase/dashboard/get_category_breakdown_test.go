package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/backend/internal/application/state"
	"github.com/wealthflow/backend/internal/domain/entity"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
	"github.com/wealthflow/backend/internal/domain/ledger"
	"github.com/wealthflow/backend/internal/integration/persistence"
)

// Wednesday.
var now = time.Date(2024, 3, 13, 15, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, txs ...entity.Transaction) *state.Store {
	t.Helper()
	store := state.NewStore(persistence.NewMemoryStateRepository(), ledger.NewEngine(), nil)
	_, err := store.Mutate(context.Background(), "seed", func(b *entity.StateBundle) (*entity.StateBundle, error) {
		for _, tx := range txs {
			b = store.Engine().ApplyTransaction(b, tx)
		}
		return b, nil
	})
	if err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	return store
}

func expense(category string, amount int64, currency entity.Currency, at time.Time) entity.Transaction {
	return entity.Transaction{
		AccountID: "a1",
		Amount:    decimal.NewFromInt(amount),
		Currency:  currency,
		Category:  category,
		Type:      entity.TransactionTypeExpense,
		Time:      at,
	}
}

func TestGetCategoryBreakdownUseCase_Month(t *testing.T) {
	store := newTestStore(t,
		expense("Housing", 60000, entity.CurrencyARS, now.AddDate(0, 0, -10)),
		expense("Food & Dining", 30000, entity.CurrencyARS, now.AddDate(0, 0, -1)),
		expense("Other", 10000, entity.CurrencyARS, now),
		expense("Food & Dining", 99, entity.CurrencyUSD, now),
		expense("Housing", 5000, entity.CurrencyARS, now.AddDate(0, -1, 0)),
		entity.Transaction{AccountID: "a1", Amount: decimal.NewFromInt(500000), Currency: entity.CurrencyARS, Category: "Salary", Type: entity.TransactionTypeIncome, Time: now},
	)
	uc := NewGetCategoryBreakdownUseCase(store, func() time.Time { return now })

	output, err := uc.Execute(context.Background(), GetCategoryBreakdownInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.TotalExpenses.Equal(decimal.NewFromInt(100000)) {
		t.Errorf("expected total 100000, got %s", output.TotalExpenses)
	}
	if !output.UnlistedAmount.Equal(decimal.NewFromInt(10000)) {
		t.Errorf("expected unlisted 10000, got %s", output.UnlistedAmount)
	}
	if output.Period.PeriodLabel != "Mar 2024" {
		t.Errorf("expected label Mar 2024, got %s", output.Period.PeriodLabel)
	}
	if len(output.Categories) != 7 {
		t.Fatalf("expected all 7 categories, got %d", len(output.Categories))
	}

	first, second := output.Categories[0], output.Categories[1]
	if first.CategoryName != "Housing" || first.Percentage != 60 {
		t.Errorf("expected Housing at 60%%, got %s at %v", first.CategoryName, first.Percentage)
	}
	if second.CategoryName != "Food & Dining" || second.Percentage != 30 || second.TransactionCount != 1 {
		t.Errorf("expected Food & Dining at 30%% with 1 tx, got %+v", second)
	}

	if len(output.Donut) != 2 {
		t.Fatalf("expected 2 donut segments, got %d", len(output.Donut))
	}
	if output.Donut[0].Start != 0 || output.Donut[0].End != 60 || output.Donut[1].Start != 60 || output.Donut[1].End != 90 {
		t.Errorf("unexpected donut %+v", output.Donut)
	}
}

func TestGetCategoryBreakdownUseCase_Periods(t *testing.T) {
	store := newTestStore(t,
		expense("Transport", 100, entity.CurrencyARS, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
		expense("Transport", 200, entity.CurrencyARS, time.Date(2024, 3, 9, 23, 59, 0, 0, time.UTC)),
		expense("Transport", 400, entity.CurrencyARS, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)),
		expense("Transport", 800, entity.CurrencyARS, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)),
	)
	uc := NewGetCategoryBreakdownUseCase(store, func() time.Time { return now })

	tests := []struct {
		name      string
		input     GetCategoryBreakdownInput
		wantTotal int64
		wantLabel string
	}{
		{name: "week starts sunday", input: GetCategoryBreakdownInput{Period: PeriodWeek}, wantTotal: 100, wantLabel: "Week of 10 Mar"},
		{name: "year", input: GetCategoryBreakdownInput{Period: PeriodYear}, wantTotal: 700, wantLabel: "2024"},
		{name: "selected past month", input: GetCategoryBreakdownInput{Period: PeriodMonth, Month: 12, Year: 2023}, wantTotal: 800, wantLabel: "Dec 2023"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := uc.Execute(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !output.TotalExpenses.Equal(decimal.NewFromInt(tt.wantTotal)) {
				t.Errorf("expected total %d, got %s", tt.wantTotal, output.TotalExpenses)
			}
			if output.Period.PeriodLabel != tt.wantLabel {
				t.Errorf("expected label %s, got %s", tt.wantLabel, output.Period.PeriodLabel)
			}
		})
	}
}

func TestGetCategoryBreakdownUseCase_EmptyDonut(t *testing.T) {
	uc := NewGetCategoryBreakdownUseCase(newTestStore(t), func() time.Time { return now })

	output, err := uc.Execute(context.Background(), GetCategoryBreakdownInput{Currency: entity.CurrencyUSD})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Donut) != 1 || output.Donut[0].Start != 0 || output.Donut[0].End != 100 || output.Donut[0].Color != EmptyDonutColor {
		t.Errorf("expected single neutral segment, got %+v", output.Donut)
	}
	for _, c := range output.Categories {
		if c.Percentage != 0 {
			t.Errorf("expected 0%% for %s, got %v", c.CategoryName, c.Percentage)
		}
	}
}

func TestGetCategoryBreakdownUseCase_Validation(t *testing.T) {
	uc := NewGetCategoryBreakdownUseCase(newTestStore(t), func() time.Time { return now })

	tests := []struct {
		name    string
		input   GetCategoryBreakdownInput
		wantErr error
	}{
		{name: "period", input: GetCategoryBreakdownInput{Period: "DAY"}, wantErr: domainerror.ErrInvalidPeriod},
		{name: "month", input: GetCategoryBreakdownInput{Month: 13}, wantErr: domainerror.ErrInvalidMonth},
		{name: "year", input: GetCategoryBreakdownInput{Year: 1800}, wantErr: domainerror.ErrInvalidYear},
		{name: "currency", input: GetCategoryBreakdownInput{Currency: "EUR"}, wantErr: domainerror.ErrInvalidAnalyticsCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestGetPeriodBounds(t *testing.T) {
	start, end := GetPeriodBounds(PeriodWeek, now, 0, 0)
	if !start.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected week start Sunday 10 Mar, got %v", start)
	}
	if !end.After(now) {
		t.Errorf("expected week end after now, got %v", end)
	}

	start, end = GetPeriodBounds(PeriodMonth, now, time.February, 2024)
	if !start.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) || !end.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected February bounds %v - %v", start, end)
	}
}
