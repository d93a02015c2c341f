// Package category contains category-related use cases.
package category

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/backend/internal/application/state"
	"github.com/wealthflow/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	CategoryType *entity.CategoryType // Optional filter by category type
	StartDate    *time.Time           // Optional start date for statistics
	EndDate      *time.Time           // Optional end date for statistics, exclusive
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.CategoryWithStats
}

// ListCategoriesUseCase handles listing categories logic.
type ListCategoriesUseCase struct {
	store *state.Store
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(store *state.Store) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		store: store,
	}
}

// Execute performs the category listing. Statistics count expense transactions
// whose category name matches, inside the optional period.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	bundle, err := uc.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	type stats struct {
		count int
		total decimal.Decimal
	}
	byName := make(map[string]*stats)
	for _, tx := range bundle.Transactions {
		if tx.Type != entity.TransactionTypeExpense {
			continue
		}
		if input.StartDate != nil && tx.Time.Before(*input.StartDate) {
			continue
		}
		if input.EndDate != nil && !tx.Time.Before(*input.EndDate) {
			continue
		}
		s, ok := byName[tx.Category]
		if !ok {
			s = &stats{total: decimal.Zero}
			byName[tx.Category] = s
		}
		s.count++
		s.total = s.total.Add(tx.Amount)
	}

	output := &ListCategoriesOutput{
		Categories: make([]*entity.CategoryWithStats, 0, len(bundle.Categories)),
	}
	for i := range bundle.Categories {
		c := bundle.Categories[i]
		if input.CategoryType != nil && c.Type != *input.CategoryType {
			continue
		}

		item := &entity.CategoryWithStats{
			Category:    &c,
			PeriodTotal: decimal.Zero,
		}
		if s, ok := byName[c.Name]; ok {
			item.TransactionCount = s.count
			item.PeriodTotal = s.total
		}
		if c.Limit != nil && c.Limit.IsPositive() {
			usage, _ := item.PeriodTotal.Mul(decimal.NewFromInt(100)).Div(*c.Limit).Round(2).Float64()
			item.LimitUsage = &usage
		}
		output.Categories = append(output.Categories, item)
	}

	return output, nil
}
