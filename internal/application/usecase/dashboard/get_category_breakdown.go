// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/backend/internal/application/state"
	"github.com/wealthflow/backend/internal/domain/entity"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
)

// EmptyDonutColor is the color of the single segment drawn when nothing was spent.
const EmptyDonutColor = "rgba(255,255,255,0.05)"

// GetCategoryBreakdownInput represents the input for getting category breakdown.
// Month and Year default to the current month and year.
type GetCategoryBreakdownInput struct {
	Period   Period
	Month    int
	Year     int
	Currency entity.Currency
}

// CategoryBreakdownItem represents a single category in the breakdown.
type CategoryBreakdownItem struct {
	CategoryID       string
	CategoryName     string
	CategoryColor    string
	CategoryIcon     string
	Amount           decimal.Decimal
	Percentage       float64
	TransactionCount int
	Limit            *decimal.Decimal
}

// DonutSegment is one slice of the donut chart, as a [Start, End) percentage range.
type DonutSegment struct {
	CategoryName string
	Color        string
	Start        float64
	End          float64
}

// BreakdownPeriod represents the period information for category breakdown.
type BreakdownPeriod struct {
	Period      Period
	StartDate   time.Time
	EndDate     time.Time
	PeriodLabel string
}

// GetCategoryBreakdownOutput represents the output of getting category breakdown.
type GetCategoryBreakdownOutput struct {
	Period        BreakdownPeriod
	Currency      entity.Currency
	TotalExpenses decimal.Decimal
	// UnlistedAmount is spend whose category name matches no current category.
	UnlistedAmount decimal.Decimal
	Categories     []CategoryBreakdownItem
	Donut          []DonutSegment
}

// GetCategoryBreakdownUseCase handles getting spending breakdown by category.
type GetCategoryBreakdownUseCase struct {
	store *state.Store
	now   func() time.Time
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
// now may be nil, in which case time.Now is used.
func NewGetCategoryBreakdownUseCase(store *state.Store, now func() time.Time) *GetCategoryBreakdownUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetCategoryBreakdownUseCase{
		store: store,
		now:   now,
	}
}

// Execute retrieves expense spending by category for the given period and currency.
func (uc *GetCategoryBreakdownUseCase) Execute(
	ctx context.Context,
	input GetCategoryBreakdownInput,
) (*GetCategoryBreakdownOutput, error) {
	now := uc.now()
	input = uc.applyDefaults(input, now)

	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	bundle, err := uc.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	start, end := GetPeriodBounds(input.Period, now, time.Month(input.Month), input.Year)

	type bucket struct {
		amount decimal.Decimal
		count  int
	}
	byName := make(map[string]*bucket)
	total := decimal.Zero

	for _, tx := range bundle.Transactions {
		if tx.Type != entity.TransactionTypeExpense || tx.Currency != input.Currency {
			continue
		}
		if tx.Time.Before(start) || !tx.Time.Before(end) {
			continue
		}
		total = total.Add(tx.Amount)

		b, ok := byName[tx.Category]
		if !ok {
			b = &bucket{amount: decimal.Zero}
			byName[tx.Category] = b
		}
		b.amount = b.amount.Add(tx.Amount)
		b.count++
	}

	listed := decimal.Zero
	categories := make([]CategoryBreakdownItem, 0, len(bundle.Categories))
	for _, c := range bundle.Categories {
		item := CategoryBreakdownItem{
			CategoryID:    c.ID,
			CategoryName:  c.Name,
			CategoryColor: c.Color,
			CategoryIcon:  c.Icon,
			Amount:        decimal.Zero,
			Limit:         c.Limit,
		}
		if b, ok := byName[c.Name]; ok {
			item.Amount = b.amount
			item.TransactionCount = b.count
			listed = listed.Add(b.amount)
		}
		if total.IsPositive() {
			pct := item.Amount.Mul(decimal.NewFromInt(100)).Div(total)
			item.Percentage, _ = pct.Round(2).Float64()
		}
		categories = append(categories, item)
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Amount.GreaterThan(categories[j].Amount)
	})

	return &GetCategoryBreakdownOutput{
		Period: BreakdownPeriod{
			Period:      input.Period,
			StartDate:   start,
			EndDate:     end,
			PeriodLabel: GeneratePeriodLabel(input.Period, start),
		},
		Currency:       input.Currency,
		TotalExpenses:  total,
		UnlistedAmount: total.Sub(listed),
		Categories:     categories,
		Donut:          BuildDonut(categories),
	}, nil
}

// BuildDonut lays categories with spend end to end as cumulative percentage
// ranges. With no spend it returns one neutral segment covering 0 to 100.
func BuildDonut(categories []CategoryBreakdownItem) []DonutSegment {
	segments := make([]DonutSegment, 0, len(categories))
	current := 0.0
	for _, c := range categories {
		if !c.Amount.IsPositive() {
			continue
		}
		start := current
		current += c.Percentage
		segments = append(segments, DonutSegment{
			CategoryName: c.CategoryName,
			Color:        c.CategoryColor,
			Start:        start,
			End:          current,
		})
	}

	if len(segments) == 0 {
		return []DonutSegment{{Color: EmptyDonutColor, Start: 0, End: 100}}
	}
	return segments
}

func (uc *GetCategoryBreakdownUseCase) applyDefaults(input GetCategoryBreakdownInput, now time.Time) GetCategoryBreakdownInput {
	if input.Period == "" {
		input.Period = PeriodMonth
	}
	if input.Month == 0 {
		input.Month = int(now.Month())
	}
	if input.Year == 0 {
		input.Year = now.Year()
	}
	if input.Currency == "" {
		input.Currency = entity.CurrencyARS
	}
	return input
}

// validateInput validates the input parameters.
func (uc *GetCategoryBreakdownUseCase) validateInput(input GetCategoryBreakdownInput) error {
	if !input.Period.IsValid() {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidPeriod,
			"period must be WEEK, MONTH or YEAR",
			domainerror.ErrInvalidPeriod,
		)
	}

	if input.Month < 1 || input.Month > 12 {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}

	if input.Year < 1970 || input.Year > 9999 {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidYear,
			"year must be between 1970 and 9999",
			domainerror.ErrInvalidYear,
		)
	}

	if !input.Currency.IsValid() {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidAnalyticsCurrency,
			"currency must be ARS or USD",
			domainerror.ErrInvalidAnalyticsCurrency,
		)
	}

	return nil
}
