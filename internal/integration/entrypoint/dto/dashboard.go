// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/wealthflow/backend/internal/application/usecase/dashboard"
)

// CategoryBreakdownItemResponse represents a single category in the breakdown.
type CategoryBreakdownItemResponse struct {
	CategoryID       string  `json:"category_id"`
	CategoryName     string  `json:"category_name"`
	CategoryColor    string  `json:"category_color"`
	CategoryIcon     string  `json:"category_icon"`
	Amount           string  `json:"amount"`
	Percentage       float64 `json:"percentage"`
	TransactionCount int     `json:"transaction_count"`
	Limit            *string `json:"limit,omitempty"`
}

// DonutSegmentResponse represents one slice of the donut chart.
type DonutSegmentResponse struct {
	CategoryName string  `json:"category_name,omitempty"`
	Color        string  `json:"color"`
	Start        float64 `json:"start"`
	End          float64 `json:"end"`
}

// BreakdownPeriodResponse represents the period information.
type BreakdownPeriodResponse struct {
	Period    string `json:"period"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Label     string `json:"label"`
}

// CategoryBreakdownResponse represents the response for category breakdown.
type CategoryBreakdownResponse struct {
	Period         BreakdownPeriodResponse         `json:"period"`
	Currency       string                          `json:"currency"`
	TotalExpenses  string                          `json:"total_expenses"`
	UnlistedAmount string                          `json:"unlisted_amount"`
	Categories     []CategoryBreakdownItemResponse `json:"categories"`
	Donut          []DonutSegmentResponse          `json:"donut"`
}

// ToCategoryBreakdownResponse converts GetCategoryBreakdownOutput to CategoryBreakdownResponse.
func ToCategoryBreakdownResponse(output *dashboard.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	response := CategoryBreakdownResponse{
		Period: BreakdownPeriodResponse{
			Period:    string(output.Period.Period),
			StartDate: output.Period.StartDate.Format("2006-01-02"),
			EndDate:   output.Period.EndDate.Format("2006-01-02"),
			Label:     output.Period.PeriodLabel,
		},
		Currency:       string(output.Currency),
		TotalExpenses:  output.TotalExpenses.String(),
		UnlistedAmount: output.UnlistedAmount.String(),
		Categories:     make([]CategoryBreakdownItemResponse, 0, len(output.Categories)),
		Donut:          make([]DonutSegmentResponse, 0, len(output.Donut)),
	}

	for _, c := range output.Categories {
		response.Categories = append(response.Categories, CategoryBreakdownItemResponse{
			CategoryID:       c.CategoryID,
			CategoryName:     c.CategoryName,
			CategoryColor:    c.CategoryColor,
			CategoryIcon:     c.CategoryIcon,
			Amount:           c.Amount.String(),
			Percentage:       c.Percentage,
			TransactionCount: c.TransactionCount,
			Limit:            decimalString(c.Limit),
		})
	}
	for _, s := range output.Donut {
		response.Donut = append(response.Donut, DonutSegmentResponse{
			CategoryName: s.CategoryName,
			Color:        s.Color,
			Start:        s.Start,
			End:          s.End,
		})
	}

	return response
}
