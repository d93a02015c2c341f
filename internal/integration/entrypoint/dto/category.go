// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/wealthflow/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name  string           `json:"name" binding:"required,min=1,max=50"`
	Color string           `json:"color,omitempty"`
	Icon  string           `json:"icon,omitempty"`
	Limit *decimal.Decimal `json:"limit,omitempty"`
	Type  string           `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
}

// UpdateCategoryRequest represents the request body for category update.
// Every field is replaced; omitted optional fields fall back to defaults.
type UpdateCategoryRequest struct {
	Name  string           `json:"name" binding:"required,min=1,max=50"`
	Color string           `json:"color,omitempty"`
	Icon  string           `json:"icon,omitempty"`
	Limit *decimal.Decimal `json:"limit,omitempty"`
	Type  string           `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Color            string   `json:"color"`
	Icon             string   `json:"icon"`
	Limit            *string  `json:"limit,omitempty"`
	Type             string   `json:"type"`
	TransactionCount *int     `json:"transaction_count,omitempty"`
	PeriodTotal      *string  `json:"period_total,omitempty"`
	LimitUsage       *float64 `json:"limit_usage,omitempty"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// DeleteCategoryResponse represents the response for deleting a category.
type DeleteCategoryResponse struct {
	Category             CategoryResponse `json:"category"`
	OrphanedTransactions int              `json:"orphaned_transactions"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:    cat.ID,
		Name:  cat.Name,
		Color: cat.Color,
		Icon:  cat.Icon,
		Limit: decimalString(cat.Limit),
		Type:  string(cat.Type),
	}
}

// ToCategoryResponseWithStats converts a CategoryWithStats to a CategoryResponse DTO.
func ToCategoryResponseWithStats(stats *entity.CategoryWithStats) CategoryResponse {
	response := ToCategoryResponse(stats.Category)
	count := stats.TransactionCount
	total := stats.PeriodTotal.String()
	response.TransactionCount = &count
	response.PeriodTotal = &total
	response.LimitUsage = stats.LimitUsage
	return response
}

// ToCategoryListResponse converts a list of CategoryWithStats to CategoryListResponse.
func ToCategoryListResponse(categories []*entity.CategoryWithStats) CategoryListResponse {
	response := CategoryListResponse{
		Categories: make([]CategoryResponse, 0, len(categories)),
	}
	for _, c := range categories {
		response.Categories = append(response.Categories, ToCategoryResponseWithStats(c))
	}
	return response
}
