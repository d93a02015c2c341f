// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#3b82f6"

// DefaultCategoryIcon is the default icon for categories.
const DefaultCategoryIcon = "restaurant"

// Category is a user-defined label used to group expense transactions.
// Name is the join key against Transaction.Category; ID is the key for edits.
type Category struct {
	ID    string
	Name  string
	Icon  string
	Color string
	Limit *decimal.Decimal
	Type  CategoryType
}

// NewCategory creates a new Category entity.
// Note: Defaulting logic for color and icon should be applied in the Application layer (UseCase)
// before calling this constructor.
func NewCategory(name, color, icon string, limit *decimal.Decimal, categoryType CategoryType) *Category {
	return &Category{
		ID:    uuid.NewString(),
		Name:  name,
		Color: color,
		Icon:  icon,
		Limit: limit,
		Type:  categoryType,
	}
}

// CategoryWithStats represents a category with spending statistics for a period.
type CategoryWithStats struct {
	Category         *Category
	TransactionCount int
	PeriodTotal      decimal.Decimal
	// LimitUsage is the percentage of Limit consumed, nil when no limit is set.
	LimitUsage *float64
}
