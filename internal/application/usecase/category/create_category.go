// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/backend/internal/application/state"
	"github.com/wealthflow/backend/internal/domain/entity"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
)

const (
	// MaxCategoryNameLength is the maximum allowed length for category names.
	MaxCategoryNameLength = 50
	// MaxIconLength is the maximum allowed length for icon names.
	MaxIconLength = 50
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name  string
	Color string // Optional, defaults to DefaultCategoryColor
	Icon  string // Optional, defaults to DefaultCategoryIcon
	Limit *decimal.Decimal
	Type  entity.CategoryType // Optional, defaults to expense
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	store *state.Store
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(store *state.Store) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		store: store,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	fields, err := normalizeFields(input.Name, input.Color, input.Icon, input.Limit, input.Type)
	if err != nil {
		return nil, err
	}

	category := entity.NewCategory(fields.name, fields.color, fields.icon, input.Limit, fields.categoryType)

	_, err = uc.store.Mutate(ctx, "create_category", func(current *entity.StateBundle) (*entity.StateBundle, error) {
		if nameTaken(current, category.Name, "") {
			return nil, nameExistsError()
		}
		return uc.store.Engine().AddCategory(current, *category), nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

type categoryFields struct {
	name         string
	color        string
	icon         string
	categoryType entity.CategoryType
}

// normalizeFields validates user input and applies defaults for optional fields.
func normalizeFields(name, color, icon string, limit *decimal.Decimal, categoryType entity.CategoryType) (*categoryFields, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}

	if len(name) > MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}

	if len(icon) > MaxIconLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryFields,
			fmt.Sprintf("icon must not exceed %d characters", MaxIconLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}

	if limit != nil && limit.IsNegative() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryLimit,
			"limit must not be negative",
			domainerror.ErrInvalidCategoryLimit,
		)
	}

	if categoryType == "" {
		categoryType = entity.CategoryTypeExpense
	}
	if !isValidCategoryType(categoryType) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'expense' or 'income'",
			domainerror.ErrInvalidCategoryType,
		)
	}

	if color == "" {
		color = entity.DefaultCategoryColor
	}
	if icon == "" {
		icon = entity.DefaultCategoryIcon
	}

	return &categoryFields{
		name:         name,
		color:        color,
		icon:         icon,
		categoryType: categoryType,
	}, nil
}

// nameTaken reports whether another category already uses name, ignoring case.
func nameTaken(b *entity.StateBundle, name, exceptID string) bool {
	for _, c := range b.Categories {
		if c.ID != exceptID && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

func nameExistsError() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNameExists,
		"a category with this name already exists",
		domainerror.ErrCategoryNameExists,
	)
}

// isValidCategoryType validates the category type.
func isValidCategoryType(categoryType entity.CategoryType) bool {
	return categoryType == entity.CategoryTypeExpense || categoryType == entity.CategoryTypeIncome
}
