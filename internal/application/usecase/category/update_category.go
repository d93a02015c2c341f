// Package category contains category-related use cases.
package category

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/backend/internal/application/state"
	"github.com/wealthflow/backend/internal/domain/entity"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
	"github.com/wealthflow/backend/internal/domain/ledger"
)

// UpdateCategoryInput represents the input for category update.
// It is a full replacement: a nil Limit clears the limit.
type UpdateCategoryInput struct {
	ID    string
	Name  string
	Color string
	Icon  string
	Limit *decimal.Decimal
	Type  entity.CategoryType
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
	// PreviousName is set when the update renamed the category. Historical
	// transactions keep this name.
	PreviousName string
	// OrphanedTransactions counts history entries still labelled with PreviousName.
	OrphanedTransactions int
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	store *state.Store
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(store *state.Store) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		store: store,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	fields, err := normalizeFields(input.Name, input.Color, input.Icon, input.Limit, input.Type)
	if err != nil {
		return nil, err
	}

	updated := &entity.Category{
		ID:    input.ID,
		Name:  fields.name,
		Color: fields.color,
		Icon:  fields.icon,
		Limit: input.Limit,
		Type:  fields.categoryType,
	}
	output := &UpdateCategoryOutput{Category: updated}

	_, err = uc.store.Mutate(ctx, "update_category", func(current *entity.StateBundle) (*entity.StateBundle, error) {
		existing, ok := ledger.FindCategory(current, input.ID)
		if !ok {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		if nameTaken(current, updated.Name, input.ID) {
			return nil, nameExistsError()
		}
		if existing.Name != updated.Name {
			output.PreviousName = existing.Name
			for _, tx := range current.Transactions {
				if tx.Category == existing.Name {
					output.OrphanedTransactions++
				}
			}
		}
		return uc.store.Engine().EditCategory(current, *updated), nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}
