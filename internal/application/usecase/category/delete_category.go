// Package category contains category-related use cases.
package category

import (
	"context"

	"github.com/wealthflow/backend/internal/application/state"
	"github.com/wealthflow/backend/internal/domain/entity"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
	"github.com/wealthflow/backend/internal/domain/ledger"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	ID string
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	Category entity.Category
	// OrphanedTransactions counts history entries still labelled with the deleted name.
	OrphanedTransactions int
}

// DeleteCategoryUseCase handles category deletion logic.
type DeleteCategoryUseCase struct {
	store *state.Store
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(store *state.Store) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		store: store,
	}
}

// Execute performs the category deletion. Transactions are not relabelled.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	output := &DeleteCategoryOutput{}

	_, err := uc.store.Mutate(ctx, "delete_category", func(current *entity.StateBundle) (*entity.StateBundle, error) {
		category, ok := ledger.FindCategory(current, input.ID)
		if !ok {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		output.Category = category

		for _, tx := range current.Transactions {
			if tx.Category == category.Name {
				output.OrphanedTransactions++
			}
		}

		return uc.store.Engine().DeleteCategory(current, input.ID), nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}
