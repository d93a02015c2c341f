// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealthflow/backend/internal/application/state"
	"github.com/wealthflow/backend/internal/domain/entity"
	domainerror "github.com/wealthflow/backend/internal/domain/error"
	"github.com/wealthflow/backend/internal/domain/ledger"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	AccountID string
	Type      *entity.TransactionType
	Category  string
	// Search matches merchant or category, ignoring case.
	Search string
	// From is inclusive and To is exclusive.
	From  *time.Time
	To    *time.Time
	Page  int
	Limit int
}

// TransactionOutput represents a single transaction in the output.
type TransactionOutput struct {
	ID          string
	AccountID   string
	AccountName string
	// AccountFound is false when AccountID no longer resolves.
	AccountFound bool
	Amount       decimal.Decimal
	Currency     entity.Currency
	Category     string
	Merchant     string
	Time         time.Time
	Type         entity.TransactionType
	Note         string
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// TotalsOutput represents aggregated totals in the output.
type TotalsOutput struct {
	IncomeTotal   decimal.Decimal
	ExpenseTotal  decimal.Decimal
	TransferTotal decimal.Decimal
	NetTotal      decimal.Decimal
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Pagination   PaginationOutput
	Totals       TotalsOutput
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	store *state.Store
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(store *state.Store) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		store: store,
	}
}

// Execute performs the transaction listing. History is already most-recent-first.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.Type != nil && !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense', 'income' or 'transfer'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if input.From != nil && input.To != nil && !input.To.After(*input.From) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"'to' must be after 'from'",
			domainerror.ErrInvalidDateRange,
		)
	}

	// Set default pagination values
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	bundle, err := uc.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(input.Search))
	matched := make([]entity.Transaction, 0, len(bundle.Transactions))
	totals := TotalsOutput{
		IncomeTotal:   decimal.Zero,
		ExpenseTotal:  decimal.Zero,
		TransferTotal: decimal.Zero,
	}

	for _, tx := range bundle.Transactions {
		if !matches(tx, input, search) {
			continue
		}
		matched = append(matched, tx)

		switch tx.Type {
		case entity.TransactionTypeIncome:
			totals.IncomeTotal = totals.IncomeTotal.Add(tx.Amount)
		case entity.TransactionTypeExpense:
			totals.ExpenseTotal = totals.ExpenseTotal.Add(tx.Amount)
		case entity.TransactionTypeTransfer:
			totals.TransferTotal = totals.TransferTotal.Add(tx.Amount)
		}
	}
	totals.NetTotal = totals.IncomeTotal.Sub(totals.ExpenseTotal)

	total := len(matched)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	output := &ListTransactionsOutput{
		Transactions: make([]*TransactionOutput, 0, end-start),
		Pagination: PaginationOutput{
			Page:       page,
			Limit:      limit,
			Total:      int64(total),
			TotalPages: totalPages,
		},
		Totals: totals,
	}

	for _, tx := range matched[start:end] {
		account, found := ledger.FindAccount(bundle, tx.AccountID)
		output.Transactions = append(output.Transactions, toTransactionOutput(tx, account, found))
	}

	return output, nil
}

func matches(tx entity.Transaction, input ListTransactionsInput, search string) bool {
	if input.AccountID != "" && tx.AccountID != input.AccountID {
		return false
	}
	if input.Type != nil && tx.Type != *input.Type {
		return false
	}
	if input.Category != "" && tx.Category != input.Category {
		return false
	}
	if input.From != nil && tx.Time.Before(*input.From) {
		return false
	}
	if input.To != nil && !tx.Time.Before(*input.To) {
		return false
	}
	if search != "" &&
		!strings.Contains(strings.ToLower(tx.Merchant), search) &&
		!strings.Contains(strings.ToLower(tx.Category), search) {
		return false
	}
	return true
}

func toTransactionOutput(tx entity.Transaction, account entity.Account, found bool) *TransactionOutput {
	output := &TransactionOutput{
		ID:           tx.ID,
		AccountID:    tx.AccountID,
		AccountFound: found,
		Amount:       tx.Amount,
		Currency:     tx.Currency,
		Category:     tx.Category,
		Merchant:     tx.Merchant,
		Time:         tx.Time,
		Type:         tx.Type,
		Note:         tx.Note,
	}
	if found {
		output.AccountName = account.Name
	}
	return output
}
