// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// DefaultCategories returns the categories seeded on first run.
func DefaultCategories() []Category {
	limit := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}

	return []Category{
		{ID: "1", Name: "Housing", Icon: "home", Color: "blue", Limit: limit(80000), Type: CategoryTypeExpense},
		{ID: "2", Name: "Food & Dining", Icon: "restaurant", Color: "orange", Limit: limit(50000), Type: CategoryTypeExpense},
		{ID: "3", Name: "Transport", Icon: "commute", Color: "purple", Limit: limit(20000), Type: CategoryTypeExpense},
		{ID: "4", Name: "Entertainment", Icon: "movie", Color: "pink", Type: CategoryTypeExpense},
		{ID: "5", Name: "Subscriptions", Icon: "subscriptions", Color: "red", Type: CategoryTypeExpense},
		{ID: "6", Name: "Shopping", Icon: "shopping_bag", Color: "teal", Type: CategoryTypeExpense},
		{ID: "7", Name: "Salary", Icon: "work", Color: "emerald", Type: CategoryTypeIncome},
	}
}

// SeedBundle returns the state used when nothing has been persisted yet.
func SeedBundle() *StateBundle {
	return &StateBundle{
		Accounts: []Account{
			{
				ID:         "a1",
				Name:       "Santander Debit",
				Type:       AccountTypeDebit,
				Currency:   CurrencyARS,
				Balance:    decimal.NewFromInt(150000),
				LastDigits: "4242",
				Color:      "blue",
				Icon:       "account_balance",
			},
			{
				ID:       "a2",
				Name:     "Cash Wallet",
				Type:     AccountTypeCash,
				Currency: CurrencyARS,
				Balance:  decimal.NewFromInt(12000),
				Color:    "emerald",
				Icon:     "payments",
			},
			{
				ID:       "a3",
				Name:     "Visa Gold",
				Type:     AccountTypeCredit,
				Currency: CurrencyARS,
				Balance:  decimal.NewFromInt(-45000),
				Color:    "indigo",
				Icon:     "credit_card",
			},
		},
		Transactions: []Transaction{},
		Categories:   DefaultCategories(),
		Savings: []SavingGoal{
			{
				ID:            "s1",
				Name:          "Trip to Japan",
				TargetAmount:  decimal.NewFromInt(5000),
				CurrentAmount: decimal.NewFromInt(1200),
				Currency:      CurrencyUSD,
				Color:         "indigo",
				Icon:          "flight",
			},
		},
		Debts: []Debt{},
	}
}
