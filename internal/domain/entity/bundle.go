// Package entity defines the core business entities for the domain layer.
package entity

// StateBundle is the full collection set persisted as one blob.
// Transactions are ordered most-recent-first.
type StateBundle struct {
	Accounts     []Account
	Transactions []Transaction
	Categories   []Category
	Savings      []SavingGoal
	Debts        []Debt
}

// Clone returns a deep copy of the bundle. Pointer fields are copied by value
// so the clone shares no mutable memory with b.
func (b *StateBundle) Clone() *StateBundle {
	if b == nil {
		return nil
	}

	clone := &StateBundle{
		Accounts:     make([]Account, len(b.Accounts)),
		Transactions: make([]Transaction, len(b.Transactions)),
		Savings:      make([]SavingGoal, len(b.Savings)),
		Debts:        make([]Debt, len(b.Debts)),
	}

	for i, a := range b.Accounts {
		a.TargetAmount = cloneDecimal(a.TargetAmount)
		a.Limit = cloneDecimal(a.Limit)
		a.ClosingDay = cloneInt(a.ClosingDay)
		a.DueDay = cloneInt(a.DueDay)
		clone.Accounts[i] = a
	}
	copy(clone.Transactions, b.Transactions)
	// nil Categories means none were ever stored; Load seeds the defaults then.
	if b.Categories != nil {
		clone.Categories = make([]Category, len(b.Categories))
	}
	for i, c := range b.Categories {
		c.Limit = cloneDecimal(c.Limit)
		clone.Categories[i] = c
	}
	copy(clone.Savings, b.Savings)
	copy(clone.Debts, b.Debts)

	return clone
}

// Counts summarizes the bundle size for logs and events.
type Counts struct {
	Accounts     int `json:"accounts"`
	Transactions int `json:"transactions"`
	Categories   int `json:"categories"`
	Savings      int `json:"savings"`
	Debts        int `json:"debts"`
}

// Counts returns the number of entities in each collection.
func (b *StateBundle) Counts() Counts {
	return Counts{
		Accounts:     len(b.Accounts),
		Transactions: len(b.Transactions),
		Categories:   len(b.Categories),
		Savings:      len(b.Savings),
		Debts:        len(b.Debts),
	}
}
