package ledger

import (
	"strings"

	"github.com/wealthflow/backend/internal/domain/entity"
)

// FindAccount returns the account with the given id.
func FindAccount(b *entity.StateBundle, id string) (entity.Account, bool) {
	if i := indexOfAccount(b.Accounts, id); i >= 0 {
		return b.Accounts[i], true
	}
	return entity.Account{}, false
}

// FindSavingGoal returns the saving goal with the given id.
func FindSavingGoal(b *entity.StateBundle, id string) (entity.SavingGoal, bool) {
	if i := indexOfSaving(b.Savings, id); i >= 0 {
		return b.Savings[i], true
	}
	return entity.SavingGoal{}, false
}

// FindDebt returns the debt with the given id.
func FindDebt(b *entity.StateBundle, id string) (entity.Debt, bool) {
	if i := indexOfDebt(b.Debts, id); i >= 0 {
		return b.Debts[i], true
	}
	return entity.Debt{}, false
}

// FindCategory returns the category with the given id.
func FindCategory(b *entity.StateBundle, id string) (entity.Category, bool) {
	for _, c := range b.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Category{}, false
}

// FindCategoryByName returns the category whose name equals name exactly,
// the same join transactions use.
func FindCategoryByName(b *entity.StateBundle, name string) (entity.Category, bool) {
	for _, c := range b.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return entity.Category{}, false
}

// MatchAccountByName returns the first account whose name contains name,
// ignoring case. It falls back to the first account when nothing matches and
// reports false only when there are no accounts at all.
func MatchAccountByName(b *entity.StateBundle, name string) (entity.Account, bool) {
	if len(b.Accounts) == 0 {
		return entity.Account{}, false
	}

	needle := strings.ToLower(strings.TrimSpace(name))
	if needle != "" {
		for _, a := range b.Accounts {
			if strings.Contains(strings.ToLower(a.Name), needle) {
				return a, true
			}
		}
	}

	return b.Accounts[0], true
}

func indexOfAccount(accounts []entity.Account, id string) int {
	for i := range accounts {
		if accounts[i].ID == id {
			return i
		}
	}
	return -1
}

func indexOfSaving(savings []entity.SavingGoal, id string) int {
	for i := range savings {
		if savings[i].ID == id {
			return i
		}
	}
	return -1
}

func indexOfDebt(debts []entity.Debt, id string) int {
	for i := range debts {
		if debts[i].ID == id {
			return i
		}
	}
	return -1
}
