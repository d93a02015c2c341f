package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewAccount(t *testing.T) {
	target := decimal.NewFromInt(20000)
	limit := decimal.NewFromInt(500000)
	closing, due := 25, 5

	tests := []struct {
		name        string
		fields      AccountFields
		wantBalance int64
		wantTarget  bool
		wantCredit  bool
		wantIcon    string
	}{
		{
			name:        "debit keeps positive balance",
			fields:      AccountFields{Name: "Debit", Type: AccountTypeDebit, Balance: decimal.NewFromInt(1000), TargetAmount: &target, Limit: &limit},
			wantBalance: 1000,
			wantIcon:    "account_balance",
		},
		{
			name:        "credit stores negative balance and card fields",
			fields:      AccountFields{Name: "Visa", Type: AccountTypeCredit, Balance: decimal.NewFromInt(3000), Limit: &limit, ClosingDay: &closing, DueDay: &due},
			wantBalance: -3000,
			wantCredit:  true,
			wantIcon:    "credit_card",
		},
		{
			name:        "loan already negative stays negative",
			fields:      AccountFields{Name: "Mortgage", Type: AccountTypeLoan, Balance: decimal.NewFromInt(-9000), TargetAmount: &target},
			wantBalance: -9000,
			wantTarget:  true,
			wantIcon:    "real_estate_agent",
		},
		{
			name:        "savings keeps target",
			fields:      AccountFields{Name: "Rainy day", Type: AccountTypeSavings, Balance: decimal.NewFromInt(50), TargetAmount: &target, Icon: "umbrella"},
			wantBalance: 50,
			wantTarget:  true,
			wantIcon:    "umbrella",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAccount(tt.fields)

			if a.ID == "" {
				t.Error("expected generated id")
			}
			if !a.Balance.Equal(decimal.NewFromInt(tt.wantBalance)) {
				t.Errorf("expected balance %d, got %s", tt.wantBalance, a.Balance)
			}
			if (a.TargetAmount != nil) != tt.wantTarget {
				t.Errorf("expected target set=%v, got %v", tt.wantTarget, a.TargetAmount)
			}
			if (a.Limit != nil) != tt.wantCredit || (a.ClosingDay != nil) != tt.wantCredit {
				t.Errorf("expected credit fields set=%v", tt.wantCredit)
			}
			if a.Icon != tt.wantIcon {
				t.Errorf("expected icon %s, got %s", tt.wantIcon, a.Icon)
			}
		})
	}
}

func TestStateBundleClone_IsDeep(t *testing.T) {
	original := SeedBundle()
	clone := original.Clone()

	clone.Accounts[0].Balance = decimal.NewFromInt(1)
	*clone.Categories[0].Limit = decimal.NewFromInt(1)
	clone.Savings[0].CurrentAmount = decimal.NewFromInt(1)

	if original.Accounts[0].Balance.Equal(decimal.NewFromInt(1)) {
		t.Error("expected account balance not shared")
	}
	if original.Categories[0].Limit.Equal(decimal.NewFromInt(1)) {
		t.Error("expected category limit not shared")
	}
	if original.Savings[0].CurrentAmount.Equal(decimal.NewFromInt(1)) {
		t.Error("expected saving goal not shared")
	}
}

func TestSeedBundle(t *testing.T) {
	b := SeedBundle()
	counts := b.Counts()

	if counts.Categories != 7 {
		t.Errorf("expected 7 default categories, got %d", counts.Categories)
	}
	if counts.Accounts != 3 || counts.Savings != 1 || counts.Transactions != 0 {
		t.Errorf("unexpected seed counts %+v", counts)
	}
	if !b.Accounts[2].Balance.IsNegative() {
		t.Errorf("expected credit seed to be negative, got %s", b.Accounts[2].Balance)
	}
}

func TestGoalProgress(t *testing.T) {
	s := SavingGoal{TargetAmount: decimal.NewFromInt(5000), CurrentAmount: decimal.NewFromInt(7200)}
	if got := s.Progress(); got != 144 {
		t.Errorf("expected 144, got %v", got)
	}

	d := Debt{TotalAmount: decimal.NewFromInt(8000), RemainingAmount: decimal.NewFromInt(2000)}
	if got := d.PaidProgress(); got != 75 {
		t.Errorf("expected 75, got %v", got)
	}
}
