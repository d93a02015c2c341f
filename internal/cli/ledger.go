package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wealthflow/backend/internal/application/usecase/transaction"
	"github.com/wealthflow/backend/internal/application/usecase/transfer"
	"github.com/wealthflow/backend/internal/application/usecase/wallet"
	"github.com/wealthflow/backend/internal/domain/entity"
	"github.com/wealthflow/backend/internal/domain/ledger"
)

type BalancesCmd struct{}

func (cmd *BalancesCmd) Run(app *App) error {
	ctx := context.Background()
	uc, err := app.UseCases(ctx)
	if err != nil {
		return err
	}

	overview, err := uc.GetOverview.Execute(ctx)
	if err != nil {
		return err
	}

	printHeader(app.Stdout, "Totals")
	for _, total := range overview.Totals {
		_, _ = fmt.Fprintf(app.Stdout, "  %-4s %s  (assets %s, liabilities %s)\n",
			total.Currency,
			formatMoney(total.Balance, string(total.Currency)),
			total.Assets.StringFixed(2),
			total.Liabilities.StringFixed(2),
		)
	}
	if overview.NegativeCount > 0 {
		printInfof(app.Stdout, "%d account(s) below zero", overview.NegativeCount)
	}
	return nil
}

type AccountsCmd struct{}

func (cmd *AccountsCmd) Run(app *App) error {
	ctx := context.Background()
	uc, err := app.UseCases(ctx)
	if err != nil {
		return err
	}

	items, err := uc.ListItems.Execute(ctx)
	if err != nil {
		return err
	}

	printHeader(app.Stdout, "Accounts")
	for _, a := range items.Accounts {
		_, _ = fmt.Fprintf(app.Stdout, "  %-38s %-24s %-8s %s\n",
			mutedStyle.Render(a.ID), a.Name, a.Type, formatMoney(a.Balance, string(a.Currency)))
	}

	if len(items.Savings) > 0 {
		printHeader(app.Stdout, "Savings")
		for _, s := range items.Savings {
			_, _ = fmt.Fprintf(app.Stdout, "  %-38s %-24s %s / %s %s\n",
				mutedStyle.Render(s.ID), s.Name, s.CurrentAmount.StringFixed(2), s.TargetAmount.StringFixed(2), s.Currency)
		}
	}

	if len(items.Debts) > 0 {
		printHeader(app.Stdout, "Debts")
		for _, d := range items.Debts {
			_, _ = fmt.Fprintf(app.Stdout, "  %-38s %-24s %s of %s %s left\n",
				mutedStyle.Render(d.ID), d.Name, d.RemainingAmount.StringFixed(2), d.TotalAmount.StringFixed(2), d.Currency)
		}
	}
	return nil
}

type TransactionsCmd struct {
	Limit    int    `help:"Number of transactions to show." default:"20" short:"n"`
	Account  string `help:"Only show transactions of this account ID."`
	Category string `help:"Only show transactions of this category."`
	Search   string `help:"Match merchant, note or category."`
}

func (cmd *TransactionsCmd) Run(app *App) error {
	ctx := context.Background()
	uc, err := app.UseCases(ctx)
	if err != nil {
		return err
	}

	list, err := uc.ListTransactions.Execute(ctx, transaction.ListTransactionsInput{
		AccountID: cmd.Account,
		Category:  cmd.Category,
		Search:    cmd.Search,
		Page:      1,
		Limit:     cmd.Limit,
	})
	if err != nil {
		return err
	}

	if len(list.Transactions) == 0 {
		printInfof(app.Stdout, "No transactions")
		return nil
	}

	for _, tx := range list.Transactions {
		amount := tx.Amount
		if tx.Type == entity.TransactionTypeExpense {
			amount = amount.Neg()
		}
		account := tx.AccountName
		if !tx.AccountFound {
			account = mutedStyle.Render("(deleted account)")
		}
		_, _ = fmt.Fprintf(app.Stdout, "  %s  %-24s %-18s %-20s %s\n",
			tx.Time.Local().Format("2006-01-02 15:04"),
			tx.Merchant,
			tx.Category,
			account,
			formatMoney(amount, string(tx.Currency)),
		)
	}
	printInfof(app.Stdout, "%d of %d transaction(s), net %s",
		len(list.Transactions), list.Pagination.Total, list.Totals.NetTotal.StringFixed(2))
	return nil
}

type AddCmd struct {
	Amount   Amount `arg:"" help:"Positive amount."`
	Account  string `help:"Account ID." required:""`
	Type     string `help:"expense or income." enum:"expense,income" default:"expense"`
	Category string `help:"Category name." default:"Other"`
	Merchant string `help:"Merchant or description." required:""`
	Currency string `help:"Currency code." enum:"ARS,USD" default:"ARS"`
	Note     string `help:"Free-form note."`
	Date     string `help:"Date as YYYY-MM-DD. Defaults to now."`
}

func (cmd *AddCmd) Run(app *App) error {
	ctx := context.Background()
	uc, err := app.UseCases(ctx)
	if err != nil {
		return err
	}

	var when time.Time
	if cmd.Date != "" {
		when, err = time.ParseInLocation("2006-01-02", cmd.Date, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", cmd.Date)
		}
	}

	out, err := uc.CreateTransaction.Execute(ctx, transaction.CreateTransactionInput{
		AccountID: cmd.Account,
		Amount:    cmd.Amount.Value,
		Type:      entity.TransactionType(cmd.Type),
		Category:  cmd.Category,
		Merchant:  cmd.Merchant,
		Currency:  entity.Currency(cmd.Currency),
		Time:      when,
		Note:      cmd.Note,
	})
	if err != nil {
		return err
	}

	printSuccess(app.Stdout, fmt.Sprintf("Recorded %s %s at %s",
		out.Transaction.Type, formatMoney(out.Transaction.Amount, string(out.Transaction.Currency)), out.Transaction.Merchant))
	if out.AccountBalance != nil {
		printInfof(app.Stdout, "%s balance: %s", out.Transaction.AccountName,
			formatMoney(*out.AccountBalance, string(out.Transaction.Currency)))
	}
	return nil
}

type TransferCmd struct {
	Amount Amount `arg:"" help:"Positive amount."`
	From   string `help:"Source account ID." required:""`
	To     string `help:"Target ID." required:""`
	Kind   string `help:"Target kind." enum:"account,saving,debt" default:"account"`
}

func (cmd *TransferCmd) Run(app *App) error {
	ctx := context.Background()
	uc, err := app.UseCases(ctx)
	if err != nil {
		return err
	}

	out, err := uc.TransferFunds.Execute(ctx, transfer.TransferFundsInput{
		SourceAccountID: cmd.From,
		TargetID:        cmd.To,
		TargetType:      ledger.TargetType(cmd.Kind),
		Amount:          cmd.Amount.Value,
	})
	if err != nil {
		return err
	}

	printTransfer(app, out)
	return nil
}

type PayCardCmd struct {
	Card string `arg:"" help:"Credit card account ID."`
	From string `help:"Paying account ID." required:""`
}

func (cmd *PayCardCmd) Run(app *App) error {
	ctx := context.Background()
	uc, err := app.UseCases(ctx)
	if err != nil {
		return err
	}

	out, err := uc.PayCard.Execute(ctx, transfer.PayCardInput{
		CardAccountID:   cmd.Card,
		SourceAccountID: cmd.From,
	})
	if err != nil {
		return err
	}

	printTransfer(app, out)
	return nil
}

func printTransfer(app *App, out *transfer.TransferFundsOutput) {
	printSuccess(app.Stdout, fmt.Sprintf("Transferred %s to %s",
		formatMoney(out.Transaction.Amount, string(out.Transaction.Currency)), out.Target.Name))
	printInfof(app.Stdout, "Source balance: %s", formatMoney(out.SourceBalance, string(out.Transaction.Currency)))
	printInfof(app.Stdout, "%s now at %s", out.Target.Name, out.Target.Amount.StringFixed(2))
}

type NewCmd struct {
	Account NewAccountCmd `cmd:"" help:"Create an account."`
	Saving  NewSavingCmd  `cmd:"" help:"Create a saving goal."`
	Debt    NewDebtCmd    `cmd:"" help:"Create a debt."`
}

type NewAccountCmd struct {
	Name       string `arg:"" help:"Account name."`
	Type       string `help:"Account type." enum:"Debit,Credit,Cash,Savings,Loan" default:"Debit"`
	Currency   string `help:"Currency code." enum:"ARS,USD" default:"ARS"`
	Balance    Amount `help:"Opening balance."`
	LastDigits string `help:"Last four digits of the card." name:"last-digits"`
	Target     Amount `help:"Target amount for Savings or Loan accounts."`
	Limit      Amount `help:"Credit limit."`
	ClosingDay int    `help:"Statement closing day (1-31)." name:"closing-day"`
	DueDay     int    `help:"Payment due day (1-31)." name:"due-day"`
	Color      string `help:"Display color."`
	Icon       string `help:"Display icon."`
}

func (cmd *NewAccountCmd) Run(app *App) error {
	draft := wallet.AccountDraft{
		Name:         cmd.Name,
		Type:         entity.AccountType(cmd.Type),
		Currency:     entity.Currency(cmd.Currency),
		Balance:      cmd.Balance.Value,
		LastDigits:   cmd.LastDigits,
		Color:        cmd.Color,
		Icon:         cmd.Icon,
		TargetAmount: cmd.Target.ptr(),
		Limit:        cmd.Limit.ptr(),
		ClosingDay:   optionalDay(cmd.ClosingDay),
		DueDay:       optionalDay(cmd.DueDay),
	}
	return createItem(app, draft)
}

type NewSavingCmd struct {
	Name     string `arg:"" help:"Goal name."`
	Target   Amount `help:"Target amount. Defaults to 100."`
	Current  Amount `help:"Amount already saved."`
	Currency string `help:"Currency code." enum:"ARS,USD" default:"ARS"`
	Color    string `help:"Display color."`
	Icon     string `help:"Display icon."`
}

func (cmd *NewSavingCmd) Run(app *App) error {
	return createItem(app, wallet.SavingDraft{
		Name:          cmd.Name,
		Currency:      entity.Currency(cmd.Currency),
		TargetAmount:  cmd.Target.Value,
		CurrentAmount: cmd.Current.Value,
		Color:         cmd.Color,
		Icon:          cmd.Icon,
	})
}

type NewDebtCmd struct {
	Name     string `arg:"" help:"Debt name."`
	Total    Amount `help:"Total owed. Defaults to 100."`
	Currency string `help:"Currency code." enum:"ARS,USD" default:"ARS"`
	Color    string `help:"Display color."`
	Icon     string `help:"Display icon."`
}

func (cmd *NewDebtCmd) Run(app *App) error {
	return createItem(app, wallet.DebtDraft{
		Name:        cmd.Name,
		Currency:    entity.Currency(cmd.Currency),
		TotalAmount: cmd.Total.Value,
		Color:       cmd.Color,
		Icon:        cmd.Icon,
	})
}

func createItem(app *App, draft wallet.ItemDraft) error {
	ctx := context.Background()
	uc, err := app.UseCases(ctx)
	if err != nil {
		return err
	}

	out, err := uc.CreateItem.Execute(ctx, draft)
	if err != nil {
		return err
	}

	switch out.Kind {
	case wallet.ItemKindAccount:
		printSuccess(app.Stdout, fmt.Sprintf("Created account %s (%s)", out.Account.Name, out.Account.ID))
	case wallet.ItemKindSaving:
		printSuccess(app.Stdout, fmt.Sprintf("Created saving goal %s (%s)", out.Saving.Name, out.Saving.ID))
	case wallet.ItemKindDebt:
		printSuccess(app.Stdout, fmt.Sprintf("Created debt %s (%s)", out.Debt.Name, out.Debt.ID))
	}
	return nil
}

func optionalDay(day int) *int {
	if day == 0 {
		return nil
	}
	return &day
}

type DeleteAccountCmd struct {
	ID  string `arg:"" help:"Account ID."`
	Yes bool   `help:"Delete without asking." short:"y"`
}

func (cmd *DeleteAccountCmd) Run(app *App) error {
	ctx := context.Background()
	uc, err := app.UseCases(ctx)
	if err != nil {
		return err
	}

	confirmed, err := app.confirm(fmt.Sprintf("Delete account %q? Its transactions stay in the history.", cmd.ID), cmd.Yes)
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !confirmed {
		printInfof(app.Stdout, "Aborted")
		return nil
	}

	out, err := uc.DeleteAccount.Execute(ctx, wallet.DeleteAccountInput{AccountID: strings.TrimSpace(cmd.ID)})
	if err != nil {
		return err
	}

	printSuccess(app.Stdout, fmt.Sprintf("Deleted account %s", out.Account.Name))
	if out.RetainedTransactions > 0 {
		printInfof(app.Stdout, "%d transaction(s) kept without an account", out.RetainedTransactions)
	}
	return nil
}
