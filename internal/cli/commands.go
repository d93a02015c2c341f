package cli

// Globals defines global flags available to all commands.
type Globals struct {
	Debug bool `help:"Log debug output to stderr."`
}

type Commands struct {
	Globals

	Balances      BalancesCmd      `cmd:"" help:"Show totals per currency."`
	Accounts      AccountsCmd      `cmd:"" help:"List accounts, savings goals and debts."`
	Transactions  TransactionsCmd  `cmd:"" help:"List recent transactions."`
	Add           AddCmd           `cmd:"" help:"Record an income or expense."`
	Transfer      TransferCmd      `cmd:"" help:"Move money from an account to an account, saving or debt."`
	PayCard       PayCardCmd       `cmd:"" name:"pay-card" help:"Pay off a credit card balance."`
	New           NewCmd           `cmd:"" help:"Create an account, saving goal or debt."`
	DeleteAccount DeleteAccountCmd `cmd:"" name:"delete-account" help:"Delete an account. Its transactions are kept."`
	Categories    CategoriesCmd    `cmd:"" help:"Manage categories."`
	Analytics     AnalyticsCmd     `cmd:"" help:"Show expense breakdown by category."`
	Voice         VoiceCmd         `cmd:"" help:"Record a transaction from a spoken sentence."`
	HashPasscode  HashPasscodeCmd  `cmd:"" name:"hash-passcode" help:"Print the bcrypt hash for APP_PASSCODE_HASH."`
}
