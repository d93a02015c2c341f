package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/wealthflow/backend/internal/application/usecase/transaction"
	"github.com/wealthflow/backend/internal/application/usecase/voice"
	"github.com/wealthflow/backend/internal/integration/adapters"
)

type VoiceCmd struct {
	Text []string `arg:"" help:"What you spent or earned, e.g. \"spent 2500 on groceries with cash\"."`
	Yes  bool     `help:"Record the draft without asking." short:"y"`
}

func (cmd *VoiceCmd) Run(app *App) error {
	ctx := context.Background()
	uc, err := app.UseCases(ctx)
	if err != nil {
		return err
	}

	out, err := uc.ProcessVoice.Execute(ctx, voice.ProcessVoiceEntryInput{
		Text:    strings.Join(cmd.Text, " "),
		Confirm: cmd.Yes,
	})
	if err != nil {
		return err
	}

	draft := out.Draft
	printInfof(app.Stdout, "%s %s %s on %s (%s) from %s",
		draft.Type, draft.Amount.StringFixed(2), draft.Currency, draft.Merchant, draft.Category, draft.AccountName)

	if out.Applied == nil {
		confirmed, err := app.confirm("Record this transaction?", false)
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !confirmed {
			printInfof(app.Stdout, "Not recorded, rerun with --yes to save it")
			return nil
		}

		out.Applied, err = uc.CreateTransaction.Execute(ctx, transaction.CreateTransactionInput{
			AccountID: draft.AccountID,
			Amount:    draft.Amount,
			Type:      draft.Type,
			Category:  draft.Category,
			Merchant:  draft.Merchant,
			Currency:  draft.Currency,
		})
		if err != nil {
			return err
		}
	}

	printSuccess(app.Stdout, "Recorded")
	return nil
}

type HashPasscodeCmd struct {
	Passcode string `arg:"" help:"Passcode to hash."`
}

func (cmd *HashPasscodeCmd) Run(app *App) error {
	if strings.TrimSpace(cmd.Passcode) == "" {
		return fmt.Errorf("passcode cannot be empty")
	}

	hash, err := adapters.NewPasscodeService().HashPasscode(cmd.Passcode)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(app.Stdout, hash)
	return nil
}
