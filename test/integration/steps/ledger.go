package steps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/wealthflow/backend/config"
	"github.com/wealthflow/backend/internal/application/adapter"
	"github.com/wealthflow/backend/internal/integration/persistence/model"
)

const testSessionSecret = "integration-session-secret"

// registerLedgerSteps registers storage, clock and collaborator steps.
func registerLedgerSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the ledger is stored in "(memory|sqlite|redis)"$`, theLedgerIsStoredIn)
	ctx.Step(`^the stored ledger contains:$`, theStoredLedgerContains)
	ctx.Step(`^the stored ledger should have (\d+) (accounts|transactions|categories|savings|debts)$`, theStoredLedgerShouldHave)
	ctx.Step(`^the application restarts$`, theApplicationRestarts)
	ctx.Step(`^the current time is "([^"]*)"$`, theCurrentTimeIs)
	ctx.Step(`^the app lock passcode is "([^"]*)"$`, theAppLockPasscodeIs)
	ctx.Step(`^I unlock the app with passcode "([^"]*)"$`, iUnlockTheAppWithPasscode)
	ctx.Step(`^the transcriber returns:$`, theTranscriberReturns)
	ctx.Step(`^the transcriber times out$`, theTranscriberTimesOut)
	ctx.Step(`^the transcriber is unavailable$`, theTranscriberIsUnavailable)
	ctx.Step(`^the transcriber should have been called (\d+) times?$`, theTranscriberShouldHaveBeenCalled)
}

func theLedgerIsStoredIn(ctx context.Context, backend string) error {
	tc := GetTestContext(ctx)
	if tc.server != nil {
		return fmt.Errorf("storage must be chosen before the first request")
	}
	tc.backend = backend
	return nil
}

// theStoredLedgerContains writes a raw blob straight into the backend.
func theStoredLedgerContains(ctx context.Context, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	raw := body.Content
	if tc.storage == nil {
		storage, err := tc.openStorage()
		if err != nil {
			return err
		}
		tc.storage = storage
	}

	key := tc.cfg.Storage.Key
	switch {
	case tc.db != nil:
		blob := &model.StateBlobModel{Key: key, Data: raw, UpdatedAt: time.Now().UTC()}
		return tc.db.DbConn.Save(blob).Error
	case tc.redis != nil:
		return tc.redis.Set(ctx, key, raw, 0).Err()
	}
	return fmt.Errorf("backend %q has no raw storage", tc.backend)
}

func theStoredLedgerShouldHave(ctx context.Context, count int, collection string) error {
	tc := GetTestContext(ctx)
	if tc.storage == nil {
		return fmt.Errorf("nothing was stored yet")
	}

	bundle, err := tc.storage.Repository.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load stored ledger: %w", err)
	}

	counts := bundle.Counts()
	actual := map[string]int{
		"accounts":     counts.Accounts,
		"transactions": counts.Transactions,
		"categories":   counts.Categories,
		"savings":      counts.Savings,
		"debts":        counts.Debts,
	}[collection]
	if actual != count {
		return fmt.Errorf("expected %d stored %s, got %d", count, collection, actual)
	}
	return nil
}

// theApplicationRestarts rebuilds the application over the same storage.
func theApplicationRestarts(ctx context.Context) error {
	tc := GetTestContext(ctx)
	tc.stopServer()
	return tc.startServer(ctx)
}

func theCurrentTimeIs(ctx context.Context, value string) error {
	tc := GetTestContext(ctx)
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	tc.clock.SetCurrentTime(now)
	return nil
}

func theAppLockPasscodeIs(ctx context.Context, passcode string) error {
	tc := GetTestContext(ctx)
	if tc.server != nil {
		return fmt.Errorf("the app lock must be configured before the first request")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.MinCost)
	if err != nil {
		return err
	}
	tc.cfg.Lock = config.LockConfig{
		PasscodeHash:    string(hash),
		TokenSecret:     testSessionSecret,
		SessionDuration: time.Hour,
	}
	return nil
}

func iUnlockTheAppWithPasscode(ctx context.Context, passcode string) error {
	tc := GetTestContext(ctx)

	payload, _ := json.Marshal(map[string]string{"passcode": passcode})
	if err := tc.executeRequest(ctx, "POST", "/api/v1/session", payload); err != nil {
		return err
	}
	if err := theResponseStatusShouldBe(ctx, 200); err != nil {
		return err
	}

	token, err := responseField(ctx, "token")
	if err != nil {
		return err
	}
	tc.accessToken = fmt.Sprintf("%v", token)
	return nil
}

type transcriptionFixture struct {
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	AccountName string `json:"account_name"`
	Merchant    string `json:"merchant"`
}

func theTranscriberReturns(ctx context.Context, body *godog.DocString) error {
	tc := GetTestContext(ctx)

	var fixture transcriptionFixture
	if err := json.Unmarshal([]byte(body.Content), &fixture); err != nil {
		return fmt.Errorf("invalid transcription fixture: %w", err)
	}
	amount, err := decimal.NewFromString(fixture.Amount)
	if err != nil {
		return fmt.Errorf("invalid fixture amount %q: %w", fixture.Amount, err)
	}

	tc.transcriber.SetResponse(&adapter.TranscriptionResult{
		Amount:      amount,
		Type:        fixture.Type,
		Category:    fixture.Category,
		AccountName: fixture.AccountName,
		Merchant:    fixture.Merchant,
	}, nil)
	return nil
}

func theTranscriberTimesOut(ctx context.Context) error {
	tc := GetTestContext(ctx)
	tc.transcriber.SetResponse(nil, fmt.Errorf("generate content: %w", context.DeadlineExceeded))
	return nil
}

func theTranscriberIsUnavailable(ctx context.Context) error {
	tc := GetTestContext(ctx)
	tc.transcriber.SetAvailable(false)
	return nil
}

func theTranscriberShouldHaveBeenCalled(ctx context.Context, times int) error {
	tc := GetTestContext(ctx)
	requests := tc.transcriber.Requests()
	if len(requests) != times {
		return fmt.Errorf("expected %d transcription requests, got %d", times, len(requests))
	}
	for _, request := range requests {
		if len(request.AccountNames) == 0 {
			return errors.New("transcription request carried no account names")
		}
	}
	return nil
}
