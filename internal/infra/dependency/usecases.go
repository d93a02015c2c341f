package dependency

import (
	"time"

	"github.com/wealthflow/backend/config"
	"github.com/wealthflow/backend/internal/application/adapter"
	"github.com/wealthflow/backend/internal/application/state"
	"github.com/wealthflow/backend/internal/application/usecase/category"
	"github.com/wealthflow/backend/internal/application/usecase/dashboard"
	"github.com/wealthflow/backend/internal/application/usecase/session"
	"github.com/wealthflow/backend/internal/application/usecase/transaction"
	"github.com/wealthflow/backend/internal/application/usecase/transfer"
	"github.com/wealthflow/backend/internal/application/usecase/voice"
	"github.com/wealthflow/backend/internal/application/usecase/wallet"
	"github.com/wealthflow/backend/internal/integration/adapters"
)

// UseCases groups every ledger operation so the API and CLI share one wiring.
type UseCases struct {
	CreateTransaction *transaction.CreateTransactionUseCase
	ListTransactions  *transaction.ListTransactionsUseCase
	TransferFunds     *transfer.TransferFundsUseCase
	PayCard           *transfer.PayCardUseCase
	CreateItem        *wallet.CreateItemUseCase
	DeleteAccount     *wallet.DeleteAccountUseCase
	GetOverview       *wallet.GetOverviewUseCase
	ListItems         *wallet.ListItemsUseCase
	ListCategories    *category.ListCategoriesUseCase
	CreateCategory    *category.CreateCategoryUseCase
	UpdateCategory    *category.UpdateCategoryUseCase
	DeleteCategory    *category.DeleteCategoryUseCase
	CategoryBreakdown *dashboard.GetCategoryBreakdownUseCase
	ProcessVoice      *voice.ProcessVoiceEntryUseCase
	Unlock            *session.UnlockUseCase
}

// NewUseCases builds the use cases over store. A nil transcriber falls back to
// the Gemini service from cfg, a nil now to time.Now. tokenService is nil when
// the app lock is off.
func NewUseCases(
	cfg *config.Config,
	store *state.Store,
	transcriber adapter.TranscriptionService,
	tokenService adapter.TokenService,
	now func() time.Time,
) *UseCases {
	if transcriber == nil {
		transcriber = adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	}
	if now == nil {
		now = time.Now
	}

	createTransaction := transaction.NewCreateTransactionUseCase(store)
	transferFunds := transfer.NewTransferFundsUseCase(store)

	return &UseCases{
		CreateTransaction: createTransaction,
		ListTransactions:  transaction.NewListTransactionsUseCase(store),
		TransferFunds:     transferFunds,
		PayCard:           transfer.NewPayCardUseCase(store, transferFunds),
		CreateItem:        wallet.NewCreateItemUseCase(store),
		DeleteAccount:     wallet.NewDeleteAccountUseCase(store),
		GetOverview:       wallet.NewGetOverviewUseCase(store),
		ListItems:         wallet.NewListItemsUseCase(store),
		ListCategories:    category.NewListCategoriesUseCase(store),
		CreateCategory:    category.NewCreateCategoryUseCase(store),
		UpdateCategory:    category.NewUpdateCategoryUseCase(store),
		DeleteCategory:    category.NewDeleteCategoryUseCase(store),
		CategoryBreakdown: dashboard.NewGetCategoryBreakdownUseCase(store, now),
		ProcessVoice:      voice.NewProcessVoiceEntryUseCase(store, transcriber, createTransaction),
		Unlock:            session.NewUnlockUseCase(cfg.Lock.PasscodeHash, adapters.NewPasscodeService(), tokenService),
	}
}
