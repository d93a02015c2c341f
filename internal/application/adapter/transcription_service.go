// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// TranscriptionRequest carries free text plus the names the model may pick from.
type TranscriptionRequest struct {
	Text          string
	AccountNames  []string
	CategoryNames []string
}

// TranscriptionResult is a best-effort structured guess of a spoken transaction.
// Amount and Type are the only fields a service must fill.
type TranscriptionResult struct {
	Amount      decimal.Decimal
	Type        string
	Category    string
	AccountName string
	Merchant    string
}

// TranscriptionService turns natural language into a transaction guess.
type TranscriptionService interface {
	// Transcribe parses the text into a TranscriptionResult.
	Transcribe(ctx context.Context, request *TranscriptionRequest) (*TranscriptionResult, error)

	// IsAvailable checks if the service is properly configured.
	IsAvailable() bool
}
