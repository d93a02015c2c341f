package mock

import (
	"context"
	"sync"

	"github.com/wealthflow/backend/internal/application/adapter"
)

// Transcriber is a scripted adapter.TranscriptionService. Responses are
// returned in the order they were queued; the last one repeats.
type Transcriber struct {
	mu        sync.Mutex
	results   []*adapter.TranscriptionResult
	errs      []error
	requests  []adapter.TranscriptionRequest
	available bool
}

func NewTranscriber() *Transcriber {
	return &Transcriber{available: true}
}

func (t *Transcriber) SetResponse(result *adapter.TranscriptionResult, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.results = append(t.results, result)
	t.errs = append(t.errs, err)
}

func (t *Transcriber) SetAvailable(available bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.available = available
}

func (t *Transcriber) Transcribe(_ context.Context, request *adapter.TranscriptionRequest) (*adapter.TranscriptionResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	index := len(t.requests)
	t.requests = append(t.requests, *request)

	if len(t.results) == 0 {
		return &adapter.TranscriptionResult{}, nil
	}
	if index >= len(t.results) {
		index = len(t.results) - 1
	}
	return t.results[index], t.errs[index]
}

func (t *Transcriber) IsAvailable() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.available
}

// Requests returns what the service was asked so far.
func (t *Transcriber) Requests() []adapter.TranscriptionRequest {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]adapter.TranscriptionRequest(nil), t.requests...)
}
