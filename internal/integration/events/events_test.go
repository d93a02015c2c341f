package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wealthflow/backend/internal/application/adapter"
	"github.com/wealthflow/backend/internal/domain/entity"
)

type recordingPublisher struct {
	events []adapter.StateChangedEvent
	err    error
}

func (r *recordingPublisher) Publish(_ context.Context, event adapter.StateChangedEvent) error {
	r.events = append(r.events, event)
	return r.err
}

func testEvent() adapter.StateChangedEvent {
	return adapter.StateChangedEvent{
		Type:      adapter.EventTypeStateChanged,
		Operation: "create_transaction",
		At:        time.Date(2024, 3, 13, 15, 0, 0, 0, time.UTC),
		Counts:    entity.Counts{Accounts: 3, Transactions: 1, Categories: 7, Savings: 1},
	}
}

func TestFanOut_Publish(t *testing.T) {
	ok := &recordingPublisher{}
	failing := &recordingPublisher{err: errors.New("broker down")}

	fanOut := NewFanOut(ok, nil, failing)

	err := fanOut.Publish(context.Background(), testEvent())
	if err == nil || !strings.Contains(err.Error(), "broker down") {
		t.Errorf("expected joined broker error, got %v", err)
	}
	if len(ok.events) != 1 || len(failing.events) != 1 {
		t.Errorf("expected every publisher to receive the event, got %d and %d", len(ok.events), len(failing.events))
	}
}

func TestEncodeEvent_FlatCounts(t *testing.T) {
	body, err := encodeEvent(testEvent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded["type"] != adapter.EventTypeStateChanged {
		t.Errorf("expected type %s, got %v", adapter.EventTypeStateChanged, decoded["type"])
	}
	if decoded["transactions"] != float64(1) || decoded["categories"] != float64(7) {
		t.Errorf("expected flattened counts, got %v", decoded)
	}
}

func TestHub_Broadcast(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	server := httptest.NewServer(hub)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if hub.ClientCount() != 1 {
		t.Fatalf("expected 1 client, got %d", hub.ClientCount())
	}

	if err := hub.Publish(context.Background(), testEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, message, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read: %v", err)
	}

	var event adapter.StateChangedEvent
	if err := json.Unmarshal(message, &event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.Operation != "create_transaction" || event.Accounts != 3 {
		t.Errorf("unexpected event %+v", event)
	}
}

func TestHub_Stopped(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	served := make(chan struct{}, 2)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeHTTP(w, r)
		served <- struct{}{}
	}))
	defer server.Close()
	url := "ws" + strings.TrimPrefix(server.URL, "http")

	before, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	defer before.Close()
	<-served

	cancel()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("expected Run to return after cancel")
	}

	before.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := before.ReadMessage(); err == nil {
		t.Error("expected the connected client to be closed")
	}

	after, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	defer after.Close()

	select {
	case <-served:
	case <-time.After(2 * time.Second):
		t.Fatal("expected ServeHTTP to return once the hub stopped")
	}

	after.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := after.ReadMessage(); err == nil {
		t.Error("expected a late client to be closed")
	}
	if hub.ClientCount() != 0 {
		t.Errorf("expected no clients, got %d", hub.ClientCount())
	}
}

func TestNewAMQPPublisher_InvalidURL(t *testing.T) {
	if _, err := NewAMQPPublisher("not-a-url", "wealthflow"); err == nil {
		t.Error("expected error for invalid URL")
	}
}
