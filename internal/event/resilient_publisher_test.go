package event

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleRealms_Go/internal/testing/leaktest"
)

// mockBus is a test double for event.Bus
type mockBus struct {
	mu         sync.Mutex
	calls      []Event
	shouldFail func(attempt int) bool
}

func (m *mockBus) Publish(ctx context.Context, e Event) error {
	m.mu.Lock()
	m.calls = append(m.calls, e)
	n := len(m.calls)
	m.mu.Unlock()

	if m.shouldFail != nil && m.shouldFail(n) {
		return errors.New("mock publish error")
	}
	return nil
}

func (m *mockBus) Subscribe(eventType Type, handler Handler) {}

func (m *mockBus) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func readDeadLetters(t *testing.T, path string) []DeadLetterEntry {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var out []DeadLetterEntry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e DeadLetterEntry
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		out = append(out, e)
	}
	return out
}

func TestResilientPublisher_SuccessfulPublish(t *testing.T) {
	bus := &mockBus{}
	rp := NewResilientPublisher(bus, ResilientConfig{MaxRetries: 3, RetryDelay: time.Millisecond}, nil)

	err := rp.Publish(context.Background(), New(ListingSold, nil))

	require.NoError(t, err)
	require.NoError(t, rp.Shutdown(context.Background()))
	assert.Equal(t, 1, bus.CallCount())
}

func TestResilientPublisher_RetriesUntilSuccess(t *testing.T) {
	// ARRANGE - fail the first two deliveries
	bus := &mockBus{shouldFail: func(n int) bool { return n <= 2 }}
	rp := NewResilientPublisher(bus, ResilientConfig{MaxRetries: 3, RetryDelay: time.Millisecond}, nil)

	// ACT
	err := rp.Publish(context.Background(), New(ListingSold, nil))

	// ASSERT
	require.NoError(t, err, "failures are not surfaced to the caller")
	assert.Eventually(t, func() bool { return bus.CallCount() == 3 }, time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))
	assert.Equal(t, 3, bus.CallCount())
}

func TestResilientPublisher_DeadLettersAfterRetries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dl", "deadletter.jsonl")
	dl, err := NewDeadLetterWriter(path)
	require.NoError(t, err)
	defer dl.Close()

	bus := &mockBus{shouldFail: func(int) bool { return true }}
	rp := NewResilientPublisher(bus, ResilientConfig{Sink: "rabbitmq", MaxRetries: 2, RetryDelay: time.Millisecond}, dl)

	require.NoError(t, rp.Publish(context.Background(), New(AfkSessionCompleted, nil)))
	assert.Eventually(t, func() bool { return bus.CallCount() == 3 }, time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))

	entries := readDeadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, AfkSessionCompleted, entries[0].Event.Type)
	assert.Equal(t, 2, entries[0].Attempts)
	assert.Equal(t, "rabbitmq", entries[0].Sink)
	assert.Equal(t, "mock publish error", entries[0].LastError)
	assert.Equal(t, DeadLetterSchemaVersion, entries[0].SchemaVersion)
}

func TestResilientPublisher_ShutdownDeadLettersPending(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	dl, err := NewDeadLetterWriter(path)
	require.NoError(t, err)
	defer dl.Close()

	bus := &mockBus{shouldFail: func(int) bool { return true }}
	rp := NewResilientPublisher(bus, ResilientConfig{MaxRetries: 5, RetryDelay: time.Hour}, dl)

	require.NoError(t, rp.Publish(context.Background(), New(ChatMessageSent, nil)))
	require.NoError(t, rp.Shutdown(context.Background()))

	entries := readDeadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, 0, entries[0].Attempts)
	assert.Equal(t, 1, bus.CallCount())
}

func TestResilientPublisher_ShutdownStopsRetryWorkers(t *testing.T) {
	leaktest.Verify(t, func() {
		bus := &mockBus{shouldFail: func(int) bool { return true }}
		rp := NewResilientPublisher(bus, ResilientConfig{MaxRetries: 3, RetryDelay: time.Hour}, nil)
		for i := 0; i < 5; i++ {
			require.NoError(t, rp.Publish(context.Background(), New(ListingSold, nil)))
		}
		require.NoError(t, rp.Shutdown(context.Background()))
	})
}

func TestResilientPublisher_Defaults(t *testing.T) {
	rp := NewResilientPublisher(&mockBus{}, ResilientConfig{}, nil)
	assert.Equal(t, DefaultMaxRetries, rp.config.MaxRetries)
	assert.Equal(t, DefaultRetryDelay, rp.config.RetryDelay)
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 2 * time.Second
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 0))
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 1))
	assert.Equal(t, 4*time.Second, CalculateRetryDelay(base, 2))
	assert.Equal(t, 8*time.Second, CalculateRetryDelay(base, 3))
}

func TestDeadLetterWriter_NilError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	dl, err := NewDeadLetterWriter(path)
	require.NoError(t, err)

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	dl.now = func() time.Time { return fixed }

	require.NoError(t, dl.Write(New(ListingCreated, nil), "discord", 1, nil))
	require.NoError(t, dl.Close())

	entries := readDeadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].LastError)
	assert.Equal(t, "discord", entries[0].Sink)
	assert.True(t, fixed.Equal(entries[0].Timestamp))
}

func TestDeadLetterWriter_CreatesNestedDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events", "failed", "deadletter.jsonl")
	dl, err := NewDeadLetterWriter(path)
	require.NoError(t, err)
	require.NoError(t, dl.Close())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
