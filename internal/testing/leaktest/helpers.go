// Package leaktest checks that components started in a test give back their goroutines.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout = 2 * time.Second
	pollInterval  = 10 * time.Millisecond
)

// Baseline is the goroutine count taken before a component starts.
type Baseline struct {
	t     testing.TB
	count int
}

// Take records the current goroutine count.
func Take(t testing.TB) *Baseline {
	t.Helper()
	runtime.Gosched()
	return &Baseline{t: t, count: runtime.NumGoroutine()}
}

// Check waits for the goroutine count to fall back to the baseline plus slack.
// Background workers such as the feed hub loop or publisher retries exit
// asynchronously, so the count is polled instead of sampled once.
func (b *Baseline) Check(slack int) {
	b.t.Helper()

	limit := b.count + slack
	deadline := time.Now().Add(settleTimeout)
	current := runtime.NumGoroutine()
	for current > limit && time.Now().Before(deadline) {
		time.Sleep(pollInterval)
		runtime.Gosched()
		current = runtime.NumGoroutine()
	}

	if current > limit {
		b.t.Errorf("goroutine leak: baseline=%d current=%d slack=%d", b.count, current, slack)
	}
}

// Verify runs fn between a baseline and a strict check.
func Verify(t testing.TB, fn func()) {
	t.Helper()
	b := Take(t)
	fn()
	b.Check(0)
}
