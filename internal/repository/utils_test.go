package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/IdleRealms_Go/internal/domain"
)

type fakeTx struct {
	rollbackErr error
	rollbacks   int
}

func (f *fakeTx) Commit(ctx context.Context) error { return nil }

func (f *fakeTx) Rollback(ctx context.Context) error {
	f.rollbacks++
	return f.rollbackErr
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestSafeRollback(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantLog bool
	}{
		{"rolled back", nil, false},
		{"already committed", domain.ErrTxClosed, false},
		{"wrapped closed", fmt.Errorf("ledger: %w", domain.ErrTxClosed), false},
		{"connection lost", errors.New("conn reset"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)
			tx := &fakeTx{rollbackErr: tt.err}

			SafeRollback(context.Background(), tx)

			assert.Equal(t, 1, tx.rollbacks)
			if tt.wantLog {
				assert.Contains(t, logs.String(), "Failed to rollback transaction")
			} else {
				assert.Empty(t, logs.String())
			}
		})
	}
}
