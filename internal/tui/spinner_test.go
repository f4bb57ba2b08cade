package tui

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func TestRunWithSpinnerAccessible(t *testing.T) {
	t.Parallel()

	parent := context.WithValue(context.Background(), ctxKey{}, "corr-1")
	var seen any
	err := RunWithSpinner(parent, &bytes.Buffer{}, "Generating themes...", true, func(ctx context.Context) error {
		seen = ctx.Value(ctxKey{})
		return ctx.Err()
	})
	require.NoError(t, err)
	assert.Equal(t, "corr-1", seen)
}

func TestRunWithSpinnerReturnsActionError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	err := RunWithSpinner(context.Background(), &bytes.Buffer{}, "Generating themes...", true, func(context.Context) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
}

func TestRunWithSpinnerCancelsActionWithParent(t *testing.T) {
	t.Parallel()

	parent, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunWithSpinner(parent, &bytes.Buffer{}, "Generating themes...", true, func(ctx context.Context) error {
		return ctx.Err()
	})
	require.ErrorIs(t, err, context.Canceled)
}
