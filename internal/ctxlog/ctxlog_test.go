package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := WithLogger(context.Background(), logger)

	got := FromContext(ctx)
	require.Same(t, logger, got)

	got.Info("grid built", "rows", 10)
	assert.Contains(t, buf.String(), "rows=10")
}

func TestFromContext_Missing(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "ctxlog: logger missing from context", func() {
		FromContext(context.Background())
	})
	assert.NotPanics(t, func() {
		FromContext(Discard(context.Background())).Info("dropped")
	})
}
