package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appctx "dentman/internal/core/context"
)

func TestNew_FallsBackToInfoOnBadLevel(t *testing.T) {
	log, err := New(Config{Level: "not-a-level"})
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestWithContext_AddsTraceFields(t *testing.T) {
	log, err := New(Config{Level: "error", Development: true})
	require.NoError(t, err)

	ctx := appctx.WithTrace(context.Background(), appctx.NewTraceContext())

	enriched := log.WithContext(ctx)
	require.NotNil(t, enriched)
	assert.NotSame(t, log, enriched)
}

func TestFromContext_ReturnsStoredLogger(t *testing.T) {
	log, err := New(Config{Level: "error", Development: true})
	require.NoError(t, err)

	ctx := WithLogger(context.Background(), log)
	assert.NotNil(t, FromContext(ctx))
}
