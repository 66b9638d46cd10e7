package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithContext(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	newCtx := WithContext(ctx, logger)
	retrieved := FromContext(newCtx)

	assert.Equal(t, logger, retrieved)
}

func TestFromContext_NotFound(t *testing.T) {
	ctx := context.Background()
	retrieved := FromContext(ctx)

	// Should return a no-op logger, not nil
	require.NotNil(t, retrieved)
}

func TestWithRequestID(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	requestID := "req-123"

	newCtx, newLogger := WithRequestID(ctx, logger, requestID)

	assert.NotNil(t, newLogger)
	assert.Equal(t, requestID, GetRequestID(newCtx))
}

func TestWithUserID(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	userID := "user-456"

	newCtx, newLogger := WithUserID(ctx, logger, userID)

	assert.NotNil(t, newLogger)
	assert.Equal(t, userID, GetUserID(newCtx))
}

func TestGetRequestID_NotFound(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestGetUserID_NotFound(t *testing.T) {
	assert.Empty(t, GetUserID(context.Background()))
}

func TestContextChaining(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	ctx, logger = WithRequestID(ctx, logger, "req-1")
	ctx, logger = WithUserID(ctx, logger, "user-1")

	assert.Equal(t, "req-1", GetRequestID(ctx))
	assert.Equal(t, "user-1", GetUserID(ctx))
	assert.Same(t, logger, FromContext(ctx))
}

func TestContextKeys(t *testing.T) {
	// Keys must be distinct
	assert.NotEqual(t, LoggerKey, RequestIDKey)
	assert.NotEqual(t, RequestIDKey, UserIDKey)
}

func TestFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), LoggerKey, "not a logger")
	retrieved := FromContext(ctx)

	// Falls back to a no-op logger
	require.NotNil(t, retrieved)
}

func TestContextLogger_EnrichesEntries(t *testing.T) {
	core, observed := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	ctx := context.Background()
	ctx, logger = WithRequestID(ctx, logger, "req-42")
	ctx, _ = WithUserID(ctx, logger, "user-9")

	L(ctx).Info("hello")

	entries := observed.All()
	require.NotEmpty(t, entries)
	fields := entries[len(entries)-1].ContextMap()
	assert.Equal(t, "req-42", fields["request_id"])
	assert.Equal(t, "user-9", fields["user_id"])
}

func TestContextLogger_WithLogger(t *testing.T) {
	core, observed := observer.New(zap.InfoLevel)

	WithLogger(context.Background(), zap.New(core)).Info("direct")

	require.Len(t, observed.All(), 1)
	assert.Equal(t, "direct", observed.All()[0].Message)
}

func TestContextLogger_With(t *testing.T) {
	core, observed := observer.New(zap.InfoLevel)

	WithLogger(context.Background(), zap.New(core)).
		With(zap.String("component", "sync")).
		Info("tagged")

	require.Len(t, observed.All(), 1)
	assert.Equal(t, "sync", observed.All()[0].ContextMap()["component"])
}

func TestContextLogger_NilLoggerDoesNotPanic(t *testing.T) {
	cl := &ContextLogger{ctx: context.Background()}
	assert.NotPanics(t, func() {
		cl.Info("no-op")
	})
}
