package observability_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/onestroke/internal/observability"
)

func TestNewLogger_Formats(t *testing.T) {
	var buf bytes.Buffer
	l := observability.NewLogger(&buf, "debug", "json")
	l.Debug("hello", "level_id", 7)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.EqualValues(t, 7, rec["level_id"])

	buf.Reset()
	l = observability.NewLogger(&buf, "warn", "text")
	l.Info("dropped")
	assert.Empty(t, buf.String())
	l.Warn("kept")
	assert.Contains(t, buf.String(), "msg=kept")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, observability.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, observability.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, observability.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, observability.ParseLevel("bogus"))
}

func TestContextLogger(t *testing.T) {
	assert.Same(t, slog.Default(), observability.FromContext(context.Background()))

	l := observability.Discard()
	ctx := observability.WithLogger(context.Background(), l)
	assert.Same(t, l, observability.FromContext(ctx))
}

func TestInitTracing_NoEndpoint(t *testing.T) {
	ctx := context.Background()
	tp, err := observability.InitTracing(ctx, nil)
	require.NoError(t, err)
	require.NotNil(t, tp.Tracer())

	_, span := observability.StartLevelSpan(ctx, tp.Tracer(), "test.span", 3, 2)
	observability.RecordError(span, errors.New("boom"))
	observability.RecordError(span, nil)
	span.End()

	assert.NoError(t, tp.Shutdown(ctx))
}
