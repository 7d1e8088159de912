package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resignly/pkg/logger"
)

type ctxKey struct{}

func requestID(ctx context.Context) (slog.Attr, bool) {
	if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}

func TestNewWithConfigJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithConfig(logger.Config{Level: "debug", Format: "json"}, &buf, requestID, nil)

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	logger.Component(log, "export").DebugContext(ctx, "letter exported", slog.String("format", "pdf"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "letter exported", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "export", rec["component"])
	assert.Equal(t, "pdf", rec["format"])
	assert.Equal(t, "req-1", rec["request_id"])
}

func TestNewWithConfigText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithConfig(logger.Config{Level: "warn", Format: "text"}, &buf)

	log.Info("dropped")
	log.Warn("kept", slog.Int("n", 1))

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "msg=kept")
	assert.Contains(t, out, "n=1")
}

func TestExtractorSkipsMissingValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithConfig(logger.Config{}, &buf, requestID)
	log.InfoContext(context.Background(), "no request")

	assert.NotContains(t, buf.String(), "request_id")
}

func TestWithAttrsKeepsExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithConfig(logger.Config{}, &buf, requestID).With(slog.String("svc", "web")).WithGroup("g")

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-2")
	log.InfoContext(ctx, "hello")

	assert.Contains(t, buf.String(), `"svc":"web"`)
	assert.Contains(t, buf.String(), "req-2")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
		"":        slog.LevelInfo,
		"loud":    slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, logger.ParseLevel(in), in)
	}
}

func TestNopeAndComponentNil(t *testing.T) {
	t.Parallel()

	assert.False(t, logger.NewNope().Enabled(context.Background(), slog.LevelError))
	assert.NotNil(t, logger.Component(nil, "x"))
}

func TestNewWithSentryWithoutDSN(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, logger.NewWithSentry(logger.SentryConfig{}))
}
