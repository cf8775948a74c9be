package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"quoteintake/internal/config"
	"quoteintake/pkg/logger"

	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, level string) (*logger.Adapter, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	cfg := &config.Config{
		Env:    "prod",
		App:    config.App{Name: "quote-service"},
		Logger: config.Logger{Level: level},
	}

	log, err := logger.NewAdapter(cfg, logger.Output(&buf))
	require.NoError(t, err)
	return log, &buf
}

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestAdapter_LogAttrsCarriesRequestID(t *testing.T) {
	log, buf := newTestAdapter(t, "info")

	ctx := log.WithRequestID(context.Background(), "req-42")
	log.LogAttrs(ctx, logger.WarnLevel, "quote stored but notifications partially failed",
		logger.Int64("quote_id", 7),
		logger.Err(errors.New("smtp down")),
	)

	entries := lines(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "warn", entries[0]["level"])
	require.Equal(t, "req-42", entries[0]["request_id"])
	require.Equal(t, "smtp down", entries[0]["error"])
	require.EqualValues(t, 7, entries[0]["quote_id"])
	require.Equal(t, "quote-service", entries[0]["service"])
}

func TestAdapter_LevelFilter(t *testing.T) {
	log, buf := newTestAdapter(t, "warn")

	log.LogAttrs(context.Background(), logger.InfoLevel, "dropped")
	log.Debugw("dropped too")
	log.Errorw("kept", "component", "mailer")

	entries := lines(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "kept", entries[0]["msg"])
	require.Equal(t, "mailer", entries[0]["component"])
}

func TestAdapter_WithAndCtx(t *testing.T) {
	log, buf := newTestAdapter(t, "debug")

	ctx := log.WithRequestID(context.Background(), "abc")
	log.With("component", "notifier").Ctx(ctx).Infow("sent", "kind", "customer")

	entries := lines(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "notifier", entries[0]["component"])
	require.Equal(t, "abc", entries[0]["request_id"])
	require.Equal(t, "customer", entries[0]["kind"])
}

func TestAdapter_RequestIDs(t *testing.T) {
	log := logger.NewNop()

	require.Empty(t, log.GetRequestID(context.Background()))

	id := log.GenerateRequestID()
	require.Len(t, id, 36)
	require.NotEqual(t, id, log.GenerateRequestID())

	ctx := log.WithRequestID(context.Background(), id)
	require.Equal(t, id, log.GetRequestID(ctx))
}
