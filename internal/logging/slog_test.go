package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG msg=dbg a=1",
		"level=INFO msg=inf b=2",
		"level=WARN msg=wrn c=3",
		"level=ERROR msg=err d=4",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, AccountKey+"=")
}

func TestSlogLogger_WithKeepsModuleAttributes(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("module", "history").Info(context.Background(), "append failed", "error", "disk full")

	out := buf.String()
	assert.Contains(t, out, "module=history")
	assert.Contains(t, out, `error="disk full"`)
}

func TestSlogLogger_AccountFromContext(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := WithAccount(context.Background(), "ana@x.io")

	log.With("module", "generation").Warn(ctx, "generation failed")

	line := strings.TrimSpace(buf.String())
	assert.Contains(t, line, "module=generation")
	assert.Contains(t, line, "account=ana@x.io")
}

func TestWithAccount_EmptyEmailIsIgnored(t *testing.T) {
	ctx := WithAccount(context.Background(), "")
	_, ok := AccountFrom(ctx)
	assert.False(t, ok)

	email, ok := AccountFrom(WithAccount(ctx, "bo@x.io"))
	assert.True(t, ok)
	assert.Equal(t, "bo@x.io", email)
}

func TestNew_JSONCarriesAccount(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(FormatJSON, &buf)
	require.NoError(t, err)

	l.Info(WithAccount(context.Background(), "ana@x.io"), "logged in")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "logged in", entry["msg"])
	assert.Equal(t, "ana@x.io", entry[AccountKey])
}
