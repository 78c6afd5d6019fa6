package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeEntry parses the single JSON entry written to buf.
func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_JSONEntry(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "resolver")

	l.Debug().Str("app_name", "billing").Msg("resolving config")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "resolver", entry["role"])
	assert.Equal(t, "billing", entry["app_name"])
	assert.Equal(t, "debug", entry["level"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_JSONEntry")
}

func TestNewCLILogger_ConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(zerolog.ConsoleWriter{Out: &buf, NoColor: true}, "confetch")

	l.Error().Str("app_name", "billing").Msg("cannot resolve config")

	out := buf.String()
	assert.False(t, json.Valid(buf.Bytes()), "console output must not be JSON")
	assert.Contains(t, out, "ERR")
	assert.Contains(t, out, "cannot resolve config")
	assert.Contains(t, out, "role=confetch")
	assert.Contains(t, out, "app_name=billing")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestNewCLILogger_NotNil(t *testing.T) {
	require.NotNil(t, NewCLILogger("confetch"))
}

func TestNop_DiscardsEverything(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	assert.Equal(t, zerolog.Disabled, l.GetLevel())
	assert.False(t, l.Debug().Enabled())
	assert.False(t, l.Error().Enabled())
}

func TestGetChildLogger_EnrichesWithoutTouchingParent(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "authority")

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "abc")
	})
	require.NotSame(t, parent, child)

	child.Info().Send()
	entry := decodeEntry(t, &buf)
	assert.Equal(t, "authority", entry["role"])
	assert.Equal(t, "abc", entry["trace_id"])

	buf.Reset()
	parent.Info().Send()
	assert.NotContains(t, decodeEntry(t, &buf), "trace_id")
}

func TestFromRequest_ReturnsTraceScopedLogger(t *testing.T) {
	var buf bytes.Buffer
	child := newLogger(&buf, "authority").GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "0192-trace")
	})

	req := httptest.NewRequest(http.MethodPost, "/conf", nil)
	req = req.WithContext(child.WithContext(req.Context()))

	FromRequest(req).Info().Msg("request handled")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "0192-trace", entry["trace_id"])
	assert.Equal(t, "authority", entry["role"])
}

func TestFromContext_WithoutLoggerNeverNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)

	assert.NotPanics(t, func() { l.Info().Msg("no logger attached") })
}
