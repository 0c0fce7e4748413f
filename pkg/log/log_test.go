package log

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("nonsense"))
}

func TestJSONLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "warn", "json")

	l.Info().Msg("hidden")
	l.Warn().Str("user", "alice").Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "alice", entry["user"])
	assert.Equal(t, "warn", entry["level"])
}

func TestGormLoggerTrace(t *testing.T) {
	var buf bytes.Buffer
	g := NewGormLogger(NewWithWriter(&buf, "debug", "json"))
	fc := func() (string, int64) { return "SELECT 1", 1 }

	g.Trace(context.Background(), time.Now(), fc, nil)
	assert.Contains(t, buf.String(), `"message":"gorm query"`)

	buf.Reset()
	g.Trace(context.Background(), time.Now(), fc, errors.New("syntax error"))
	assert.Contains(t, buf.String(), `"message":"gorm query failed"`)
	assert.Contains(t, buf.String(), `"component":"gorm"`)

	buf.Reset()
	g.Trace(context.Background(), time.Now(), fc, gorm.ErrRecordNotFound)
	assert.NotContains(t, buf.String(), "failed")
}

func TestGormLoggerSkipsStatementsAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	g := NewGormLogger(NewWithWriter(&buf, "info", "json"))
	called := false

	g.Trace(context.Background(), time.Now(), func() (string, int64) {
		called = true
		return "SELECT 1", 1
	}, nil)

	assert.False(t, called)
	assert.Empty(t, buf.String())
}

func TestTruncateSQL(t *testing.T) {
	long := strings.Repeat("x", 500)
	out := truncateSQL(long)

	assert.Less(t, len(out), len(long))
	assert.Contains(t, out, "...")
	assert.Equal(t, "short", truncateSQL("short"))
}
