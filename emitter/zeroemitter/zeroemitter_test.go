package zeroemitter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/facade/core"
)

func TestEmit_JSON(t *testing.T) {
	var buf bytes.Buffer
	e := New(zerolog.New(&buf))
	require.NoError(t, e.Emit(core.WarnLevel, "Server", "disk full"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "warn", rec["level"])
	require.Equal(t, "Server", rec["tag"])
	require.Equal(t, "disk full", rec["message"])
}

func TestEmit_RespectsLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	e := New(zerolog.New(&buf).Level(zerolog.InfoLevel))
	require.NoError(t, e.Emit(core.VerboseLevel, "t", "hidden"))
	require.Empty(t, buf.String())
}

func TestLevel(t *testing.T) {
	require.Equal(t, zerolog.TraceLevel, Level(core.VerboseLevel))
	require.Equal(t, zerolog.ErrorLevel, Level(core.AssertLevel))
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	e := NewConsole(&buf)
	require.NoError(t, e.Emit(core.InfoLevel, "Server", "hello"))
	require.Contains(t, buf.String(), "hello")
	require.Contains(t, buf.String(), "tag=Server")
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	e := NewWriter(&buf)
	require.NoError(t, e.Emit(core.VerboseLevel, "t", "trace"))
	require.Contains(t, buf.String(), `"level":"trace"`)
	require.Contains(t, buf.String(), `"time":`)
}
