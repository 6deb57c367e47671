package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMessage = "test message"

func TestNewWithWriterLevels(t *testing.T) {
	tests := []struct {
		name          string
		level         string
		expectedLevel zerolog.Level
	}{
		{name: "info", level: "info", expectedLevel: zerolog.InfoLevel},
		{name: "debug", level: "debug", expectedLevel: zerolog.DebugLevel},
		{name: "warn", level: "warn", expectedLevel: zerolog.WarnLevel},
		{name: "disabled", level: "disabled", expectedLevel: zerolog.Disabled},
		{name: "empty_defaults_to_info", level: "", expectedLevel: zerolog.InfoLevel},
		{name: "invalid_defaults_to_info", level: "invalid_level", expectedLevel: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewWithWriter(&bytes.Buffer{}, tt.level, false)
			assert.Equal(t, tt.expectedLevel, l.Level())
		})
	}
}

func TestJSONOutputCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "debug", false)

	l.WithFields(map[string]any{"component": "schema"}).
		Info().
		Str("contract", "UserContract").
		Int("fields", 3).
		Bool("described", true).
		Dur("took", 2*time.Millisecond).
		Strs("names", []string{"a", "b"}).
		Err(errors.New("boom")).
		Msg(testMessage)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, testMessage, entry["message"])
	assert.Equal(t, "schema", entry["component"])
	assert.Equal(t, "UserContract", entry["contract"])
	assert.Equal(t, float64(3), entry["fields"])
	assert.Equal(t, true, entry["described"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, []any{"a", "b"}, entry["names"])
	assert.Contains(t, entry, "time")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "warn", false)

	l.Debug().Msg("hidden")
	l.Info().Msgf("hidden %d", 1)
	l.Warn().Msgf("shown %d", 2)
	l.Error().Msg("shown too")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "shown 2")
	assert.Contains(t, lines[1], "shown too")
}

func TestPrettyOutput(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info", true)

	l.Info().Str("adapter", "grape").Msg(testMessage)

	out := buf.String()
	assert.Contains(t, out, testMessage)
	assert.Contains(t, out, "adapter=grape")
	assert.False(t, json.Valid([]byte(strings.TrimSpace(out))))
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "debug", false)

	l.Component("annotation").Debug().Str("path", "contracts/user.yaml").Msg(testMessage)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "annotation", entry["component"])
	assert.Equal(t, "contracts/user.yaml", entry["path"])
}

func TestNop(t *testing.T) {
	l := Nop()
	assert.NotPanics(t, func() {
		l.Info().Str("k", "v").Msg(testMessage)
		l.WithFields(map[string]any{"a": 1}).Error().Msg(testMessage)
	})
	assert.Equal(t, zerolog.Disabled, l.Level())
}
