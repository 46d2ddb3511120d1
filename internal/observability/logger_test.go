package observability

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "debug", "json")
	logger.Debug().Str("source", "scatter").Msg("selection")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "scatter", entry["source"])
	assert.Equal(t, "selection", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewLoggerLevelFallback(t *testing.T) {
	for _, level := range []string{"", "loud"} {
		var buf bytes.Buffer
		logger := newLogger(&buf, level, "json")
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())

		logger.Debug().Msg("hidden")
		assert.Empty(t, buf.String())
	}

	assert.Equal(t, zerolog.WarnLevel, newLogger(&bytes.Buffer{}, "WARN", "json").GetLevel())
}

func TestNewLoggerConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "info", "console")
	logger.Info().Msg("assets loaded")

	assert.Contains(t, buf.String(), "assets loaded")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
