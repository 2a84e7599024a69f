package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" warn "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestNew_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Service: "careops", Env: "test", Version: "1.0.0", Level: "warn", Output: &buf})

	logger.Info().Msg("dropped")
	logger.Warn().Str("item", "Paper Towels").Msg("low stock")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "careops", entry["service"])
	assert.Equal(t, "test", entry["env"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, "Paper Towels", entry["item"])
	assert.Equal(t, "low stock", entry["message"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Format: "console", Output: &buf})
	logger.Info().Msg("booking confirmed")
	assert.Contains(t, buf.String(), "booking confirmed")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
