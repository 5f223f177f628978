package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Info().Str("key", "value").Msg("test message")

	var output map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output), "logger output should be valid JSON")

	assert.Equal(t, "test message", output["message"])
	assert.Equal(t, "value", output["key"])
	assert.Equal(t, "info", output["level"])
	assert.Equal(t, serviceName, output["service"])
	assert.Contains(t, output, "time", "should include timestamp")
}

func TestComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	log := Component(NewWithWriter("info", &buf), "provider.dhl")

	log.Warn().Msg("simulation mode")

	var output map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Equal(t, "provider.dhl", output["component"])
	assert.Equal(t, "warn", output["level"])
}

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"WARN", false, false},
		{"error", false, false},
		{"invalid", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(tt.level, &buf)

			log.Debug().Msg("debug")
			assert.Equal(t, tt.debugSeen, buf.Len() > 0)

			buf.Reset()
			log.Info().Msg("info")
			assert.Equal(t, tt.infoSeen, buf.Len() > 0)
		})
	}
}

func TestNew_PrettyMode(t *testing.T) {
	// Pretty mode writes to stdout; just make sure it does not panic.
	log := New("info", true)
	log.Info().Msg("pretty mode test")
}
