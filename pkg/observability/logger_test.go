package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{
		Level:       LogLevelInfo,
		Format:      LogFormatText,
		Output:      &buf,
		ServiceName: "brushtrack",
	})

	logger.Info("toggled task", "task", "floss")
	output := buf.String()

	assert.Contains(t, output, "toggled task")
	assert.Contains(t, output, "task=floss")
	assert.Contains(t, output, "service=brushtrack")
}

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{
		Level:          LogLevelInfo,
		Format:         LogFormatJSON,
		Output:         &buf,
		ServiceName:    "brushtrack",
		ServiceVersion: "1.2.3",
	})

	logger.Info("day completed", "date", "2024-03-15")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "day completed", entry["msg"])
	assert.Equal(t, "2024-03-15", entry["date"])
	assert.Equal(t, "brushtrack", entry["service"])
	assert.Equal(t, "1.2.3", entry["version"])
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{
		Level:  LogLevelWarn,
		Format: LogFormatText,
		Output: &buf,
	})

	logger.Debug("ignored")
	logger.Info("also ignored")
	logger.Warn("kept")

	output := buf.String()
	assert.NotContains(t, output, "ignored")
	assert.Contains(t, output, "kept")
}

func TestLogger_CorrelationIDFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{
		Level:  LogLevelInfo,
		Format: LogFormatJSON,
		Output: &buf,
	})

	ctx := WithCorrelationID(context.Background(), "abc-123")
	logger.InfoContext(ctx, "with correlation")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc-123", entry[CorrelationIDKey])
}

func TestWithCorrelationID_GeneratesWhenEmpty(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "")
	assert.NotEmpty(t, CorrelationIDFromContext(ctx))

	assert.Empty(t, CorrelationIDFromContext(context.Background()))
}
