package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}

	for input, want := range tests {
		require.Equal(t, want, ParseLevel(input), "level=%q", input)
	}
}

func TestSetupWriter(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	var buffer bytes.Buffer
	logger := SetupWriter(&buffer, "warn")

	logger.Info("hidden")
	slog.Warn("visible", "list_id", "abc")

	output := buffer.String()
	require.NotContains(t, output, "hidden")
	require.Contains(t, output, "visible")
	require.Contains(t, output, "list_id=abc")
}
