package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel traduce "debug", "info", "warn", "error" (sin importar mayúsculas).
// Cualquier otro valor cae en info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup crea el logger de la aplicación sobre stderr, lo deja como default y lo devuelve.
func Setup(level string) *slog.Logger {
	return SetupWriter(os.Stderr, level)
}

// SetupWriter es Setup con destino configurable (tests).
func SetupWriter(writer io.Writer, level string) *slog.Logger {
	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
