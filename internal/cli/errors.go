package cli

// This file defines error reporting support for the CLI boundary:
//   - Debug mode management for structured error output
//   - Structured error logging with zap for errx errors

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/Ollama-Agent-Roll-Cage/oarc-decorators/pkg/errx"
)

var (
	debugMode   bool
	debugModeMu sync.RWMutex
)

// SetDebugMode sets the global debug mode flag.
// When enabled, logStructuredError will output structured error logs to terminal.
func SetDebugMode(enabled bool) {
	debugModeMu.Lock()
	defer debugModeMu.Unlock()
	debugMode = enabled
}

// IsDebugMode returns whether debug mode is enabled.
func IsDebugMode() bool {
	debugModeMu.RLock()
	defer debugModeMu.RUnlock()
	return debugMode
}

// logStructuredError logs an error with structured fields to terminal.
// Only logs when debug mode is enabled (via --debug flag).
// The zap logger is configured with console encoding, so structured
// fields are displayed in a human-readable format.
//
// For errx errors this extracts the kind, resolved exit code, message,
// and all context entries:
//   - error.kind: "NetworkError"
//   - error.exit_code: 2
//   - error.context.url: "registry.example.com"
func logStructuredError(logger *zap.Logger, err error, msg string) {
	if logger == nil || err == nil || !IsDebugMode() {
		return
	}

	var errxErr *errx.Error
	if errors.As(err, &errxErr) {
		fields := []zap.Field{
			zap.Stringer("error.kind", errxErr.Kind()),
			zap.Int("error.exit_code", errxErr.ExitCode()),
			zap.String("error.message", errxErr.Message()),
			zap.Error(err),
		}

		if ctx := errxErr.Context(); ctx != nil {
			for key, value := range ctx {
				fields = append(fields, zap.Any("error.context."+key, value))
			}
		}

		if cause := errxErr.Cause(); cause != nil {
			fields = append(fields, zap.NamedError("error.cause", cause))
		}

		logger.Error(msg, fields...)
	} else {
		// Fallback for non-errx errors
		logger.Error(msg, zap.Error(err))
	}
}
