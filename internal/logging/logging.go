package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production logger at the given level; verbose forces debug
func New(level string, verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	parsed := zapcore.InfoLevel
	if level != "" {
		if err := parsed.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}
	if verbose {
		parsed = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(parsed)

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
