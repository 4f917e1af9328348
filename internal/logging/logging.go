package logging

import (
        "fmt"
        "os"
        "path/filepath"
        "strings"

        "mmint-cli/internal/store"

        "go.uber.org/zap"
        "go.uber.org/zap/zapcore"
)

// New builds the process logger. The terminal belongs to the REPL, so logs
// only go to cfg.File; an empty file yields a no-op logger. verbose forces
// debug level.
func New(cfg store.LogConfig, verbose bool) (*zap.Logger, error) {
        file := strings.TrimSpace(cfg.File)
        if file == "" {
                return zap.NewNop(), nil
        }
        if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
                return nil, fmt.Errorf("failed to create log directory: %w", err)
        }

        level := zapcore.InfoLevel
        if cfg.Level != "" {
                if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
                        return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
                }
        }
        if verbose {
                level = zapcore.DebugLevel
        }

        config := zap.NewProductionConfig()
        config.Level = zap.NewAtomicLevelAt(level)
        config.OutputPaths = []string{file}
        config.ErrorOutputPaths = []string{file}
        config.EncoderConfig.TimeKey = "ts"
        config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

        logger, err := config.Build()
        if err != nil {
                return nil, fmt.Errorf("failed to initialize logger: %w", err)
        }
        return logger, nil
}
