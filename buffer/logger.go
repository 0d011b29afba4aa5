package buffer

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// bufLogger returns the package's logger instance.
// It uses a no-op logger by default; call SetLogger to install a real one.
func bufLogger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger installs a logger for buffer diagnostics. Must be called
// before any buffer is constructed.
func SetLogger(l *zap.Logger) {
	logger = l
}
