package collection

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// storeLogger returns the package's logger instance.
// It uses a no-op logger by default; call SetLogger to install a real one.
func storeLogger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger installs a logger for collection diagnostics. Must be called
// before any collection is constructed.
func SetLogger(l *zap.Logger) {
	logger = l
}
