package punycode

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the punycode package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the punycode package's logger and enables debug
// diagnostics. This must be called before any codec operations.
func SetLogger(l *zap.Logger) {
	logger = l
	debug = l != nil
}

// debugf is a no-op debug helper until SetLogger installs a logger.
var debug = false

func debugf(format string, args ...any) {
	if debug {
		Logger().Sugar().Debugf(format, args...)
	}
}
