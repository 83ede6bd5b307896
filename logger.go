package blit

import (
	"log/slog"
	"sync/atomic"
)

// silent discards every record; Enabled is false at all levels so
// callers never format attributes.
var silent = slog.New(slog.DiscardHandler)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(silent)
}

// SetLogger routes the log output of blit and its sub-packages to l.
// Nothing is logged by default; nil restores that.
//
// Records emitted:
//   - [slog.LevelDebug] "lut: tables built", "lut: tables released":
//     shared lookup tables created on first use and dropped with the
//     last compositor.
//   - [slog.LevelDebug] "compositor: ..." lock failures, unsupported
//     source formats and stretch sources outside their surface. The
//     operation becomes a no-op.
//   - [slog.LevelDebug] "nineslice: invalid block", "skin: loaded".
//   - [slog.LevelWarn] "surface: creation rejected" with the offending
//     parameters, "surface: upload failed" from a streamed surface, and
//     "compositor: unsupported destination format".
//
// SetLogger is safe to call while other goroutines log.
//
//	blit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}
