package phflash

import (
	"log/slog"
	"sync"
)

// sinkMu serializes access to the optional diagnostic sink and last-error
// record for a potentially multi-threaded host process. The solver itself
// remains single-threaded and synchronous; this lock only protects the
// optional observer surface.
var sinkMu sync.Mutex
var sink *slog.Logger
var lastErr *FlashError

// SetLogSink installs an optional, process-wide diagnostic sink. Passing
// nil disables logging (the default). The solver never blocks on this
// sink's I/O in the sense of backpressure; it is expected to be fast
// (typically a buffered or discard handler in hot-path use).
func SetLogSink(l *slog.Logger) {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	sink = l
}

// logf emits a diagnostic message to the configured sink, if any. It is a
// no-op when no sink has been installed.
func logf(verbose bool, msg string, args ...any) {
	if !verbose {
		return
	}
	sinkMu.Lock()
	l := sink
	sinkMu.Unlock()
	if l == nil {
		return
	}
	l.Debug(msg, args...)
}

// Logf is the exported form of logf, for use by sibling packages
// (anderson, vle, enthalpy, flash) that need to report diagnostics through
// the same sink without importing log/slog themselves.
func Logf(verbose bool, msg string, args ...any) {
	logf(verbose, msg, args...)
}

// recordLastError stores a snapshot of the most recent FlashError for
// diagnostic inspection. Callers still receive an explicit error value
// from every call; this is a thin optional observer, not the sole record.
func recordLastError(e *FlashError) {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	lastErr = e
}

// LastError returns a copy of the last FlashError recorded by RecordError,
// or nil if none has been recorded. A later successful call does not clear
// it. This is diagnostic only; callers should treat
// the error value returned directly by an operation as authoritative.
func LastError() *FlashError {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	if lastErr == nil {
		return nil
	}
	cp := *lastErr
	return &cp
}

// RecordError is called by sibling packages to update the diagnostic
// last-error snapshot. It does not alter control flow.
func RecordError(e *FlashError) {
	recordLastError(e)
}
