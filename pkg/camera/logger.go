package camera

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/renderloop/viewfinder/pkg/framing"
)

// nopHandler silently discards all log records. Enabled returns false so
// the caller skips message formatting entirely, making disabled logging
// effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so SetLogger can
// be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures logging for the camera pipeline and propagates the
// logger to the framing package so both share one configuration. By
// default nothing is logged; pass nil to restore that.
//
// The pipeline only logs at [slog.LevelWarn], and only for configuration
// problems it degrades around rather than fails on.
func SetLogger(l *slog.Logger) {
	framing.SetLogger(l)
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
