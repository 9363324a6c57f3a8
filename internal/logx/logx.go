// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package logx holds the logger shared by every package
// in the module. The default logger discards everything;
// the root package's SetLogger swaps it.
package logx

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all
// records. Enabled returns false so callers skip message
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// ptr stores the active logger. Accessed atomically so
// SetLogger may race with logging from any goroutine.
var ptr atomic.Pointer[slog.Logger]

func init() {
	ptr.Store(slog.New(nopHandler{}))
}

// SetLogger replaces the module-wide logger.
// Pass nil to restore the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	ptr.Store(l)
}

// Logger returns the active logger.
func Logger() *slog.Logger { return ptr.Load() }
