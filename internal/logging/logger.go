// Package logging adapts a zap.Logger to the vis.Logger interface, so the
// CLI (and any other caller that wants structured logs) can hand the core
// a real logger without the core itself depending on zap.
package logging

import (
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/nsf/vis"
)

var global atomic.Pointer[zap.Logger]

// Set installs logger as the process-wide zap logger. A nil logger
// downgrades to zap.NewNop().
func Set(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	global.Store(logger)
}

// Get returns the process-wide zap logger, installing a nop logger on
// first use if none was set.
func Get() *zap.Logger {
	if logger := global.Load(); logger != nil {
		return logger
	}
	nop := zap.NewNop()
	global.Store(nop)
	return nop
}

// New wraps logger (or the process-wide logger, if nil) as a vis.Logger.
func New(logger *zap.Logger) vis.Logger {
	if logger == nil {
		logger = Get()
	}
	return &sugared{s: logger.Sugar()}
}

type sugared struct {
	s *zap.SugaredLogger
}

func (l *sugared) Debugw(msg string, kv ...interface{}) { l.s.Debugw(msg, kv...) }
func (l *sugared) Infow(msg string, kv ...interface{})  { l.s.Infow(msg, kv...) }
func (l *sugared) Errorw(msg string, kv ...interface{}) { l.s.Errorw(msg, kv...) }
