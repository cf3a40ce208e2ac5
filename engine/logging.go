// Package engine provides the ambient App/Engine.Run frame pipeline, the
// Logger, and Config, grounded on the teacher's app.go/logging.go shape but
// simplified off its reflection-based ECS scheduler: SPEC_FULL.md's entities
// are plain caller-owned structs referenced by pointer/key (§3), not ECS
// components, so there is no system-dependency-injection problem to solve.
package engine

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// Logger is the engine-wide logging interface; per-frame runtime errors are
// Warnf, setup-phase fatal errors are Errorf followed by process exit.
type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// DefaultLogger writes Debug/Info to stdout and Warn/Error to stderr via the
// standard library's log package. No example in this codebase's dependency
// pack reaches for a third-party logging library (zerolog/zap/logrus); the
// teacher's own logging.go is stdlib-only, so this stays stdlib too.
type DefaultLogger struct {
	mu     sync.Mutex
	debug  bool
	prefix string
	out    *log.Logger
	err    *log.Logger
}

func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	flags := log.LstdFlags | log.Lmicroseconds
	return &DefaultLogger{
		debug:  debug,
		prefix: prefix,
		out:    log.New(os.Stdout, "", flags),
		err:    log.New(os.Stderr, "", flags),
	}
}

func (l *DefaultLogger) DebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *DefaultLogger) SetDebug(enabled bool) {
	l.mu.Lock()
	l.debug = enabled
	l.mu.Unlock()
}

func (l *DefaultLogger) prefixf(level, format string, args ...any) string {
	if l.prefix != "" {
		return fmt.Sprintf("[%s] %s: %s", l.prefix, level, fmt.Sprintf(format, args...))
	}
	return fmt.Sprintf("%s: %s", level, fmt.Sprintf(format, args...))
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	l.mu.Lock()
	dbg := l.debug
	l.mu.Unlock()
	if !dbg {
		return
	}
	l.out.Print(l.prefixf("DEBUG", format, args...))
}

func (l *DefaultLogger) Infof(format string, args ...any) {
	l.out.Print(l.prefixf("INFO", format, args...))
}

func (l *DefaultLogger) Warnf(format string, args ...any) {
	l.err.Print(l.prefixf("WARN", format, args...))
}

func (l *DefaultLogger) Errorf(format string, args ...any) {
	l.err.Print(l.prefixf("ERROR", format, args...))
}

type nopLogger struct{}

func NewNopLogger() Logger                              { return &nopLogger{} }
func (n *nopLogger) DebugEnabled() bool                 { return false }
func (n *nopLogger) SetDebug(enabled bool)               {}
func (n *nopLogger) Debugf(format string, args ...any)  {}
func (n *nopLogger) Infof(format string, args ...any)   {}
func (n *nopLogger) Warnf(format string, args ...any)   {}
func (n *nopLogger) Errorf(format string, args ...any)  {}
