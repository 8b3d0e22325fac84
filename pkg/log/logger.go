// Package log is a small leveled, structured logger. Entries are written
// asynchronously as line-delimited JSON (or text) by pluggable transporters,
// and request ids and fields travel with the context.
package log

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
)

const defaultBufferSize = 1000

// Logger emits entries at or above its level. Children created with With
// share the parent's buffer.
type Logger struct {
	mu         sync.RWMutex
	level      Level
	buffer     *Buffer
	baseFields map[string]any
}

// New creates a logger writing to the given transporters.
func New(level Level, transporters ...Transporter) *Logger {
	return &Logger{
		level:      level,
		buffer:     NewBuffer(defaultBufferSize, transporters...),
		baseFields: make(map[string]any),
	}
}

// SetLevel changes the minimum level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// Level returns the minimum level.
func (l *Logger) Level() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// With returns a child logger that adds keysAndValues to every entry.
func (l *Logger) With(keysAndValues ...any) *Logger {
	l.mu.RLock()
	fields := make(map[string]any, len(l.baseFields)+len(keysAndValues)/2)
	for k, v := range l.baseFields {
		fields[k] = v
	}
	level := l.level
	l.mu.RUnlock()

	mergePairs(fields, keysAndValues)

	return &Logger{
		level:      level,
		buffer:     l.buffer,
		baseFields: fields,
	}
}

// Close flushes pending entries and closes the transporters.
func (l *Logger) Close() {
	l.buffer.Close()
}

func (l *Logger) log(ctx context.Context, level Level, msg string, keysAndValues []any) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if !l.level.Enables(level) {
		return
	}

	entry := NewEntry(level, msg)
	entry.Caller = caller(3)

	for k, v := range l.baseFields {
		entry.Fields[k] = v
	}
	if ctx != nil {
		entry.RequestID = RequestIDFromContext(ctx)
		for k, v := range FieldsFromContext(ctx) {
			entry.Fields[k] = v
		}
	}
	mergePairs(entry.Fields, keysAndValues)

	l.buffer.Send(*entry)
}

// caller returns "file.go:line" for the frame skip levels up.
func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

func (l *Logger) Trace(msg string, keysAndValues ...any) { l.log(nil, Trace, msg, keysAndValues) }
func (l *Logger) Debug(msg string, keysAndValues ...any) { l.log(nil, Debug, msg, keysAndValues) }
func (l *Logger) Info(msg string, keysAndValues ...any)  { l.log(nil, Info, msg, keysAndValues) }
func (l *Logger) Warn(msg string, keysAndValues ...any)  { l.log(nil, Warn, msg, keysAndValues) }
func (l *Logger) Error(msg string, keysAndValues ...any) { l.log(nil, Error, msg, keysAndValues) }

// Fatal logs at Fatal level. Exiting is left to the caller.
func (l *Logger) Fatal(msg string, keysAndValues ...any) { l.log(nil, Fatal, msg, keysAndValues) }

func (l *Logger) DebugCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(ctx, Debug, msg, keysAndValues)
}

func (l *Logger) InfoCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(ctx, Info, msg, keysAndValues)
}

func (l *Logger) WarnCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(ctx, Warn, msg, keysAndValues)
}

func (l *Logger) ErrorCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(ctx, Error, msg, keysAndValues)
}

// --- process-wide default ---

var (
	globalMu     sync.RWMutex
	globalLogger *Logger

	discardOnce sync.Once
	discard     *Logger
)

// SetDefault installs l as the logger behind the Global* helpers.
func SetDefault(l *Logger) {
	globalMu.Lock()
	globalLogger = l
	globalMu.Unlock()
}

// Default returns the installed logger, or a logger that drops everything.
func Default() *Logger {
	globalMu.RLock()
	l := globalLogger
	globalMu.RUnlock()
	if l != nil {
		return l
	}

	discardOnce.Do(func() {
		discard = &Logger{
			level:      Fatal + 1,
			buffer:     NewBuffer(1),
			baseFields: make(map[string]any),
		}
	})
	return discard
}

func GlobalDebug(msg string, keysAndValues ...any) { Default().log(nil, Debug, msg, keysAndValues) }
func GlobalInfo(msg string, keysAndValues ...any)  { Default().log(nil, Info, msg, keysAndValues) }
func GlobalWarn(msg string, keysAndValues ...any)  { Default().log(nil, Warn, msg, keysAndValues) }
func GlobalError(msg string, keysAndValues ...any) { Default().log(nil, Error, msg, keysAndValues) }

func GlobalDebugCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().log(ctx, Debug, msg, keysAndValues)
}

func GlobalInfoCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().log(ctx, Info, msg, keysAndValues)
}

func GlobalWarnCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().log(ctx, Warn, msg, keysAndValues)
}

func GlobalErrorCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().log(ctx, Error, msg, keysAndValues)
}
