package observability

import (
	"sync"
	"time"
)

type testLoggerCore struct {
	mu      sync.Mutex
	entries []LogEntry
}

// TestLogger is an in-memory logger implementation for deterministic unit
// tests.
//
// Derived loggers (via With* calls) share the same underlying core.
type TestLogger struct {
	core *testLoggerCore

	fields  map[string]any
	project string
	region  string
}

var _ StructuredLogger = (*TestLogger)(nil)

func NewTestLogger() *TestLogger {
	return &TestLogger{
		core:   &testLoggerCore{},
		fields: map[string]any{},
	}
}

// Entries returns a copy of every entry logged so far.
func (l *TestLogger) Entries() []LogEntry {
	if l == nil || l.core == nil {
		return nil
	}
	l.core.mu.Lock()
	defer l.core.mu.Unlock()
	out := make([]LogEntry, len(l.core.entries))
	copy(out, l.core.entries)
	return out
}

func (l *TestLogger) Debug(message string, fields ...map[string]any) {
	l.log("debug", message, fields...)
}
func (l *TestLogger) Info(message string, fields ...map[string]any) {
	l.log("info", message, fields...)
}
func (l *TestLogger) Warn(message string, fields ...map[string]any) {
	l.log("warn", message, fields...)
}
func (l *TestLogger) Error(message string, fields ...map[string]any) {
	l.log("error", message, fields...)
}

func (l *TestLogger) WithField(key string, value any) StructuredLogger {
	return l.WithFields(map[string]any{key: value})
}

func (l *TestLogger) WithFields(fields map[string]any) StructuredLogger {
	next := l.clone()
	for k, v := range fields {
		next.fields[k] = v
	}
	return next
}

func (l *TestLogger) WithProject(project string) StructuredLogger {
	next := l.clone()
	next.project = project
	return next
}

func (l *TestLogger) WithRegion(region string) StructuredLogger {
	next := l.clone()
	next.region = region
	return next
}

func (l *TestLogger) clone() *TestLogger {
	fields := make(map[string]any, len(l.fields))
	for k, v := range l.fields {
		fields[k] = v
	}
	return &TestLogger{
		core:    l.core,
		fields:  fields,
		project: l.project,
		region:  l.region,
	}
}

func (l *TestLogger) log(level, message string, fieldMaps ...map[string]any) {
	fields := make(map[string]any, len(l.fields))
	for k, v := range l.fields {
		fields[k] = v
	}
	for _, m := range fieldMaps {
		for k, v := range m {
			fields[k] = v
		}
	}
	if len(fields) == 0 {
		fields = nil
	}

	entry := LogEntry{
		Timestamp: time.Now().UTC(),
		Level:     level,
		Message:   SanitizeLogString(message),
		Fields:    fields,
		Project:   l.project,
		Region:    l.region,
	}

	l.core.mu.Lock()
	l.core.entries = append(l.core.entries, entry)
	l.core.mu.Unlock()
}
