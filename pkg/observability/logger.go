package observability

import "time"

// LogEntry represents a structured log entry.
//
// This type is intentionally small and stable so implementations can adapt
// it to their backend.
type LogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`

	Project string `json:"project,omitempty"`
	Region  string `json:"region,omitempty"`
}

// StructuredLogger is the logging surface used throughout the tool.
//
// Deployment identity (project, region) is attached once and carried on
// every entry a derived logger emits.
type StructuredLogger interface {
	Debug(message string, fields ...map[string]any)
	Info(message string, fields ...map[string]any)
	Warn(message string, fields ...map[string]any)
	Error(message string, fields ...map[string]any)

	WithField(key string, value any) StructuredLogger
	WithFields(fields map[string]any) StructuredLogger

	WithProject(project string) StructuredLogger
	WithRegion(region string) StructuredLogger
}

// LoggerConfig configures logger implementations.
type LoggerConfig struct {
	Format string `json:"format"`
	Level  string `json:"level"`
}
