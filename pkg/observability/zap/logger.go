// Package zap provides the zap-backed StructuredLogger implementation.
package zap

import (
	"errors"
	"os"
	"strings"

	ubzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rusty428/aws-spa-hosting-kit/pkg/observability"
)

type Option func(*loggerOptions)

type loggerOptions struct {
	zapLogger *ubzap.Logger
}

// WithZapLogger substitutes a pre-built zap logger, bypassing the config
// driven construction. Used by tests to capture output.
func WithZapLogger(logger *ubzap.Logger) Option {
	return func(opts *loggerOptions) {
		opts.zapLogger = logger
	}
}

// Logger adapts a zap logger to observability.StructuredLogger.
type Logger struct {
	log *ubzap.Logger

	fields  map[string]any
	project string
	region  string
}

var _ observability.StructuredLogger = (*Logger)(nil)

// NewZapLogger builds a StructuredLogger writing JSON or console lines to
// stdout.
func NewZapLogger(config observability.LoggerConfig, options ...Option) (observability.StructuredLogger, error) {
	opts := &loggerOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(opts)
	}

	base := opts.zapLogger
	if base == nil {
		level, err := parseZapLevel(config.Level)
		if err != nil {
			return nil, err
		}

		var encoder zapcore.Encoder
		switch strings.ToLower(strings.TrimSpace(config.Format)) {
		case "console":
			encoder = zapcore.NewConsoleEncoder(encoderConfig())
		case "json", "":
			encoder = zapcore.NewJSONEncoder(encoderConfig())
		default:
			return nil, errors.New("observability/zap: unsupported log format")
		}

		core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)
		base = ubzap.New(core)
	}

	return &Logger{
		log:    base,
		fields: map[string]any{},
	}, nil
}

func parseZapLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, errors.New("observability/zap: unsupported log level")
	}
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := ubzap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.MessageKey = "message"
	return cfg
}

func (l *Logger) Debug(message string, fields ...map[string]any) {
	l.log.Debug(observability.SanitizeLogString(message), l.zapFields(fields)...)
}

func (l *Logger) Info(message string, fields ...map[string]any) {
	l.log.Info(observability.SanitizeLogString(message), l.zapFields(fields)...)
}

func (l *Logger) Warn(message string, fields ...map[string]any) {
	l.log.Warn(observability.SanitizeLogString(message), l.zapFields(fields)...)
}

func (l *Logger) Error(message string, fields ...map[string]any) {
	l.log.Error(observability.SanitizeLogString(message), l.zapFields(fields)...)
}

func (l *Logger) WithField(key string, value any) observability.StructuredLogger {
	return l.WithFields(map[string]any{key: value})
}

func (l *Logger) WithFields(fields map[string]any) observability.StructuredLogger {
	next := l.clone()
	for k, v := range fields {
		next.fields[k] = v
	}
	return next
}

func (l *Logger) WithProject(project string) observability.StructuredLogger {
	next := l.clone()
	next.project = project
	return next
}

func (l *Logger) WithRegion(region string) observability.StructuredLogger {
	next := l.clone()
	next.region = region
	return next
}

func (l *Logger) clone() *Logger {
	fields := make(map[string]any, len(l.fields))
	for k, v := range l.fields {
		fields[k] = v
	}
	return &Logger{
		log:     l.log,
		fields:  fields,
		project: l.project,
		region:  l.region,
	}
}

func (l *Logger) zapFields(fieldMaps []map[string]any) []ubzap.Field {
	out := make([]ubzap.Field, 0, len(l.fields)+len(fieldMaps)+2)
	if l.project != "" {
		out = append(out, ubzap.String("project", l.project))
	}
	if l.region != "" {
		out = append(out, ubzap.String("region", l.region))
	}
	for k, v := range l.fields {
		out = append(out, zapField(k, v))
	}
	for _, m := range fieldMaps {
		for k, v := range m {
			out = append(out, zapField(k, v))
		}
	}
	return out
}

func zapField(key string, value any) ubzap.Field {
	if s, ok := value.(string); ok {
		return ubzap.String(key, observability.SanitizeLogString(s))
	}
	return ubzap.Any(key, value)
}
