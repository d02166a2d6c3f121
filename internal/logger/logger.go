package logger

import (
	"context"
	"log/slog"
	"os"
	"time"
)

var log *slog.Logger

// Init initializes the global logger.
// env: "development" or "production"
func Init(env string) {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
	}

	if env == "development" {
		// Development: readable text output
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		// Production: JSON for log shipping
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

// GetLogger returns the global logger.
func GetLogger() *slog.Logger {
	if log == nil {
		// Fallback when Init was never called
		Init("development")
	}
	return log
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

// Info logs an info message.
func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

// Warn logs a warning.
func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// Fatal logs an error and exits.
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

// With creates a logger with extra fields.
func With(args ...any) *slog.Logger {
	return GetLogger().With(args...)
}

// WithError creates a logger carrying an error field.
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}

// HTTPLog logs a served HTTP request with severity chosen by status
// class. The request-id logger is taken from ctx.
func HTTPLog(ctx context.Context, method, path, clientIP, userAgent string, status int, duration time.Duration, size int) {
	fields := []any{
		slog.String("client_ip", clientIP),
		slog.String("user_agent", userAgent),
		slog.Int("status", status),
		slog.String("method", method),
		slog.String("path", path),
		slog.Duration("duration", duration),
		slog.Int("size_bytes", size),
	}

	log := FromContext(ctx)
	switch {
	case status >= 500:
		log.Error("HTTP Server Error", fields...)
	case status >= 400:
		log.Warn("HTTP Client Error", fields...)
	default:
		log.Info("HTTP Request", fields...)
	}
}

// SMTPLog logs an outbound email attempt.
func SMTPLog(recipient, template string, err error) {
	fields := []any{
		"recipient", recipient,
		"template", template,
	}

	if err != nil {
		fields = append(fields, "error", err.Error())
		GetLogger().Error("email send failed", fields...)
	} else {
		GetLogger().Info("email sent", fields...)
	}
}

// RegistryLog logs a trial-registry fetch.
func RegistryLog(strategy string, pages, records int, err error) {
	fields := []any{
		"strategy", strategy,
		"pages", pages,
		"records", records,
	}

	if err != nil {
		fields = append(fields, "error", err.Error())
		GetLogger().Error("registry fetch failed", fields...)
	} else {
		GetLogger().Info("registry fetch completed", fields...)
	}
}
