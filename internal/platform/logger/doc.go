// Package logger builds the JSON slog logger used across the zoo API and
// carries request-scoped loggers (tagged with trace and user ids by the HTTP
// middleware) through context.Context.
package logger
