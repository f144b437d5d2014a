package folio

// Logger receives diagnostic messages from the engine. It matches the
// printf-style loggers of the standard library and most logging
// packages, so a *log.Logger or a zap SugaredLogger adapter can be
// plugged in directly.
type Logger interface {
	Printf(format string, args ...any)
}

// NopLogger discards all messages. It is the default.
type NopLogger struct{}

// Printf discards its arguments.
func (NopLogger) Printf(format string, args ...any) {}
