package employee

import (
	"log/slog"
	"os"
)

var logLevel = new(slog.LevelVar)

// ConfigureLogging sets up the global default logger with a TextHandler
// and configures the log level based on the EMPLOYEE_LOG_LEVEL environment variable.
// It defaults to Info level if not specified.
//
// Logs are written to stderr, stdout is reserved for the rows printed by the select step.
func ConfigureLogging() {
	logLevel.Set(slog.LevelInfo)

	// Accepts DEBUG, INFO, WARN, ERROR in any case, with optional offsets like "WARN+2".
	if lvl := os.Getenv("EMPLOYEE_LOG_LEVEL"); lvl != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(lvl)); err == nil {
			logLevel.Set(l)
		}
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// SetLogLevel sets the logging level for the logger configured by ConfigureLogging.
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}

// LogLevel returns the current level of the logger configured by ConfigureLogging.
func LogLevel() slog.Level {
	return logLevel.Level()
}
