package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	usecasecontract "github.com/pregen/shop-api/internal/usecase/contract"
)

// SlogLogger adapts log/slog to the printf-style application logger.
type SlogLogger struct {
	*slog.Logger
}

// NewSlogLogger creates a text logger on stdout at the given slog level
// (-4 debug, 0 info, 4 warn, 8 error).
func NewSlogLogger(level int) usecasecontract.IAppLogger {
	return NewSlogLoggerTo(os.Stdout, level)
}

// NewSlogLoggerTo writes to w; tests use it to capture output.
func NewSlogLoggerTo(w io.Writer, level int) *SlogLogger {
	return &SlogLogger{
		Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.Level(level)})),
	}
}

// Debugf logs a debug message.
func (l *SlogLogger) Debugf(format string, args ...interface{}) {
	l.Logger.Debug(fmt.Sprintf(format, args...))
}

// Infof logs an info message.
func (l *SlogLogger) Infof(format string, args ...interface{}) {
	l.Logger.Info(fmt.Sprintf(format, args...))
}

// Warnf logs a warning message.
func (l *SlogLogger) Warnf(format string, args ...interface{}) {
	l.Logger.Warn(fmt.Sprintf(format, args...))
}

// Errorf logs an error message.
func (l *SlogLogger) Errorf(format string, args ...interface{}) {
	l.Logger.Error(fmt.Sprintf(format, args...))
}

// Fatalf logs an error message and exits.
func (l *SlogLogger) Fatalf(format string, args ...interface{}) {
	l.Logger.Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}
