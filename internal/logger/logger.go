package logger

import (
	"sync"
)

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Options configures the logger. File is optional; when set, JSON logs are
// also written there with rotation.
type Options struct {
	Level string
	File  string
}

var (
	// globalLogger holds the singleton logger instance.
	globalLogger *Logger
	once         sync.Once
)

// Init builds the singleton logger from opts. Later calls return the
// already initialized instance unchanged.
func Init(opts Options) *Logger {
	once.Do(func() {
		globalLogger = New(opts)
	})
	return globalLogger
}

// Get returns the singleton logger, initializing it with level on first use.
func Get(level string) *Logger {
	return Init(Options{Level: level})
}
