package logger

import (
	"sync"

	"github.com/riderlink/riderlink/internal/pkg/models"
)

var (
	globalLogger *AppLogger
	mu           sync.RWMutex
)

// SetGlobalLogger installs the process-wide logger. Call once at startup.
func SetGlobalLogger(l *AppLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = l
}

// GetGlobalLogger returns the process-wide logger, creating a default
// one if none was installed.
func GetGlobalLogger() *AppLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		globalLogger, _ = NewAppLogger(models.LoggerConfig{Level: "info"})
	}
	return globalLogger
}

// Info logs an info message using the global logger.
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger.
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Error logs an error message using the global logger.
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// Debug logs a debug message using the global logger.
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}
