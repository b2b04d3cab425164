package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/riderlink/riderlink/internal/pkg/models"
)

// AppLogger is the application logger: structured JSON to stdout, with
// an optional file output.
type AppLogger struct {
	*logrus.Logger
	file *os.File
}

// NewAppLogger creates a logger from the given configuration.
func NewAppLogger(config models.LoggerConfig) (*AppLogger, error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	al := &AppLogger{Logger: l}

	if config.FilePath != "" {
		if err := al.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
	}

	return al, nil
}

func (al *AppLogger) setupFileOutput(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	al.file = file
	al.SetOutput(io.MultiWriter(os.Stdout, file))
	return nil
}

// Close releases the file output if one was configured.
func (al *AppLogger) Close() error {
	if al.file != nil {
		return al.file.Close()
	}
	return nil
}

// Info logs an info message with structured fields.
func (al *AppLogger) Info(msg string, fields ...Field) {
	al.WithFields(toLogrusFields(fields)).Info(msg)
}

// Warn logs a warning message with structured fields.
func (al *AppLogger) Warn(msg string, fields ...Field) {
	al.WithFields(toLogrusFields(fields)).Warn(msg)
}

// Error logs an error message with structured fields.
func (al *AppLogger) Error(msg string, fields ...Field) {
	al.WithFields(toLogrusFields(fields)).Error(msg)
}

// Debug logs a debug message with structured fields.
func (al *AppLogger) Debug(msg string, fields ...Field) {
	al.WithFields(toLogrusFields(fields)).Debug(msg)
}

// Fatal logs a fatal message with structured fields and exits.
func (al *AppLogger) Fatal(msg string, fields ...Field) {
	al.WithFields(toLogrusFields(fields)).Fatal(msg)
}
