// Package logger provides structured leveled logging for the enumerator and
// its CLI.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// Logger provides structured logging.
type Logger struct {
	level  LogLevel
	logger *log.Logger
}

var defaultLogger *Logger

func init() {
	defaultLogger = New(levelFromEnv())
}

// levelFromEnv reads OPENCUBES_LOG_LEVEL, defaulting to INFO.
func levelFromEnv() LogLevel {
	switch strings.ToLower(os.Getenv("OPENCUBES_LOG_LEVEL")) {
	case "debug":
		return DEBUG
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}

// New creates a new logger instance.
func New(level LogLevel) *Logger {
	return &Logger{
		level:  level,
		logger: log.New(os.Stderr, "", log.Ldate|log.Ltime),
	}
}

// SetLevel sets the global log level.
func SetLevel(level LogLevel) {
	defaultLogger.level = level
}

// Debug logs a debug message.
func Debug(format string, args ...interface{}) { defaultLogger.Debug(format, args...) }

// Info logs an info message.
func Info(format string, args ...interface{}) { defaultLogger.Info(format, args...) }

// Warn logs a warning message.
func Warn(format string, args ...interface{}) { defaultLogger.Warn(format, args...) }

// Error logs an error message.
func Error(format string, args ...interface{}) { defaultLogger.Error(format, args...) }

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.level <= DEBUG {
		l.log("DEBUG", format, args...)
	}
}

// Info logs an info message.
func (l *Logger) Info(format string, args ...interface{}) {
	if l.level <= INFO {
		l.log("INFO", format, args...)
	}
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.level <= WARN {
		l.log("WARN", format, args...)
	}
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	if l.level <= ERROR {
		l.log("ERROR", format, args...)
	}
}

func (l *Logger) log(level, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.logger.Output(3, fmt.Sprintf("[%s] %s", level, msg))
}
