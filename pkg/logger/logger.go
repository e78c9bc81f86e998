// Package logger writes the app's debug log. The terminal belongs to the UI, so
// every entry goes to <storage>/debug.log and nothing is printed.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"Conexoes/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level string

const (
	DEBUG Level = "DEBUG"
	INFO  Level = "INFO"
	WARN  Level = "WARN"
	ERROR Level = "ERROR"
)

// ParseLevel maps a config string to a zap level, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	switch Level(strings.ToUpper(strings.TrimSpace(s))) {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

const sessionKey = "session"

// Logger wraps zap.SugaredLogger with a per-run session id.
type Logger struct {
	sugar    *zap.SugaredLogger
	file     *os.File
	filePath string
	session  string
}

// New opens (or creates) storagePath/debug.log and returns a logger writing
// entries at level and above.
func New(storagePath, level string) (*Logger, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath := filepath.Join(storagePath, "debug.log")
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		CallerKey:      "caller",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	fileCore := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(logFile), ParseLevel(level))
	session := uuid.NewString()
	tagged := fileCore.With([]zapcore.Field{zap.String(sessionKey, session)})
	zapLogger := zap.New(sanitizing(tagged), zap.AddCaller())

	return &Logger{
		sugar:    zapLogger.Sugar(),
		file:     logFile,
		filePath: logPath,
		session:  session,
	}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// Sugar exposes the structured logger for injection into other packages.
func (l *Logger) Sugar() *zap.SugaredLogger {
	return l.sugar
}

// Session is the id attached to every entry of this run.
func (l *Logger) Session() string {
	return l.session
}

// Path is the log file location, empty for Nop.
func (l *Logger) Path() string {
	return l.filePath
}

func (l *Logger) log(level Level, message string) {
	s := l.sugar.WithOptions(zap.AddCallerSkip(2))
	switch level {
	case DEBUG:
		s.Debug(message)
	case INFO:
		s.Info(message)
	case WARN:
		s.Warn(message)
	case ERROR:
		s.Error(message)
	}
}

func (l *Logger) Debug(format string, v ...any) {
	l.log(DEBUG, fmt.Sprintf(format, v...))
}

func (l *Logger) Info(format string, v ...any) {
	l.log(INFO, fmt.Sprintf(format, v...))
}

func (l *Logger) Warn(format string, v ...any) {
	l.log(WARN, fmt.Sprintf(format, v...))
}

func (l *Logger) Error(format string, v ...any) {
	l.log(ERROR, fmt.Sprintf(format, v...))
}

// GetLastLines returns up to n trailing lines of the log file.
func (l *Logger) GetLastLines(n int) string {
	return lastLines(l.filePath, n)
}

func lastLines(path string, n int) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return "Error reading log file"
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	if n <= 0 || len(lines) <= n {
		return strings.Join(lines, "\n")
	}
	return strings.Join(lines[len(lines)-n:], "\n")
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	_ = l.sugar.Sync()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// sanitizingCore scrubs messages and string fields before they reach the
// wrapped core.
type sanitizingCore struct {
	zapcore.Core
}

func sanitizing(c zapcore.Core) zapcore.Core {
	return &sanitizingCore{Core: c}
}

func (c *sanitizingCore) With(fields []zapcore.Field) zapcore.Core {
	return &sanitizingCore{Core: c.Core.With(scrubFields(fields))}
}

func (c *sanitizingCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *sanitizingCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	ent.Message = utils.SanitizeLog(ent.Message)
	return c.Core.Write(ent, scrubFields(fields))
}

func scrubFields(fields []zapcore.Field) []zapcore.Field {
	out := make([]zapcore.Field, len(fields))
	for i, f := range fields {
		if f.Type == zapcore.StringType && f.Key != sessionKey {
			f.String = utils.SanitizeLog(f.String)
		}
		out[i] = f
	}
	return out
}
