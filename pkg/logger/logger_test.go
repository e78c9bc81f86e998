package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tempDir := t.TempDir()

	logger, err := New(tempDir, "DEBUG")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	if logger.sugar == nil {
		t.Fatal("Logger sugar is nil")
	}
	if logger.Session() == "" {
		t.Error("Session id should be set")
	}
	if logger.Path() != filepath.Join(tempDir, "debug.log") {
		t.Errorf("Path() = %q", logger.Path())
	}
}

func TestLoggerFileCreation(t *testing.T) {
	tempDir := t.TempDir()

	logger, err := New(tempDir, "INFO")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Info("Test message %d", 1)
	logger.Debug("filtered out")
	logger.Close()

	content, err := os.ReadFile(filepath.Join(tempDir, "debug.log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	contentStr := string(content)
	if !strings.Contains(contentStr, "Test message 1") {
		t.Errorf("Log file doesn't contain expected message. Content: %s", contentStr)
	}
	if strings.Contains(contentStr, "filtered out") {
		t.Error("DEBUG entry written at INFO level")
	}
	if !strings.Contains(contentStr, logger.Session()) {
		t.Error("entries should carry the session id")
	}
}

func TestLoggerRedactsEmails(t *testing.T) {
	tempDir := t.TempDir()

	logger, err := New(tempDir, "DEBUG")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Info("onboarding email maria.silva@example.com")
	logger.Sugar().Infow("structured", "email", "alex@example.org")
	logger.Close()

	content, err := os.ReadFile(logger.Path())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	contentStr := string(content)
	for _, leaked := range []string{"maria.silva@", "alex@"} {
		if strings.Contains(contentStr, leaked) {
			t.Errorf("log leaked %q:\n%s", leaked, contentStr)
		}
	}
	if !strings.Contains(contentStr, "m***@example.com") {
		t.Errorf("expected masked address in log:\n%s", contentStr)
	}
}

func TestGetLastLines(t *testing.T) {
	tempDir := t.TempDir()

	logger, err := New(tempDir, "INFO")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Info("Line 1")
	logger.Info("Line 2")
	logger.Info("Line 3")
	logger.Sync()

	last2 := logger.GetLastLines(2)
	if strings.Count(last2, "\n") != 1 {
		t.Errorf("expected exactly two lines, got:\n%s", last2)
	}
	if strings.Contains(last2, "Line 1") || !strings.Contains(last2, "Line 3") {
		t.Errorf("wrong tail:\n%s", last2)
	}

	if all := logger.GetLastLines(10); !strings.Contains(all, "Line 1") {
		t.Errorf("expected whole file when asking for more lines than exist:\n%s", all)
	}
	logger.Close()
}

func TestLastLinesMissingFile(t *testing.T) {
	if got := lastLines(filepath.Join(t.TempDir(), "none.log"), 5); got != "Error reading log file" {
		t.Errorf("lastLines() = %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"INFO":  zapcore.InfoLevel,
		"Warn":  zapcore.WarnLevel,
		"ERROR": zapcore.ErrorLevel,
		"bogus": zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("dropped")
	if err := l.Close(); err != nil {
		t.Errorf("Close() on Nop = %v", err)
	}
}

func TestLoggerKeepsSessionIDs(t *testing.T) {
	tempDir := t.TempDir()

	logger, err := New(tempDir, "INFO")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	numeric := "12345678-1234-4123-8123-123456789012"
	logger.Sugar().With("session", numeric).Info("child logger")
	logger.Sugar().Infow("entry", "session", numeric)
	logger.Close()

	content, err := os.ReadFile(logger.Path())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if got := strings.Count(string(content), numeric); got != 2 {
		t.Errorf("session id should survive redaction twice, found %d:\n%s", got, content)
	}
	if strings.Contains(string(content), "REDACTED") {
		t.Errorf("nothing here is sensitive:\n%s", content)
	}
}
