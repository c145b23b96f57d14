package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/lakshaymaurya-felt/pccleaner/internal/config"
)

func testSettings(dir string) config.Settings {
	return config.Settings{
		LogDir:        dir,
		LogMaxSizeMB:  1,
		LogMaxBackups: 1,
		LogMaxAgeDays: 1,
		Workers:       1,
	}
}

func TestNewWritesJSONLines(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	logger, closer, err := New(testSettings(dir))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { closer.Close() })
	logger.Info("sweep finished", zap.String("target", "Steam"), zap.Int64("deleted", 3))
	logger.Debug("sweep phase")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line (debug filtered), got %d: %q", len(lines), data)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "sweep finished" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["target"] != "Steam" {
		t.Errorf("target = %v", entry["target"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v", entry["level"])
	}
}

func TestNewDebugKeepsDebugLines(t *testing.T) {
	dir := t.TempDir()
	s := testSettings(dir)
	s.Debug = true

	logger, closer, err := New(s)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { closer.Close() })
	logger.Debug("sweep phase", zap.String("phase", "enumerating"))
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"phase":"enumerating"`) {
		t.Errorf("debug line missing from log file: %q", data)
	}
}

func TestCloseReleasesLogFile(t *testing.T) {
	dir := t.TempDir()

	logger, closer, err := New(testSettings(dir))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("sweep finished")
	_ = logger.Sync()

	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Windows refuses to remove a file that is still open.
	path := filepath.Join(dir, FileName)
	if err := os.Remove(path); err != nil {
		t.Errorf("log file still held after Close: %v", err)
	}
}
