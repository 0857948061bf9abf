package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdir switches the working directory for one test, since the file
// destination writes its log next to where the tool was invoked.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("Failed to restore working directory: %v", err)
		}
	})
}

func TestSetupStdout(t *testing.T) {
	logFile, err := Setup(OutputStdout, "logsieve", "test")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if logFile != "" {
		t.Errorf("Setup(stdout) returned log file %q, want empty", logFile)
	}
}

func TestSetupFileCreatesTimestampedLog(t *testing.T) {
	chdir(t, t.TempDir())

	logFile, err := Setup(OutputFile, "logsieve", "test")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if !strings.HasSuffix(logFile, "-sieve.log") {
		t.Errorf("Log file name = %q, want *-sieve.log", logFile)
	}
	if _, err := os.Stat(logFile); err != nil {
		t.Errorf("Log file was not created: %v", err)
	}
}

func TestSetupUnknownOutput(t *testing.T) {
	if _, err := Setup("syslog", "logsieve", "test"); err == nil {
		t.Error("Setup() expected error for unknown output, got nil")
	}
}

func TestCleanupRemovesEmptyLog(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "empty-sieve.log")
	if err := os.WriteFile(logFile, nil, 0644); err != nil {
		t.Fatalf("Failed to create fixture: %v", err)
	}

	if err := Cleanup(logFile); err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}
	if _, err := os.Stat(logFile); !os.IsNotExist(err) {
		t.Error("Empty log file was not removed")
	}
}

func TestCleanupKeepsNonEmptyLog(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "used-sieve.log")
	if err := os.WriteFile(logFile, []byte(`{"level":"warn"}`), 0644); err != nil {
		t.Fatalf("Failed to create fixture: %v", err)
	}

	if err := Cleanup(logFile); err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}
	if _, err := os.Stat(logFile); err != nil {
		t.Error("Non-empty log file was removed")
	}
}
