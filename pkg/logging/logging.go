package logging

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"
)

// Accepted log destination selectors.
const (
	OutputFile   = "file"
	OutputStdout = "stdout"
)

// Setup builds and installs the global zap logger for the selected
// destination. With the file destination the log goes to a timestamped file
// in the working directory; its name is returned so the caller can remove it
// afterwards if nothing was logged. With stdout the returned name is empty.
func Setup(output, appName, appVersion string) (string, error) {
	cfg := zap.NewProductionConfig()
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	var logFile string
	switch output {
	case OutputStdout:
		cfg.OutputPaths = []string{"stdout"}
	case OutputFile:
		logFile = fmt.Sprintf("%s-sieve.log", time.Now().Format("2006-01-02-15-04-05"))
		cfg.OutputPaths = []string{logFile}
	default:
		return "", fmt.Errorf("unknown log output %q (expected %q or %q)", output, OutputFile, OutputStdout)
	}

	logger, err := cfg.Build()
	if err != nil {
		return "", err
	}

	zap.ReplaceGlobals(logger)
	return logFile, nil
}

// Cleanup removes the log file when nothing was written to it, so clean runs
// do not litter the working directory.
func Cleanup(logFile string) error {
	info, err := os.Stat(logFile)
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return os.Remove(logFile)
	}
	return nil
}

// Sync flushes the logger. Syncing a terminal or pipe fails with "invalid
// argument" on some platforms, so that error is suppressed; anything else is
// reported through the standard logger since zap itself may be the problem.
func Sync(logger *zap.Logger) {
	if err := logger.Sync(); err != nil {
		if term.IsTerminal(int(os.Stdout.Fd())) || isRegularFile(os.Stdout) {
			lowerErr := strings.ToLower(err.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", err)
			}
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
