// File: pkg/sieve/discovery.go
package sieve

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// GzExtension is the file extension recognized by discovery.
const GzExtension = ".gz"

// Discover walks the root directory recursively and collects every .gz file
// beneath it, together with the combined compressed size for progress
// accounting. A missing or non-directory root is fatal; unreadable
// subdirectories and entries are logged and skipped.
func Discover(root string, logger *zap.Logger) ([]FileTask, int64, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to resolve root path: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, fmt.Errorf("%w: %s", ErrRootNotFound, absRoot)
		}
		return nil, 0, fmt.Errorf("failed to stat root directory: %w", err)
	}
	if !info.IsDir() {
		return nil, 0, fmt.Errorf("%w: %s", ErrRootNotDir, absRoot)
	}

	var tasks []FileTask
	var totalBytes int64

	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Skipping unreadable path during discovery", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() || filepath.Ext(d.Name()) != GzExtension {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			logger.Warn("Failed to stat file during discovery", zap.String("path", path), zap.Error(err))
			return nil
		}

		tasks = append(tasks, FileTask{Path: path, Size: fi.Size()})
		totalBytes += fi.Size()
		return nil
	})
	if walkErr != nil {
		return nil, 0, fmt.Errorf("failed to walk root directory: %w", walkErr)
	}

	logger.Debug("Completed discovery",
		zap.String("root", absRoot),
		zap.Int("files", len(tasks)),
		zap.Int64("totalBytes", totalBytes))
	return tasks, totalBytes, nil
}
