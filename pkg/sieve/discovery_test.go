package sieve

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestDiscoverFindsNestedGzFiles(t *testing.T) {
	dir := t.TempDir()

	var wantTotal int64
	fixtures := []string{
		"app.log.gz",
		"sub/app.log.gz",
		"sub/nested/old.gz",
	}
	for _, rel := range fixtures {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", rel, err)
		}
		task := writeGzFile(t, path, "line one\nline two\n")
		wantTotal += task.Size
	}
	// Non-matching files must be ignored.
	for _, rel := range []string{"plain.log", "sub/notes.txt", "archive.tar"} {
		path := filepath.Join(dir, rel)
		if err := os.WriteFile(path, []byte("not compressed"), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", rel, err)
		}
	}

	tasks, totalBytes, err := Discover(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(tasks) != len(fixtures) {
		t.Errorf("Discovered %d files, want %d: %v", len(tasks), len(fixtures), tasks)
	}
	if totalBytes != wantTotal {
		t.Errorf("Total bytes = %d, want %d", totalBytes, wantTotal)
	}
	for _, task := range tasks {
		if filepath.Ext(task.Path) != ".gz" {
			t.Errorf("Discovered non-.gz file: %s", task.Path)
		}
		if !filepath.IsAbs(task.Path) {
			t.Errorf("Discovered path is not absolute: %s", task.Path)
		}
	}
}

func TestDiscoverEmptyDirectory(t *testing.T) {
	tasks, totalBytes, err := Discover(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(tasks) != 0 || totalBytes != 0 {
		t.Errorf("Discover() = %d tasks, %d bytes; want none", len(tasks), totalBytes)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, _, err := Discover(filepath.Join(t.TempDir(), "does-not-exist"), zap.NewNop())
	if !errors.Is(err, ErrRootNotFound) {
		t.Errorf("Discover() error = %v, want ErrRootNotFound", err)
	}
}

func TestDiscoverRootIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.gz")
	writeGzFile(t, path, "content\n")

	_, _, err := Discover(path, zap.NewNop())
	if !errors.Is(err, ErrRootNotDir) {
		t.Errorf("Discover() error = %v, want ErrRootNotDir", err)
	}
}
