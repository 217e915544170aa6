package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/md2docx/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "input.md")
	content := []byte("# Title\n")

	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	got, info, err := fsutil.ReadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if string(got) != string(content) {
		t.Errorf("expected content %q, got %q", content, got)
	}
	if info == nil {
		t.Fatal("expected FileInfo, got nil")
	}
	if info.Size != int64(len(content)) {
		t.Errorf("expected size %d, got %d", len(content), info.Size)
	}
	if info.Path != path {
		t.Errorf("expected path %q, got %q", path, info.Path)
	}
}

func TestReadFileNotFound(t *testing.T) {
	t.Parallel()

	_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.md"))

	if !errors.Is(err, fsutil.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReadFileDirectory(t *testing.T) {
	t.Parallel()

	_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())

	if !errors.Is(err, fsutil.ErrIsDirectory) {
		t.Errorf("expected ErrIsDirectory, got %v", err)
	}
}

func TestReadFileCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := fsutil.ReadFile(ctx, "anything")

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "present.md")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if !fsutil.Exists(path) {
		t.Error("expected Exists to be true for regular file")
	}
	if fsutil.Exists(filepath.Join(dir, "absent.md")) {
		t.Error("expected Exists to be false for missing file")
	}
	if fsutil.Exists(dir) {
		t.Error("expected Exists to be false for directory")
	}
}
