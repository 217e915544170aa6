package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/md2docx/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.docx")
	content := []byte("document bytes")

	if err := fsutil.WriteAtomic(context.Background(), path, content, 0); err != nil {
		t.Fatalf("WriteAtomic: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("expected %q, got %q", content, got)
	}

	stat, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if stat.Mode().Perm() != fsutil.DefaultFileMode {
		t.Errorf("expected mode %v, got %v", fsutil.DefaultFileMode, stat.Mode().Perm())
	}
}

func TestWriteAtomicOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.docx")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if err := fsutil.WriteAtomic(context.Background(), path, []byte("new"), 0); err != nil {
		t.Fatalf("WriteAtomic: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "new" {
		t.Errorf("expected overwrite, got %q", got)
	}
}

func TestWriteAtomicLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.docx")

	if err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0); err != nil {
		t.Fatalf("WriteAtomic: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp.") {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestWriteAtomicCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := fsutil.WriteAtomic(ctx, filepath.Join(t.TempDir(), "out.docx"), []byte("x"), 0)

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
