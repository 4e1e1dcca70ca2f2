package fileops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomicCreatesAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "n_test", "coin.pact")

	if err := WriteFileAtomic(path, "first", OutputMode); err != nil {
		t.Fatalf("first write: %v", err)
	}
	assertFile(t, path, "first", OutputMode)

	if err := WriteFileAtomic(path, "second", OutputMode); err != nil {
		t.Fatalf("second write: %v", err)
	}
	assertFile(t, path, "second", OutputMode)

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the target file, found %d entries", len(entries))
	}
}

func TestWriteFileAtomicRejectsDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coin.pact")
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := WriteFileAtomic(path, "x", OutputMode); err == nil {
		t.Fatalf("expected error writing over a directory")
	}
}

func TestWriteFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "file.txt")
	if err := WriteFile(path, "content", TempMode); err != nil {
		t.Fatalf("write: %v", err)
	}
	assertFile(t, path, "content", TempMode)
}

func TestRemoveIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "tmp.json")
	if err := os.WriteFile(file, []byte("{}"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := RemoveFile(file); err != nil {
			t.Fatalf("remove file pass %d: %v", i, err)
		}
		if err := RemoveDir(dir); err != nil {
			t.Fatalf("remove dir pass %d: %v", i, err)
		}
	}
	if FileExists(file) || DirExists(dir) {
		t.Fatalf("expected paths to be removed")
	}
	if err := RemoveFile(""); err != nil {
		t.Fatalf("remove empty path: %v", err)
	}
}

func assertFile(t *testing.T, path, wantContent string, wantPerm os.FileMode) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if string(data) != wantContent {
		t.Fatalf("content mismatch for %s: got %q want %q", path, string(data), wantContent)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if got := info.Mode().Perm(); got != wantPerm {
		t.Fatalf("perm mismatch for %s: got %o want %o", path, got, wantPerm)
	}
}
