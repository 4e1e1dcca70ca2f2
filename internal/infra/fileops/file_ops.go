// Where: internal/infra/fileops/file_ops.go
// What: Shared filesystem operations for the workspace and module output.
// Why: Keep directory creation, atomic writes, and idempotent removal consistent.
package fileops

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	DirMode    fs.FileMode = 0o755
	OutputMode fs.FileMode = 0o644
	TempMode   fs.FileMode = 0o600
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, DirMode)
}

// WriteFile writes content to path with mode, creating parent directories.
func WriteFile(path, content string, mode fs.FileMode) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), mode)
}

// WriteFileAtomic replaces path with content via a sibling temp file and rename,
// so readers never observe a partially written file.
func WriteFileAtomic(path, content string, mode fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := EnsureDir(dir); err != nil {
		return err
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return &fs.PathError{Op: "write", Path: path, Err: errors.New("is a directory")}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return err
	}
	return nil
}

// RemoveFile deletes path. A missing file is not an error.
func RemoveFile(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func RemoveDir(path string) error {
	if path == "" {
		return nil
	}
	if err := os.RemoveAll(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
