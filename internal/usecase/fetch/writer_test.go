package fetch

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/aserranoni/kda-module-fetcher/internal/domain/module"
)

func TestWriteModules(t *testing.T) {
	root := t.TempDir()
	modules := []module.Module{
		{QualifiedName: "coin", Name: "coin", Code: "(module coin GOV)"},
		{QualifiedName: "n_test.util", Namespace: "n_test", Name: "util", Code: "(module util GOV)"},
		{QualifiedName: "coin", Name: "coin", Code: "(module coin GOV 2)"},
	}

	paths, err := WriteModules(root, "n_test", modules)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	want := []string{
		filepath.Join(root, "n_test", "coin.pact"),
		filepath.Join(root, "n_test", "util.pact"),
	}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}

	data, err := os.ReadFile(want[0])
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "(module coin GOV 2)" {
		t.Fatalf("expected last duplicate to win, got %q", data)
	}
	info, err := os.Stat(want[1])
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Fatalf("unexpected file mode: %v", info.Mode().Perm())
	}
}

func TestWriteModulesOutputRootIsFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(root, []byte("x"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := WriteModules(root, "n_test", []module.Module{{Name: "coin", Code: "x"}}); err == nil {
		t.Fatalf("expected error when output root is a file")
	}
}
