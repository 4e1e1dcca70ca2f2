package command

import (
	"os"
	"path/filepath"
	"testing"
)

func setWorkingDir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore cwd %s: %v", prev, err)
		}
	})
}

// unsetEnv clears key for the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unsetenv %s: %v", key, err)
	}
}

type fetchEnv struct {
	root     string
	template string
	output   string
	workDir  string
}

// newFetchEnv isolates the test in a temp working directory with a template.
func newFetchEnv(t *testing.T) fetchEnv {
	t.Helper()
	for _, key := range []string{
		"KDA_FETCH_NETWORK_URL", "KDA_FETCH_CHAIN", "KDA_FETCH_NAMESPACE", "KDA_FETCH_TEMPLATE",
		"KDA_FETCH_OUTPUT", "KDA_FETCH_KDA", "KDA_FETCH_TIMEOUT", "KDA_FETCH_WORK_DIR",
		"KDA_FETCH_S3_BUCKET", "KDA_FETCH_S3_PREFIX", "KDA_FETCH_S3_REGION", "KDA_FETCH_S3_ENDPOINT",
	} {
		unsetEnv(t, key)
	}
	root := t.TempDir()
	setWorkingDir(t, root)

	env := fetchEnv{
		root:     root,
		template: filepath.Join(root, "fetch-modules.ktpl"),
		output:   filepath.Join(root, "out"),
		workDir:  filepath.Join(root, "work"),
	}
	content := "fetch (chain={{{chain}}}, ns={{{namespace}}})"
	if err := os.WriteFile(env.template, []byte(content), 0o600); err != nil {
		t.Fatalf("write template: %v", err)
	}
	return env
}

func (e fetchEnv) args(extra ...string) []string {
	base := []string{
		"--template", e.template,
		"--output", e.output,
		"--work-dir", e.workDir,
		"--no-emoji",
	}
	return append(base, extra...)
}
