package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"qbank/internal/config"
)

func TestInitScaffoldsWorkspace(t *testing.T) {
	dir := emptyWorkspace(t)
	code, out, errOut := run(t, "init")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "Wrote "+config.ConfigPath(dir)) {
		t.Fatalf("unexpected output %q", out)
	}

	code, out, errOut = run(t, "validate")
	if code != ExitOK {
		t.Fatalf("validate after init: expected exit %d, got %d (%s)", ExitOK, code, errOut)
	}
	if !strings.Contains(out, filepath.Join(dir, "questions.json")) {
		t.Fatalf("expected scaffolded questions file to be used, got %q", out)
	}

	code, _, errOut = run(t, "init")
	if code != ExitError || !strings.Contains(errOut, "file already exists") {
		t.Fatalf("expected second init to refuse, got %d %q", code, errOut)
	}
}

func TestInitDirAndGitignore(t *testing.T) {
	emptyWorkspace(t)
	target := t.TempDir()
	if err := os.WriteFile(filepath.Join(target, ".gitignore"), []byte("bin"), 0o644); err != nil {
		t.Fatalf("write .gitignore: %v", err)
	}

	code, out, errOut := run(t, "init", "--dir", target, "--gitignore")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "Updated "+filepath.Join(target, ".gitignore")) {
		t.Fatalf("unexpected output %q", out)
	}
	data, err := os.ReadFile(filepath.Join(target, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	if string(data) != "bin\n.qbank/exports/\n" {
		t.Fatalf("unexpected .gitignore %q", data)
	}
}

func TestInitRejectsMissingDir(t *testing.T) {
	emptyWorkspace(t)
	code, _, errOut := run(t, "init", "--dir", filepath.Join(t.TempDir(), "absent"))
	if code != ExitError || !strings.Contains(errOut, "is not a directory") {
		t.Fatalf("expected missing dir error, got %d %q", code, errOut)
	}
}

func TestAddGitignoreEntry(t *testing.T) {
	root := t.TempDir()
	updated, err := addGitignoreEntry(root, ".qbank/exports")
	if err != nil || !updated {
		t.Fatalf("expected first add to update, got %v %v", updated, err)
	}
	updated, err = addGitignoreEntry(root, filepath.Join(root, ".qbank", "exports"))
	if err != nil || updated {
		t.Fatalf("expected duplicate entry to be skipped, got %v %v", updated, err)
	}
	if _, err := addGitignoreEntry(root, "../elsewhere"); err == nil {
		t.Fatalf("expected error for directory outside root")
	}
}
