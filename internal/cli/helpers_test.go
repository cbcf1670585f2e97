package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const miniJSON = `[
  {"id": "b1", "text": "Hard one?", "difficulty": "hard", "topic": "Macros", "ideal_answer": "Line one.\nLine two."},
  {"id": "a1", "text": "Easy one?", "difficulty": "easy", "topic": "Basics", "ideal_answer": "Yes."}
]
`

// useWorkingDir points config discovery at dir for the duration of the test.
func useWorkingDir(t *testing.T, dir string) {
	t.Helper()
	original := workingDir
	workingDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { workingDir = original })
}

// emptyWorkspace returns a temp dir with no config, used as the working dir.
func emptyWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	useWorkingDir(t, dir)
	return dir
}

func writeFile(t *testing.T, path, body string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, err bytes.Buffer
	code := Run(args, &out, &err)
	return code, out.String(), err.String()
}
