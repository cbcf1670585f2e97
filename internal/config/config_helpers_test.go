package config

import (
	"os"
	"path/filepath"
	"testing"
)

// writeConfig writes a config body under root/.qbank/config.yml and returns its path.
func writeConfig(t *testing.T, root, body string) string {
	t.Helper()
	path := ConfigPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func writeQuestions(t *testing.T, root, name string) {
	t.Helper()
	payload := `[{"id": "q1", "text": "T", "difficulty": "easy", "topic": "T", "ideal_answer": "A"}]`
	if err := os.WriteFile(filepath.Join(root, name), []byte(payload), 0o644); err != nil {
		t.Fatalf("write questions file: %v", err)
	}
}
