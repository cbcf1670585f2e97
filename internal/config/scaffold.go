package config

import (
	"fmt"
	"os"
	"path/filepath"

	"qbank/internal/dataset"
)

const defaultConfig = `version: 1
questions_file: "questions.json"
export:
  format: json
  output_dir: ".qbank/exports"
ui:
  no_color: false
`

// Scaffold writes a default config and a copy of the embedded collection under root.
// Existing files are never overwritten.
func Scaffold(root string) error {
	if root == "" {
		return fmt.Errorf("root is required")
	}
	configPath := ConfigPath(root)
	questionsPath := filepath.Join(root, dataset.FileName)
	for _, path := range []string{configPath, questionsPath} {
		if err := ensureAbsent(path); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(ConfigDir(root), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	if err := os.WriteFile(questionsPath, dataset.Raw(), 0o644); err != nil {
		return fmt.Errorf("write questions file: %w", err)
	}
	return nil
}

func ensureAbsent(path string) error {
	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return fmt.Errorf("path %q is a directory", path)
		}
		return fmt.Errorf("file already exists at %q", path)
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return nil
}
