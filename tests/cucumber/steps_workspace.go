package cucumber

import (
	"fmt"
	"os"
	"path/filepath"
)

var scenarioEnv = []string{"QBANK_QUESTIONS_FILE", "QBANK_EXPORT_FORMAT", "QBANK_NO_COLOR"}

// anEmptyWorkspace switches into a fresh temp dir with no config.
func (s *featureState) anEmptyWorkspace() error {
	dir, err := os.MkdirTemp("", "qbank-feature-*")
	if err != nil {
		return fmt.Errorf("create temp workspace: %w", err)
	}
	s.workDir = dir
	for _, key := range scenarioEnv {
		if err := s.unsetEnv(key); err != nil {
			return err
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	return nil
}

func (s *featureState) aQuestionFileWithDuplicateID(name string) error {
	body := `[
  {"id": "dup", "text": "First?", "difficulty": "easy", "topic": "Basics", "ideal_answer": "One."},
  {"id": "dup", "text": "Second?", "difficulty": "hard", "topic": "Basics", "ideal_answer": "Two."}
]
`
	return s.writeFile(name, body)
}

func (s *featureState) aConfigWithVersion(version int) error {
	return s.writeFile(filepath.Join(".qbank", "config.yml"), fmt.Sprintf("version: %d\n", version))
}

func (s *featureState) writeFile(name, body string) error {
	if s.workDir == "" {
		return fmt.Errorf("workspace is not initialized")
	}
	path := filepath.Join(s.workDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
