package cucumber

import (
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"qbank/internal/dataset"
	"qbank/internal/question"
)

func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected zero exit code, got %d (stderr %q)", s.exitCode, s.stderr.String())
	}
	return nil
}

// theExitCodeIsNonZero asserts that the CLI returned an error code.
func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

// theOutputListsCommands asserts the output contains expected command names.
func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected %q in output, got %q", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) theErrorOutputContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected %q in error output, got %q", text, s.stderr.String())
	}
	return nil
}

// theListedIDsAre compares the first column of a list table, header excluded.
func (s *featureState) theListedIDsAre(expected string) error {
	var ids []string
	for i, line := range strings.Split(strings.TrimSpace(s.stdout.String()), "\n") {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		ids = append(ids, strings.Fields(line)[0])
	}
	if got := strings.Join(ids, ","); got != expected {
		return fmt.Errorf("expected ids %q, got %q", expected, got)
	}
	return nil
}

// theOutputEqualsTheEmbeddedCollection parses stdout and compares it record by record.
func (s *featureState) theOutputEqualsTheEmbeddedCollection(format string) error {
	parsed, err := question.Parse(s.stdout.Bytes(), question.Format(format))
	if err != nil {
		return fmt.Errorf("parse %s output: %w", format, err)
	}
	embedded, err := dataset.Load()
	if err != nil {
		return fmt.Errorf("load embedded collection: %w", err)
	}
	if !question.Equal(parsed, embedded) {
		return fmt.Errorf("%s output differs from the embedded collection", format)
	}
	return nil
}
