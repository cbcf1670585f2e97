package config

import (
	"fmt"
	"os"
	"strings"

	"qbank/internal/question"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks a normalized config. Relative paths resolve against root.
func Validate(cfg *Config, root string) error {
	collector := &issueCollector{}
	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if cfg.QuestionsFile != "" {
		if _, err := question.FormatFromPath(cfg.QuestionsFile); err != nil {
			collector.add("questions_file", "must end in .json, .yml or .yaml")
		} else {
			path := ResolvePath(root, cfg.QuestionsFile)
			info, err := os.Stat(path)
			switch {
			case os.IsNotExist(err):
				collector.add("questions_file", fmt.Sprintf("file not found: %s", path))
			case err != nil:
				collector.add("questions_file", fmt.Sprintf("stat %s: %v", path, err))
			case info.IsDir():
				collector.add("questions_file", fmt.Sprintf("%s is a directory", path))
			}
		}
	}

	if !isExportFormat(cfg.Export.Format) {
		collector.add("export.format", fmt.Sprintf("unsupported format %q (expected %s)", cfg.Export.Format, strings.Join(ExportFormats, "|")))
	}
	return collector.result()
}

func isExportFormat(format string) bool {
	for _, candidate := range ExportFormats {
		if candidate == format {
			return true
		}
	}
	return false
}
