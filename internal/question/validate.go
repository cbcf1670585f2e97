package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a single record.
type Issue struct {
	Index    int
	RecordID string
	Field    string
	Message  string
}

// Record names the offending record by id, or by position when the id is missing.
func (issue Issue) Record() string {
	if strings.TrimSpace(issue.RecordID) != "" {
		return fmt.Sprintf("%q", issue.RecordID)
	}
	return fmt.Sprintf("#%d", issue.Index)
}

// String renders the issue as record, field and message.
func (issue Issue) String() string {
	return fmt.Sprintf("record %s: %s: %s", issue.Record(), issue.Field, issue.Message)
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, issue.String())
	}
	return fmt.Sprintf("question validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(index int, id, field, message string) {
	collector.issues = append(collector.issues, Issue{
		Index:    index,
		RecordID: id,
		Field:    field,
		Message:  message,
	})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate checks every record and returns a *ValidationError listing each problem.
// Values are checked as stored; nothing is trimmed or rewritten.
func Validate(records []Question) error {
	collector := &issueCollector{}
	seenIDs := map[string]int{}
	for i, record := range records {
		if isBlank(record.ID) {
			collector.add(i, record.ID, "id", "is required")
		} else if first, exists := seenIDs[record.ID]; exists {
			collector.add(i, record.ID, "id", fmt.Sprintf("duplicate id %q (first seen at #%d)", record.ID, first))
		} else {
			seenIDs[record.ID] = i
		}

		if isBlank(record.Text) {
			collector.add(i, record.ID, "text", "is required")
		}

		switch {
		case record.Difficulty == "":
			collector.add(i, record.ID, "difficulty", "is required")
		case !record.Difficulty.Valid():
			collector.add(i, record.ID, "difficulty", fmt.Sprintf("unsupported value %q (expected %s)", record.Difficulty, difficultyList()))
		}

		if isBlank(record.Topic) {
			collector.add(i, record.ID, "topic", "is required")
		}
		if isBlank(record.IdealAnswer) {
			collector.add(i, record.ID, "ideal_answer", "is required")
		}
	}
	return collector.result()
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func difficultyList() string {
	names := make([]string, 0, len(Difficulties))
	for _, d := range Difficulties {
		names = append(names, string(d))
	}
	return strings.Join(names, "|")
}
