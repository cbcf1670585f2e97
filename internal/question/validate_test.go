package question

import (
	"errors"
	"strings"
	"testing"
)

func validRecord(id string) Question {
	return Question{
		ID:          id,
		Text:        "What is " + id + "?",
		Difficulty:  DifficultyMedium,
		Topic:       "General",
		IdealAnswer: "An answer for " + id + ".",
	}
}

func TestValidateAcceptsValidRecords(t *testing.T) {
	records := []Question{validRecord("q1"), validRecord("q2")}
	if err := Validate(records); err != nil {
		t.Fatalf("expected valid records, got %v", err)
	}
	if err := Validate(nil); err != nil {
		t.Fatalf("expected empty input to validate, got %v", err)
	}
}

func TestValidateReportsRecordAndField(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(q *Question)
		wantField string
		wantID    string
	}{
		{name: "missing id", mutate: func(q *Question) { q.ID = "" }, wantField: "id"},
		{name: "blank text", mutate: func(q *Question) { q.Text = "  \n" }, wantField: "text", wantID: "q2"},
		{name: "missing difficulty", mutate: func(q *Question) { q.Difficulty = "" }, wantField: "difficulty", wantID: "q2"},
		{name: "capitalized difficulty", mutate: func(q *Question) { q.Difficulty = "Easy" }, wantField: "difficulty", wantID: "q2"},
		{name: "blank topic", mutate: func(q *Question) { q.Topic = "" }, wantField: "topic", wantID: "q2"},
		{name: "blank ideal answer", mutate: func(q *Question) { q.IdealAnswer = "" }, wantField: "ideal_answer", wantID: "q2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			second := validRecord("q2")
			tc.mutate(&second)
			err := Validate([]Question{validRecord("q1"), second})
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(validationErr.Issues) != 1 {
				t.Fatalf("expected 1 issue, got %+v", validationErr.Issues)
			}
			issue := validationErr.Issues[0]
			if issue.Field != tc.wantField {
				t.Fatalf("expected field %q, got %q", tc.wantField, issue.Field)
			}
			if issue.Index != 1 {
				t.Fatalf("expected index 1, got %d", issue.Index)
			}
			if issue.RecordID != tc.wantID {
				t.Fatalf("expected record id %q, got %q", tc.wantID, issue.RecordID)
			}
		})
	}
}

func TestValidateDuplicateID(t *testing.T) {
	err := Validate([]Question{validRecord("q1"), validRecord("q2"), validRecord("q1")})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(validationErr.Issues) != 1 {
		t.Fatalf("expected single duplicate issue, got %+v", validationErr.Issues)
	}
	issue := validationErr.Issues[0]
	if issue.Index != 2 || issue.Field != "id" {
		t.Fatalf("unexpected issue %+v", issue)
	}
	if !strings.Contains(issue.Message, "#0") {
		t.Fatalf("expected first index in message, got %q", issue.Message)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	missing := validRecord("")
	badDifficulty := validRecord("q3")
	badDifficulty.Difficulty = "extreme"
	err := Validate([]Question{missing, badDifficulty})
	if err == nil {
		t.Fatalf("expected error")
	}
	message := err.Error()
	for _, want := range []string{
		"question validation failed",
		"record #0: id: is required",
		`record "q3": difficulty: unsupported value "extreme" (expected easy|medium|hard)`,
	} {
		if !strings.Contains(message, want) {
			t.Fatalf("expected %q in %q", want, message)
		}
	}
}

func TestDifficultyRank(t *testing.T) {
	if !(DifficultyEasy.Rank() < DifficultyMedium.Rank() && DifficultyMedium.Rank() < DifficultyHard.Rank()) {
		t.Fatalf("expected ascending ranks")
	}
	if Difficulty("unknown").Rank() != DifficultyMedium.Rank() {
		t.Fatalf("expected unknown difficulty to rank as medium")
	}
}
