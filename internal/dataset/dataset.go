// Package dataset embeds the canonical Excel interview question collection.
package dataset

import (
	_ "embed"

	"qbank/internal/question"
)

// FileName is the name of the embedded collection file.
const FileName = "questions.json"

//go:embed questions.json
var raw []byte

// Raw returns a copy of the embedded collection bytes.
func Raw() []byte {
	out := make([]byte, len(raw))
	copy(out, raw)
	return out
}

// Load parses and validates the embedded collection.
func Load() (*question.Collection, error) {
	return question.Parse(raw, question.FormatJSON)
}
