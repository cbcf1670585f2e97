package question

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Format selects the on-disk encoding of a collection.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// ErrEmptyDocument indicates the input held no collection at all.
	ErrEmptyDocument = errors.New("empty document")
	// ErrUnknownFormat indicates a format name or extension that is not supported.
	ErrUnknownFormat = errors.New("unknown format")
	// ErrMultipleDocuments indicates more than one document in a single input.
	ErrMultipleDocuments = errors.New("multiple documents are not supported")
)

// ParseFormat resolves a format name such as "json", "yaml" or "yml".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q (expected json|yaml)", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Load reads, parses, and validates a collection file.
func Load(path string) (*Collection, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes data in the given format and validates the records.
// A malformed input never yields a partial collection.
func Parse(data []byte, format Format) (*Collection, error) {
	var (
		records []Question
		err     error
	)
	switch format {
	case FormatJSON:
		records, err = decodeJSON(data)
	case FormatYAML:
		records, err = decodeYAML(data)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return NewCollection(records)
}

// recordKeys are the exact JSON keys a record may carry.
var recordKeys = map[string]bool{
	"id":           true,
	"text":         true,
	"difficulty":   true,
	"topic":        true,
	"ideal_answer": true,
}

func decodeJSON(data []byte) ([]Question, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("parse json: invalid UTF-8 in input")
	}
	if err := checkRecordKeys(data); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	var records []Question
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&records); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("parse json: %w", ErrEmptyDocument)
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}
	var extra json.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse json: %w", ErrMultipleDocuments)
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if records == nil {
		return nil, fmt.Errorf("parse json: %w", ErrEmptyDocument)
	}
	return records, nil
}

// checkRecordKeys walks the top-level array and rejects record keys that are not
// an exact, unique match for a field. encoding/json matches keys case-insensitively
// and keeps the last duplicate. Inputs that are not an array of objects are left
// for the decoder to report.
func checkRecordKeys(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	token, err := decoder.Token()
	if err != nil || token != json.Delim('[') {
		return nil
	}
	for index := 0; decoder.More(); index++ {
		token, err := decoder.Token()
		if err != nil {
			return nil
		}
		if token != json.Delim('{') {
			return nil
		}
		seen := map[string]bool{}
		for decoder.More() {
			token, err := decoder.Token()
			if err != nil {
				return nil
			}
			key, ok := token.(string)
			if !ok {
				return nil
			}
			if !recordKeys[key] {
				return fmt.Errorf("record #%d: unknown field %q", index, key)
			}
			if seen[key] {
				return fmt.Errorf("record #%d: duplicate field %q", index, key)
			}
			seen[key] = true
			var value json.RawMessage
			if err := decoder.Decode(&value); err != nil {
				return nil
			}
		}
		if _, err := decoder.Token(); err != nil {
			return nil
		}
	}
	return nil
}

func decodeYAML(data []byte) ([]Question, error) {
	var records []Question
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&records); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("parse yaml: %w", ErrEmptyDocument)
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: %w", ErrMultipleDocuments)
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if records == nil {
		return nil, fmt.Errorf("parse yaml: %w", ErrEmptyDocument)
	}
	return records, nil
}
