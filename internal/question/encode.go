package question

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Encode writes the collection in storage order.
func (c *Collection) Encode(w io.Writer, format Format) error {
	records := c.Records()
	if records == nil {
		records = []Question{}
	}
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(records); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		node, err := yamlNode(records)
		if err != nil {
			return err
		}
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(node); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// yamlNode builds the document tree, marking multi-line strings as literal blocks.
// Values with carriage returns stay quoted since block scalars normalize line breaks.
// The emitter falls back to a quoted style when a value cannot be a block scalar.
func yamlNode(records []Question) (*yaml.Node, error) {
	var node yaml.Node
	if err := node.Encode(records); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	markLiteral(&node)
	return &node, nil
}

func markLiteral(node *yaml.Node) {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!str" && strings.Contains(node.Value, "\n") {
		if strings.Contains(node.Value, "\r") {
			node.Style = yaml.DoubleQuotedStyle
		} else {
			node.Style = yaml.LiteralStyle
		}
	}
	for _, child := range node.Content {
		markLiteral(child)
	}
}
