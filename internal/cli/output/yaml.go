package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// PrintYAML writes data as YAML to the writer.
func PrintYAML(w io.Writer, data any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer func() { _ = encoder.Close() }()
	return encoder.Encode(data)
}

// JSONToYAML converts a JSON document to block-style YAML, keeping the
// document's key order.
func JSONToYAML(w io.Writer, body []byte) error {
	if !json.Valid(body) {
		return fmt.Errorf("body is not valid JSON")
	}

	var node yaml.Node
	if err := yaml.Unmarshal(body, &node); err != nil {
		return fmt.Errorf("failed to parse body: %w", err)
	}
	clearStyle(&node)

	return PrintYAML(w, &node)
}

// clearStyle drops the flow and quoting styles inherited from JSON syntax.
// The encoder still quotes strings that would otherwise read back as
// another type.
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}
