package isoduration

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return Format(d), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The node must be a string
// scalar; errors carry the node position.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d, column %d: isoduration: expected a string, got %s: %w",
			node.Line, node.Column, yamlKind(node.Kind), ErrMalformedInput)
	}
	if node.ShortTag() != "!!str" {
		return fmt.Errorf("line %d, column %d: isoduration: expected a string, got %s %q: %w",
			node.Line, node.Column, node.ShortTag(), node.Value, ErrMalformedInput)
	}

	v, err := Parse(node.Value)
	if err != nil {
		return fmt.Errorf("line %d, column %d: %w", node.Line, node.Column, err)
	}
	*d = v
	return nil
}

func yamlKind(k yaml.Kind) string {
	switch k {
	case yaml.MappingNode:
		return "a mapping"
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.AliasNode:
		return "an alias"
	case yaml.DocumentNode:
		return "a document"
	}
	return "a scalar"
}
