package mapping

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"ormbind/internal/annotation"
)

// UnmarshalYAML implements custom YAML unmarshaling for Annotations.
// Accepts a sequence whose items are either a bare annotation name or a
// single-key map from the annotation name to its body.
func (a *Annotations) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: expected a sequence of annotations, got %v", node.Line, kindName(node.Kind))
	}

	items, err := decodeAnnotations(node)
	if err != nil {
		return err
	}

	*a = items

	return nil
}

// MarshalYAML implements custom YAML marshaling for Annotations, producing
// the shortest form each annotation can be read back from.
func (a Annotations) MarshalYAML() (any, error) {
	return encodeAnnotations(a), nil
}

func decodeAnnotations(node *yaml.Node) (Annotations, error) {
	out := make(Annotations, 0, len(node.Content))

	for _, item := range node.Content {
		ann, err := decodeAnnotation(item)
		if err != nil {
			return nil, err
		}

		out = append(out, ann)
	}

	return out, nil
}

func decodeAnnotation(node *yaml.Node) (*annotation.Annotation, error) {
	if node.Kind == yaml.AliasNode {
		return decodeAnnotation(node.Alias)
	}

	switch node.Kind {
	case yaml.ScalarNode:
		name := strings.TrimSpace(node.Value)
		if name == "" {
			return nil, fmt.Errorf("line %d: annotation name is empty", node.Line)
		}

		return &annotation.Annotation{Name: name, Values: map[string]annotation.Value{}}, nil

	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return nil, fmt.Errorf("line %d: annotation must be a single-key map, got %d keys", node.Line, len(node.Content)/2)
		}

		a := &annotation.Annotation{
			Name:   strings.TrimSpace(node.Content[0].Value),
			Values: map[string]annotation.Value{},
		}

		if err := decodeBody(a, node.Content[1]); err != nil {
			return nil, fmt.Errorf("annotation %s: %w", a.Name, err)
		}

		return a, nil

	default:
		return nil, fmt.Errorf("line %d: expected annotation name or map, got %v", node.Line, kindName(node.Kind))
	}
}

func decodeBody(a *annotation.Annotation, node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		return decodeBody(a, node.Alias)
	}

	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return nil
		}

		a.Values[annotation.ValueKey] = annotation.Scalar(node.Value)

	case yaml.SequenceNode:
		items, err := decodeAnnotations(node)
		if err != nil {
			return err
		}

		a.Values[annotation.ValueKey] = annotation.Array(items...)

	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, valueNode := node.Content[i].Value, node.Content[i+1]

			if _, dup := a.Values[key]; dup {
				return fmt.Errorf("line %d: duplicate key %q", node.Content[i].Line, key)
			}

			if valueNode.Kind == yaml.ScalarNode && valueNode.ShortTag() == "!!null" {
				continue
			}

			v, err := decodeValue(valueNode)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}

			a.Values[key] = v
		}

	default:
		return fmt.Errorf("line %d: unsupported annotation body %v", node.Line, kindName(node.Kind))
	}

	return nil
}

func decodeValue(node *yaml.Node) (annotation.Value, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return decodeValue(node.Alias)

	case yaml.ScalarNode:
		return annotation.Scalar(node.Value), nil

	case yaml.SequenceNode:
		items, err := decodeAnnotations(node)
		if err != nil {
			return annotation.Value{}, err
		}

		return annotation.Array(items...), nil

	case yaml.MappingNode:
		item, err := decodeAnnotation(node)
		if err != nil {
			return annotation.Value{}, err
		}

		return annotation.Array(item), nil

	default:
		return annotation.Value{}, fmt.Errorf("line %d: unsupported value %v", node.Line, kindName(node.Kind))
	}
}

func encodeAnnotations(items []*annotation.Annotation) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, a := range items {
		seq.Content = append(seq.Content, encodeAnnotation(a))
	}

	return seq
}

func encodeAnnotation(a *annotation.Annotation) *yaml.Node {
	if len(a.Values) == 0 {
		return scalarNode(a.Name)
	}

	var body *yaml.Node

	if v, ok := a.Values[annotation.ValueKey]; ok && len(a.Values) == 1 {
		body = encodeValue(v)
	} else {
		body = &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range a.Keys() {
			body.Content = append(body.Content, scalarNode(k), encodeValue(a.Values[k]))
		}
	}

	return &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{scalarNode(a.Name), body}}
}

func encodeValue(v annotation.Value) *yaml.Node {
	if v.Kind == annotation.ValueArray {
		return encodeAnnotations(v.Items)
	}

	return scalarNode(v.Raw)
}

// scalarNode leaves the tag to the encoder so numbers and booleans stay
// plain. Values are read back as strings either way.
func scalarNode(s string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Value: s}
	if s == "" {
		n.Tag = "!!str"
	}

	return n
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
