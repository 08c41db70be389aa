package deployment

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Arg is a single named argument value. Scalars are kept as the literal text
// from the config file; sequences become []any.
type Arg struct {
	Name  string
	Value any
}

// ArgSet is an ordered set of arguments, keyed by ABI input name.
type ArgSet []Arg

// NewArgSet returns an ArgSet with every name set to the UNDEFINED placeholder.
func NewArgSet(names []string, placeholder string) ArgSet {
	args := make(ArgSet, len(names))
	for i, n := range names {
		args[i] = Arg{Name: n, Value: placeholder}
	}
	return args
}

// Names returns the argument names in order.
func (a ArgSet) Names() []string {
	names := make([]string, len(a))
	for i, arg := range a {
		names[i] = arg.Name
	}
	return names
}

// Values returns the argument values in order.
func (a ArgSet) Values() []any {
	values := make([]any, len(a))
	for i, arg := range a {
		values[i] = arg.Value
	}
	return values
}

// Get returns the value stored under name.
func (a ArgSet) Get(name string) (any, bool) {
	for _, arg := range a {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	return nil, false
}

// Set replaces the value of name, appending it when absent.
func (a *ArgSet) Set(name string, value any) {
	for i := range *a {
		if (*a)[i].Name == name {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Arg{Name: name, Value: value})
}

// MarshalJSON writes the arguments as a JSON object in order.
func (a ArgSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, arg := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(arg.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(arg.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal argument %s: %w", arg.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes through yaml.v3 so key order survives.
func (a *ArgSet) UnmarshalJSON(data []byte) error {
	return yaml.Unmarshal(data, a)
}

// UnmarshalYAML decodes a mapping node in document order.
func (a *ArgSet) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*a = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: arguments must be a mapping", node.Line)
	}
	args := make(ArgSet, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		args = append(args, Arg{
			Name:  node.Content[i].Value,
			Value: nodeValue(node.Content[i+1]),
		})
	}
	*a = args
	return nil
}

func nodeValue(node *yaml.Node) any {
	switch node.Kind {
	case yaml.AliasNode:
		return nodeValue(node.Alias)
	case yaml.SequenceNode:
		items := make([]any, len(node.Content))
		for i, c := range node.Content {
			items[i] = nodeValue(c)
		}
		return items
	case yaml.MappingNode:
		var nested ArgSet
		_ = nested.UnmarshalYAML(node)
		return nested
	default:
		if node.Tag == "!!null" {
			return nil
		}
		return node.Value
	}
}
