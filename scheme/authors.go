package scheme

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"tori/internal/common"
)

// Authors is an ordered list of author names that can be unmarshaled from
// either a single string or an array of strings. A single string input is
// normalized to a one-element list.
type Authors []string

// UnmarshalYAML implements custom YAML unmarshaling for Authors.
// Accepts either a single string or an array of strings.
func (a *Authors) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		// Single string value
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*a = Authors{str}
		} else {
			*a = Authors{}
		}

		return nil

	case yaml.SequenceNode:
		// Array of strings
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*a = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for Authors.
// Outputs a single string if length is 1, otherwise an array.
func (a Authors) MarshalYAML() (any, error) {
	if len(a) == 1 {
		return a[0], nil
	}

	return []string(a), nil
}

// First returns the first author or empty string if empty.
func (a Authors) First() string {
	if v, ok := common.First(a); ok {
		return v
	}

	return ""
}

// IsEmpty returns true if the list is empty.
func (a Authors) IsEmpty() bool {
	return common.IsEmpty(a)
}

// IsSingle returns true if the list has exactly one author.
func (a Authors) IsSingle() bool {
	return common.IsSingle(a)
}

// IsMultiple returns true if the list has more than one author.
func (a Authors) IsMultiple() bool {
	return common.IsMultiple(a)
}

// Contains returns true if the list contains the given author.
func (a Authors) Contains(name string) bool {
	return slices.Contains(a, name)
}
