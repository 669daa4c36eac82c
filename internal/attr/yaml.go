package attr

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// independentYAML is the mapping form of an override.
type independentYAML struct {
	Serialize   string `yaml:"serialize,omitempty"`
	Deserialize string `yaml:"deserialize,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for Rename.
// Accepts either a scalar (normal form) or a mapping with serialize and/or
// deserialize keys (independent form).
func (r *Rename) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string

		if err := node.Decode(&name); err != nil {
			return err
		}

		*r = NewRename(name)

		return nil

	case yaml.MappingNode:
		var ind independentYAML

		if err := node.Decode(&ind); err != nil {
			return err
		}

		res, err := NewIndependent(ind.Serialize, ind.Deserialize)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}

		*r = res

		return nil

	default:
		return fmt.Errorf("line %d: expected string or mapping for rename, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for Rename.
// The normal form is written as a scalar, the others as a mapping.
func (r Rename) MarshalYAML() (any, error) {
	switch r.kind {
	case KindNormal:
		return r.ser, nil
	case KindSerializeOnly, KindDeserializeOnly, KindBoth:
		return independentYAML{Serialize: r.ser, Deserialize: r.de}, nil
	default:
		return nil, nil
	}
}

// UnmarshalYAML implements custom YAML unmarshaling for RenameAll.
// The shapes are those of Rename; every literal must be a rule key.
func (r *RenameAll) UnmarshalYAML(node *yaml.Node) error {
	var lit Rename

	if err := lit.UnmarshalYAML(node); err != nil {
		return err
	}

	res, err := RenameAllFrom(lit)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*r = res

	return nil
}

// MarshalYAML implements custom YAML marshaling for RenameAll.
func (r RenameAll) MarshalYAML() (any, error) {
	return r.AsRename().MarshalYAML()
}
