package relabel

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"shapecast/internal/common"
)

// LoadAllowList loads and parses a YAML allow-list file from the given path.
func LoadAllowList(path string) (AllowList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AllowList{}, fmt.Errorf("failed to read allow-list file %s: %w", path, err)
	}

	return ParseAllowList(data)
}

// ParseAllowList parses YAML data of the form
//
//	allow: [store.Order, store.Customer]
//
// or, for the unrestricted hazard mode,
//
//	allow: all
func ParseAllowList(data []byte) (AllowList, error) {
	var f allowFile

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return AllowList{}, fmt.Errorf("failed to parse allow-list YAML: %w", err)
	}

	if f.Allow.all {
		return AllowAll(), nil
	}

	if common.IsEmpty(f.Allow.names) {
		return Allow(), nil
	}

	return Allow(f.Allow.names...), nil
}

type allowFile struct {
	Allow allowNames `yaml:"allow"`
}

// allowNames accepts a scalar ("all" or a single type name) or a sequence
// of type names.
type allowNames struct {
	all   bool
	names []string
}

func (n *allowNames) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "all" {
			n.all = true
			return nil
		}

		n.names = []string{node.Value}

		return nil

	case yaml.SequenceNode:
		return node.Decode(&n.names)

	default:
		return fmt.Errorf("allow must be a name, a list of names, or \"all\" (line %d)", node.Line)
	}
}
