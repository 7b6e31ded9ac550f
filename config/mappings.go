package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/mcortesi/dinjector/mapping"
)

// LoadMappings reads a YAML mapping file.
func LoadMappings(path string) (*mapping.Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}
	defs, err := ParseMappings(data)
	if err != nil {
		return nil, fmt.Errorf("mapping file %s: %w", path, err)
	}
	return defs, nil
}

// ParseMappings parses YAML mapping definitions, keeping declaration order.
//
//	db:
//	  type: singleton
//	  constructor: newDB
//	  arguments: ["config:db.url"]
//	handler:
//	  type: factory
//	  factory: newHandler
//	  arguments: [db, ctx]
func ParseMappings(data []byte) (*mapping.Definitions, error) {
	defs := mapping.NewDefinitions()

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return defs, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a map of mapping names", root.Line)
	}

	seen := make(map[string]bool, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		name := key.Value
		if key.Kind != yaml.ScalarNode || name == "" {
			return nil, fmt.Errorf("line %d: mapping name must be a non-empty string", key.Line)
		}
		if seen[name] {
			return nil, fmt.Errorf("line %d: duplicate mapping %q", key.Line, name)
		}
		seen[name] = true

		raw := mapping.RawMapping{}
		switch value.Kind {
		case yaml.MappingNode:
			if err := value.Decode(&raw); err != nil {
				return nil, fmt.Errorf("line %d: mapping %q: %w", value.Line, name, err)
			}
		case yaml.ScalarNode:
			if value.Tag != "!!null" {
				return nil, fmt.Errorf("line %d: mapping %q must be a map", value.Line, name)
			}
		default:
			return nil, fmt.Errorf("line %d: mapping %q must be a map", value.Line, name)
		}
		defs.Add(name, raw)
	}
	return defs, nil
}
