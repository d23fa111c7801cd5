package parse

import (
	"fmt"
	"maps"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"tori/catalog"
)

// LoadYAML loads a catalog from one or more YAML files. Each file's
// top-level keys are shallow-merged into a single document, later files
// winning per key, before loading.
func LoadYAML(paths ...string) (*catalog.Catalog, error) {
	return loadFiles(paths, decodeYAML)
}

// LoadTOML loads a catalog from one or more TOML files with the same merge
// behavior as LoadYAML.
func LoadTOML(paths ...string) (*catalog.Catalog, error) {
	return loadFiles(paths, decodeTOML)
}

func loadFiles(paths []string, decode func([]byte) (map[string]any, error)) (*catalog.Catalog, error) {
	merged := map[string]any{}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read scheme file %s: %w", path, err)
		}

		doc, err := decode(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse scheme file %s: %w", path, err)
		}

		// Shallow merge: later files overwrite earlier top-level keys.
		maps.Copy(merged, doc)
	}

	return LoadDict(merged)
}

func decodeYAML(data []byte) (map[string]any, error) {
	var doc map[string]any

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

func decodeTOML(data []byte) (map[string]any, error) {
	var doc map[string]any

	_, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, err
	}

	return doc, nil
}
