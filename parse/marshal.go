package parse

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"tori/catalog"
	"tori/scheme"
)

// document is the wire form of a catalog, matching the input mapping shape.
type document struct {
	TagGroups  []tagGroupDoc  `yaml:"tag_groups" toml:"tag_groups"`
	Tags       []tagDoc       `yaml:"tags" toml:"tags"`
	References []referenceDoc `yaml:"references" toml:"references"`
}

type tagGroupDoc struct {
	Name        string `yaml:"name" toml:"name"`
	Description string `yaml:"description" toml:"description"`
}

type tagDoc struct {
	Name        string `yaml:"name" toml:"name"`
	Description string `yaml:"description" toml:"description"`
	Group       string `yaml:"group" toml:"group"`
}

type referenceDoc struct {
	Title  string         `yaml:"title" toml:"title"`
	Author scheme.Authors `yaml:"author" toml:"author"`
	URL    string         `yaml:"url,omitempty" toml:"url,omitempty"`
	Tags   []string       `yaml:"tags" toml:"tags"`
}

// MarshalYAML serializes a catalog back into its YAML wire form. A single
// author collapses to a plain string and an empty url is omitted.
func MarshalYAML(c *catalog.Catalog) ([]byte, error) {
	return yaml.Marshal(buildDocument(c))
}

// MarshalTOML serializes a catalog into its TOML wire form.
func MarshalTOML(c *catalog.Catalog) ([]byte, error) {
	var buf bytes.Buffer

	err := toml.NewEncoder(&buf).Encode(buildDocument(c))
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog as TOML: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteYAML writes a catalog to the given path in YAML form.
func WriteYAML(c *catalog.Catalog, path string) error {
	data, err := MarshalYAML(c)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scheme file %s: %w", path, err)
	}

	return nil
}

// WriteTOML writes a catalog to the given path in TOML form.
func WriteTOML(c *catalog.Catalog, path string) error {
	data, err := MarshalTOML(c)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scheme file %s: %w", path, err)
	}

	return nil
}

// buildDocument converts a catalog into its wire form. The synthetic
// default group prepended at load time is dropped so documents round-trip.
func buildDocument(c *catalog.Catalog) *document {
	doc := &document{
		TagGroups:  []tagGroupDoc{},
		Tags:       []tagDoc{},
		References: []referenceDoc{},
	}

	defaultFP := scheme.DefaultTagGroup.Fingerprint()

	for i, g := range c.TagGroups() {
		if i == 0 && g.Fingerprint() == defaultFP {
			continue
		}

		doc.TagGroups = append(doc.TagGroups, tagGroupDoc{
			Name:        g.Name,
			Description: g.Description,
		})
	}

	for _, t := range c.Tags() {
		doc.Tags = append(doc.Tags, tagDoc{
			Name:        t.Name,
			Description: t.Description,
			Group:       t.Group.Name,
		})
	}

	for _, r := range c.References() {
		tags := make([]string, len(r.Tags))
		for i, t := range r.Tags {
			tags[i] = t.Name
		}

		doc.References = append(doc.References, referenceDoc{
			Title:  r.Title,
			Author: r.Authors,
			URL:    r.URL,
			Tags:   tags,
		})
	}

	return doc
}
