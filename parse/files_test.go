package parse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tori/scheme"
)

const sampleYAML = `
tag_groups:
  - name: Go
    description: Go resources
tags:
  - name: testing
    description: testing material
    group: Go
references:
  - title: Some Book
    author: Knuth
    url: https://example.com
    tags: [testing]
`

const sampleTOML = `
[[tag_groups]]
name = "Go"
description = "Go resources"

[[tags]]
name = "testing"
description = "testing material"
group = "Go"

[[references]]
title = "Some Book"
author = ["Knuth", "Lamport"]
tags = ["testing"]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "scheme.yaml", sampleYAML)

	cat, err := LoadYAML(path)
	require.NoError(t, err)

	assert.True(t, cat.Validate().IsValid())

	require.Len(t, cat.References(), 1)
	ref := cat.References()[0]
	assert.Equal(t, scheme.Authors{"Knuth"}, ref.Authors)
	assert.Equal(t, "https://example.com", ref.URL)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "scheme.toml", sampleTOML)

	cat, err := LoadTOML(path)
	require.NoError(t, err)

	assert.True(t, cat.Validate().IsValid())

	require.Len(t, cat.References(), 1)
	assert.Equal(t, scheme.Authors{"Knuth", "Lamport"}, cat.References()[0].Authors)
}

func TestLoadYAMLMergeLastWins(t *testing.T) {
	base := writeFile(t, "base.yaml", sampleYAML)

	// The override file replaces the whole references key: the merge is
	// shallow, not per element.
	override := writeFile(t, "override.yaml", `
references:
  - title: Another Book
    author: Lamport
    tags: []
`)

	cat, err := LoadYAML(base, override)
	require.NoError(t, err)

	require.Len(t, cat.References(), 1)
	assert.Equal(t, "Another Book", cat.References()[0].Title)

	// Keys absent from the override survive from the base file.
	require.Len(t, cat.Tags(), 1)
	assert.Equal(t, "testing", cat.Tags()[0].Name)
}

func TestLoadYAMLMissingFile(t *testing.T) {
	_, err := LoadYAML(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestLoadYAMLBadSyntax(t *testing.T) {
	path := writeFile(t, "bad.yaml", "tags: [unclosed")

	_, err := LoadYAML(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestLoadTOMLBadSyntax(t *testing.T) {
	path := writeFile(t, "bad.toml", "= not toml")

	_, err := LoadTOML(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.toml")
}
