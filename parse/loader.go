package parse

import (
	"errors"
	"fmt"
	"strings"

	"tori/catalog"
	"tori/scheme"
)

var (
	// ErrMissingKey indicates a required top-level key is absent.
	ErrMissingKey = errors.New("missing top-level key")

	// ErrNotList indicates a top-level value is not a list.
	ErrNotList = errors.New("not a list")

	// ErrNotMapping indicates a list element is not a mapping.
	ErrNotMapping = errors.New("not a mapping")

	// ErrMissingField indicates an element mapping lacks a required key.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidField indicates an element field has the wrong type.
	ErrInvalidField = errors.New("invalid field value")

	// ErrUnknownGroup indicates a tag names a group that was never defined.
	ErrUnknownGroup = errors.New("undefined tag group")

	// ErrUnknownTag indicates a reference names a tag that was never defined.
	ErrUnknownTag = errors.New("undefined tag")
)

// Standard top-level keys of a TORI document.
const (
	KeyTagGroups  = "tag_groups"
	KeyTags       = "tags"
	KeyReferences = "references"
)

// LoadDict converts an untyped mapping (as produced by a YAML or TOML
// deserializer) into a catalog.
//
// The three top-level keys are matched case-insensitively; all keys inside
// element mappings are case-sensitive. Tag groups are resolved by name for
// every tag, and tags are resolved by name for every reference, so a
// returned catalog is referentially intact. Any structural or referential
// problem fails the load; a malformed input never yields a partial catalog.
//
// The returned catalog has not been validated; callers run Validate
// explicitly.
func LoadDict(doc map[string]any) (*catalog.Catalog, error) {
	keyMap := make(map[string]string, len(doc))
	for k := range doc {
		keyMap[strings.ToLower(k)] = k
	}

	for _, k := range []string{KeyTagGroups, KeyTags, KeyReferences} {
		if _, ok := keyMap[k]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingKey, k)
		}
	}

	tagGroupDicts, err := asMappingList("tag groups", doc[keyMap[KeyTagGroups]])
	if err != nil {
		return nil, err
	}

	tagDicts, err := asMappingList("tags", doc[keyMap[KeyTags]])
	if err != nil {
		return nil, err
	}

	referenceDicts, err := asMappingList("references", doc[keyMap[KeyReferences]])
	if err != nil {
		return nil, err
	}

	// Tag groups first; the sentinel default group always exists.
	tagGroups := []*scheme.TagGroup{scheme.DefaultTagGroup}

	for _, d := range tagGroupDicts {
		name, err := requireString("tag group", d, "name")
		if err != nil {
			return nil, err
		}

		description, err := requireString("tag group", d, "description")
		if err != nil {
			return nil, err
		}

		tagGroups = append(tagGroups, scheme.NewTagGroup(name, description))
	}

	groupIndex := make(map[string]*scheme.TagGroup, len(tagGroups))
	for _, g := range tagGroups {
		groupIndex[g.Key()] = g
	}

	// Tags resolve their group against the groups built above.
	tags := make([]*scheme.Tag, 0, len(tagDicts))

	for _, d := range tagDicts {
		name, err := requireString("tag", d, "name")
		if err != nil {
			return nil, err
		}

		description, err := requireString("tag", d, "description")
		if err != nil {
			return nil, err
		}

		groupName, err := requireString("tag", d, "group")
		if err != nil {
			return nil, err
		}

		group, ok := groupIndex[groupName]
		if !ok {
			return nil, fmt.Errorf("%w: tag %q has undefined group %q", ErrUnknownGroup, name, groupName)
		}

		tags = append(tags, scheme.NewTag(name, description, group))
	}

	tagIndex := make(map[string]*scheme.Tag, len(tags))
	for _, t := range tags {
		tagIndex[t.Key()] = t
	}

	// References resolve their tag names against the tags built above.
	references := make([]*scheme.Reference, 0, len(referenceDicts))

	for _, d := range referenceDicts {
		title, err := requireString("reference", d, "title")
		if err != nil {
			return nil, err
		}

		rawAuthor, ok := d["author"]
		if !ok {
			return nil, fmt.Errorf("%w: reference dict missing key: author", ErrMissingField)
		}

		authors, err := authorsFromValue(title, rawAuthor)
		if err != nil {
			return nil, err
		}

		rawTags, ok := d["tags"]
		if !ok {
			return nil, fmt.Errorf("%w: reference dict missing key: tags", ErrMissingField)
		}

		tagNames, err := stringList(title, "tags", rawTags)
		if err != nil {
			return nil, err
		}

		resolved := make([]*scheme.Tag, 0, len(tagNames))

		for _, tagName := range tagNames {
			tag, ok := tagIndex[tagName]
			if !ok {
				return nil, fmt.Errorf("%w: reference %q has undefined tag %q", ErrUnknownTag, title, tagName)
			}

			resolved = append(resolved, tag)
		}

		// url is the only optional key.
		var url string
		if raw, ok := d["url"]; ok {
			url, ok = raw.(string)
			if !ok {
				return nil, fmt.Errorf("%w: reference %q url must be a string, got %T", ErrInvalidField, title, raw)
			}
		}

		references = append(references, scheme.NewReference(title, authors, url, resolved))
	}

	return catalog.New(tagGroups, tags, references), nil
}

// asMappingList checks that v is a list of mappings and returns it in
// normalized form. YAML decodes lists as []any; TOML decodes arrays of
// tables as []map[string]any. Both are accepted.
func asMappingList(section string, v any) ([]map[string]any, error) {
	switch list := v.(type) {
	case []map[string]any:
		return list, nil

	case []any:
		result := make([]map[string]any, len(list))

		for i, item := range list {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: %s element must be a mapping, got %T: %v", ErrNotMapping, section, item, item)
			}

			result[i] = m
		}

		return result, nil

	default:
		return nil, fmt.Errorf("%w: %s must be passed as a list, got %T", ErrNotList, section, v)
	}
}

// requireString extracts a required string-valued key from an element
// mapping.
func requireString(section string, d map[string]any, key string) (string, error) {
	v, ok := d[key]
	if !ok {
		return "", fmt.Errorf("%w: %s dict missing key: %s", ErrMissingField, section, key)
	}

	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s key %s must be a string, got %T", ErrInvalidField, section, key, v)
	}

	return s, nil
}

// authorsFromValue normalizes the author field of a reference: a single
// string becomes a one-element list, a list of strings is taken as-is.
func authorsFromValue(title string, v any) (scheme.Authors, error) {
	switch author := v.(type) {
	case string:
		return scheme.Authors{author}, nil

	case []any:
		names, err := stringList(title, "author", author)
		if err != nil {
			return nil, err
		}

		return scheme.Authors(names), nil

	case []string:
		return scheme.Authors(author), nil

	default:
		return nil, fmt.Errorf("%w: reference %q author must be a string or list of strings, got %T", ErrInvalidField, title, v)
	}
}

// stringList coerces a decoded list value into []string.
func stringList(title, key string, v any) ([]string, error) {
	switch list := v.(type) {
	case []string:
		return list, nil

	case []any:
		result := make([]string, len(list))

		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: reference %q %s element must be a string, got %T", ErrInvalidField, title, key, item)
			}

			result[i] = s
		}

		return result, nil

	default:
		return nil, fmt.Errorf("%w: reference %q %s must be a list of strings, got %T", ErrInvalidField, title, key, v)
	}
}
