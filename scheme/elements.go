package scheme

import (
	"fmt"
	"slices"
	"strings"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind identifies a scheme element type.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindTagGroup
	KindTag
	KindReference
)

// Element is implemented by all scheme element types.
type Element interface {
	// ElementKind returns the element's Kind.
	ElementKind() Kind

	// Key returns the element's identity key: the single attribute used as
	// its natural unique label (name for groups and tags, title for
	// references).
	Key() string

	// Fingerprint returns the element's full-attribute value identity: two
	// elements are equal iff their fingerprints are equal. The fingerprint
	// is derived from the kind plus every declared attribute, recursing
	// through shared group and tag references by value.
	Fingerprint() string

	fmt.Stringer
}

// TagGroup is a named grouping of tags.
//
// Elements are treated as read-only after construction; they are shared
// between tags, references, and the owning catalog rather than copied.
type TagGroup struct {
	Name        string
	Description string
}

// DefaultTagGroup is the sentinel group every catalog contains implicitly.
// Tags constructed without a group belong to it.
var DefaultTagGroup = &TagGroup{Name: "Default", Description: "Default Tag Group"}

// NewTagGroup creates a tag group.
func NewTagGroup(name, description string) *TagGroup {
	return &TagGroup{Name: name, Description: description}
}

// ElementKind returns KindTagGroup.
func (g *TagGroup) ElementKind() Kind { return KindTagGroup }

// Key returns the group name.
func (g *TagGroup) Key() string { return g.Name }

// Fingerprint implements Element.
func (g *TagGroup) Fingerprint() string {
	return fmt.Sprintf("TagGroup(%q,%q)", g.Name, g.Description)
}

// String returns the debug form TagGroup(name).
func (g *TagGroup) String() string { return fmt.Sprintf("TagGroup(%s)", g.Name) }

// Tag is a named label belonging to exactly one tag group. The group is a
// shared reference, not an owned copy.
type Tag struct {
	Name        string
	Description string
	Group       *TagGroup
}

// NewTag creates a tag. A nil group defaults to DefaultTagGroup.
func NewTag(name, description string, group *TagGroup) *Tag {
	if group == nil {
		group = DefaultTagGroup
	}

	return &Tag{Name: name, Description: description, Group: group}
}

// ElementKind returns KindTag.
func (t *Tag) ElementKind() Kind { return KindTag }

// Key returns the tag name.
func (t *Tag) Key() string { return t.Name }

// Fingerprint implements Element.
func (t *Tag) Fingerprint() string {
	group := "<nil>"
	if t.Group != nil {
		group = t.Group.Fingerprint()
	}

	return fmt.Sprintf("Tag(%q,%q,%s)", t.Name, t.Description, group)
}

// String returns the debug form Tag(name).
func (t *Tag) String() string { return fmt.Sprintf("Tag(%s)", t.Name) }

// Reference is a catalogued source: a titled work with one or more authors,
// an optional URL, and any number of tags. Tags are shared references.
type Reference struct {
	Title   string
	Authors Authors
	URL     string
	Tags    []*Tag
}

// NewReference creates a reference. The authors and tags slices are copied;
// the tags themselves are shared.
func NewReference(title string, authors Authors, url string, tags []*Tag) *Reference {
	return &Reference{
		Title:   title,
		Authors: slices.Clone(authors),
		URL:     url,
		Tags:    slices.Clone(tags),
	}
}

// AddTag appends tag to the reference unless an equal tag (full-attribute
// equality) is already present, in which case it is a no-op.
func (r *Reference) AddTag(tag *Tag) {
	fp := tag.Fingerprint()
	for _, t := range r.Tags {
		if t.Fingerprint() == fp {
			return
		}
	}

	r.Tags = append(r.Tags, tag)
}

// ElementKind returns KindReference.
func (r *Reference) ElementKind() Kind { return KindReference }

// Key returns the reference title.
func (r *Reference) Key() string { return r.Title }

// Fingerprint implements Element.
func (r *Reference) Fingerprint() string {
	tags := make([]string, len(r.Tags))
	for i, t := range r.Tags {
		tags[i] = t.Fingerprint()
	}

	return fmt.Sprintf("Reference(%q,%q,%q,[%s])",
		r.Title, []string(r.Authors), r.URL, strings.Join(tags, ","))
}

// String returns the debug form Reference(title).
func (r *Reference) String() string { return fmt.Sprintf("Reference(%s)", r.Title) }
