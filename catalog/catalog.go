package catalog

import (
	"slices"

	"tori/scheme"
)

// Catalog is the aggregate of tag groups, tags, and references making up a
// TORI scheme. It is built once, keeps its collections in input order, and
// maintains a per-kind identity-key index for containment queries.
//
// A catalog is read-only after construction and safe for concurrent reads.
// Construction does not validate; callers run Validate explicitly.
type Catalog struct {
	tagGroups  []*scheme.TagGroup
	tags       []*scheme.Tag
	references []*scheme.Reference

	keys    map[scheme.Kind][]string
	keySets map[scheme.Kind]map[string]struct{}
}

// New creates a catalog from the three element collections. The slices are
// copied; the elements themselves are shared with the caller.
func New(tagGroups []*scheme.TagGroup, tags []*scheme.Tag, references []*scheme.Reference) *Catalog {
	c := &Catalog{
		tagGroups:  slices.Clone(tagGroups),
		tags:       slices.Clone(tags),
		references: slices.Clone(references),
	}
	c.buildIndex()

	return c
}

// buildIndex computes the per-kind ordered key lists and lookup sets. The
// index tracks identity keys only; key collisions between unequal elements
// are not rejected here.
func (c *Catalog) buildIndex() {
	c.keys = make(map[scheme.Kind][]string, 3)
	c.keySets = make(map[scheme.Kind]map[string]struct{}, 3)

	index := func(kind scheme.Kind, n int, key func(int) string) {
		keys := make([]string, n)
		set := make(map[string]struct{}, n)

		for i := 0; i < n; i++ {
			keys[i] = key(i)
			set[keys[i]] = struct{}{}
		}

		c.keys[kind] = keys
		c.keySets[kind] = set
	}

	index(scheme.KindTagGroup, len(c.tagGroups), func(i int) string { return c.tagGroups[i].Key() })
	index(scheme.KindTag, len(c.tags), func(i int) string { return c.tags[i].Key() })
	index(scheme.KindReference, len(c.references), func(i int) string { return c.references[i].Key() })
}

// TagGroups returns the catalog's tag groups in input order. The returned
// slice must not be modified.
func (c *Catalog) TagGroups() []*scheme.TagGroup { return c.tagGroups }

// Tags returns the catalog's tags in input order. The returned slice must
// not be modified.
func (c *Catalog) Tags() []*scheme.Tag { return c.tags }

// References returns the catalog's references in input order. The returned
// slice must not be modified.
func (c *Catalog) References() []*scheme.Reference { return c.references }

// Keys returns the ordered identity keys of the given element kind.
func (c *Catalog) Keys(kind scheme.Kind) []string { return c.keys[kind] }

// Contains reports whether an element of e's kind with e's identity key
// belongs to the catalog. This matches by identity key only, intentionally
// weaker than the full-attribute equality used for duplicate detection.
func (c *Catalog) Contains(e scheme.Element) bool {
	set, ok := c.keySets[e.ElementKind()]
	if !ok {
		return false
	}

	_, ok = set[e.Key()]

	return ok
}
