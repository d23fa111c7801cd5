package catalog

import (
	"fmt"
	"strings"

	"tori/diagnostic"
	"tori/internal/common"
	"tori/scheme"
)

// Validate runs all catalog validations in fixed order: tag groups, tags,
// references. Every section runs to completion; every problem found is
// recorded. The result is empty when the catalog is valid.
func (c *Catalog) Validate() *diagnostic.Diagnostics {
	d := &diagnostic.Diagnostics{}

	c.ValidateTagGroups(d)
	c.ValidateTags(d)
	c.ValidateReferences(d)

	return d
}

// ValidateTagGroups checks that all tag groups are unique (full-attribute
// equality). It appends any problems to d and reports whether the section
// passed.
func (c *Catalog) ValidateTagGroups(d *diagnostic.Diagnostics) bool {
	dups := common.FindDuplicatesBy(c.tagGroups, (*scheme.TagGroup).Fingerprint)
	if len(dups) > 0 {
		d.AddError("duplicate_tag_groups",
			fmt.Sprintf("tag groups must be unique, found duplicates: %s", joinElements(dups)),
			scheme.KindTagGroup, "")

		return false
	}

	return true
}

// ValidateTags checks that every tag has a name and a description, and that
// all tags are unique (full-attribute equality). It appends any problems to
// d and reports whether the section passed.
func (c *Catalog) ValidateTags(d *diagnostic.Diagnostics) bool {
	valid := true

	for _, t := range c.tags {
		if t.Name == "" {
			d.AddError("tag_missing_name",
				fmt.Sprintf("tag missing name: %s", t), scheme.KindTag, t.Key())

			valid = false
		}

		if t.Description == "" {
			d.AddError("tag_missing_description",
				fmt.Sprintf("tag missing description: %s", t), scheme.KindTag, t.Key())

			valid = false
		}
	}

	dups := common.FindDuplicatesBy(c.tags, (*scheme.Tag).Fingerprint)
	if len(dups) > 0 {
		d.AddError("duplicate_tags",
			fmt.Sprintf("tags must be unique, found duplicates: %s", joinElements(dups)),
			scheme.KindTag, "")

		valid = false
	}

	return valid
}

// ValidateReferences checks that every reference has a title and at least
// one author, and that all references are unique (full-attribute equality).
// It appends any problems to d and reports whether the section passed.
func (c *Catalog) ValidateReferences(d *diagnostic.Diagnostics) bool {
	valid := true

	for _, r := range c.references {
		if r.Title == "" {
			d.AddError("reference_missing_title",
				fmt.Sprintf("reference missing title: %s", r), scheme.KindReference, r.Key())

			valid = false
		}

		if r.Authors.IsEmpty() {
			d.AddError("reference_missing_author",
				fmt.Sprintf("reference missing author: %s", r), scheme.KindReference, r.Key())

			valid = false
		}
	}

	dups := common.FindDuplicatesBy(c.references, (*scheme.Reference).Fingerprint)
	if len(dups) > 0 {
		d.AddError("duplicate_references",
			fmt.Sprintf("references must be unique, found duplicates: %s", joinElements(dups)),
			scheme.KindReference, "")

		valid = false
	}

	return valid
}

// joinElements renders elements in their debug form, comma separated.
func joinElements[E scheme.Element](elems []E) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = e.String()
	}

	return strings.Join(parts, ", ")
}
