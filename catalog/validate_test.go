package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tori/diagnostic"
	"tori/scheme"
)

func TestValidateCleanCatalog(t *testing.T) {
	c := buildTestCatalog()

	diags := c.Validate()
	assert.True(t, diags.IsValid())
	assert.NoError(t, diags.Error())
}

func TestValidateTagGroupsDuplicates(t *testing.T) {
	// Fully equal groups are duplicates.
	c := New([]*scheme.TagGroup{
		scheme.NewTagGroup("Go", "Go resources"),
		scheme.NewTagGroup("Go", "Go resources"),
	}, nil, nil)

	diags := &diagnostic.Diagnostics{}
	assert.False(t, c.ValidateTagGroups(diags))
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, "duplicate_tag_groups", diags.Errors[0].Code)
	assert.Equal(t, scheme.KindTagGroup, diags.Errors[0].Kind)
	assert.Contains(t, diags.Errors[0].Message, "TagGroup(Go)")
}

func TestValidateTagGroupsSameNameDifferentDescription(t *testing.T) {
	// Uniqueness is full-attribute equality, not identity-key equality:
	// same name with a different description passes.
	c := New([]*scheme.TagGroup{
		scheme.NewTagGroup("Go", "Go resources"),
		scheme.NewTagGroup("Go", "a different description"),
	}, nil, nil)

	diags := &diagnostic.Diagnostics{}
	assert.True(t, c.ValidateTagGroups(diags))
	assert.True(t, diags.IsValid())
}

func TestValidateTagsMissingFields(t *testing.T) {
	c := New(nil, []*scheme.Tag{
		scheme.NewTag("", "has description, no name", nil),
		scheme.NewTag("no-description", "", nil),
		scheme.NewTag("", "", nil),
	}, nil)

	diags := &diagnostic.Diagnostics{}
	assert.False(t, c.ValidateTags(diags))

	// One error per violating field: 1 + 1 + 2.
	require.Len(t, diags.Errors, 4)

	codes := make([]string, len(diags.Errors))
	for i, e := range diags.Errors {
		codes[i] = e.Code
	}

	assert.Equal(t, []string{
		"tag_missing_name",
		"tag_missing_description",
		"tag_missing_name",
		"tag_missing_description",
	}, codes)
}

func TestValidateTagsDuplicates(t *testing.T) {
	group := scheme.NewTagGroup("Go", "Go resources")
	c := New(nil, []*scheme.Tag{
		scheme.NewTag("testing", "testing material", group),
		scheme.NewTag("testing", "testing material", group),
	}, nil)

	diags := &diagnostic.Diagnostics{}
	assert.False(t, c.ValidateTags(diags))
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, "duplicate_tags", diags.Errors[0].Code)
}

func TestValidateReferences(t *testing.T) {
	tests := []struct {
		name      string
		refs      []*scheme.Reference
		wantValid bool
		wantCodes []string
	}{
		{
			name: "valid",
			refs: []*scheme.Reference{
				scheme.NewReference("Some Book", scheme.Authors{"Knuth"}, "", nil),
			},
			wantValid: true,
		},
		{
			name: "missing title",
			refs: []*scheme.Reference{
				scheme.NewReference("", scheme.Authors{"Knuth"}, "", nil),
			},
			wantCodes: []string{"reference_missing_title"},
		},
		{
			name: "missing author",
			refs: []*scheme.Reference{
				scheme.NewReference("Some Book", nil, "", nil),
			},
			wantCodes: []string{"reference_missing_author"},
		},
		{
			name: "duplicates",
			refs: []*scheme.Reference{
				scheme.NewReference("Some Book", scheme.Authors{"Knuth"}, "", nil),
				scheme.NewReference("Some Book", scheme.Authors{"Knuth"}, "", nil),
			},
			wantCodes: []string{"duplicate_references"},
		},
		{
			name: "same title different author is not a duplicate",
			refs: []*scheme.Reference{
				scheme.NewReference("Some Book", scheme.Authors{"Knuth"}, "", nil),
				scheme.NewReference("Some Book", scheme.Authors{"Lamport"}, "", nil),
			},
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(nil, nil, tt.refs)
			diags := &diagnostic.Diagnostics{}

			assert.Equal(t, tt.wantValid, c.ValidateReferences(diags))

			codes := make([]string, 0, len(diags.Errors))
			for _, e := range diags.Errors {
				codes = append(codes, e.Code)
			}

			if tt.wantValid {
				assert.Empty(t, codes)
			} else {
				assert.Equal(t, tt.wantCodes, codes)
			}
		})
	}
}

func TestValidateCollectsAcrossSections(t *testing.T) {
	// One duplicate tag group, one tag missing its description, one
	// duplicate reference: all three sections run to completion and every
	// problem is reported.
	group := scheme.NewTagGroup("Go", "Go resources")
	ref := scheme.NewReference("Some Book", scheme.Authors{"Knuth"}, "", nil)

	c := New(
		[]*scheme.TagGroup{group, scheme.NewTagGroup("Go", "Go resources")},
		[]*scheme.Tag{scheme.NewTag("testing", "", group)},
		[]*scheme.Reference{ref, scheme.NewReference("Some Book", scheme.Authors{"Knuth"}, "", nil)},
	)

	diags := c.Validate()
	require.True(t, diags.HasErrors())
	require.GreaterOrEqual(t, len(diags.Errors), 3)

	// Sections run in fixed order, so the first record is the tag group
	// failure.
	assert.Equal(t, "duplicate_tag_groups", diags.Errors[0].Code)

	msgs := diags.Strings()
	require.Len(t, msgs, len(diags.Errors))

	err := diags.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate_tag_groups")
	assert.Contains(t, err.Error(), "tag_missing_description")
	assert.Contains(t, err.Error(), "duplicate_references")
}
