package diagnostic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datakit/collection"
	"datakit/internal/diagnostic"
)

func TestCheckTree(t *testing.T) {
	t.Parallel()

	items := []collection.Record{
		{"id": "electronics", "parentId": nil},
		{"id": "phones", "parentId": "electronics"},
		{"id": "laptops", "parentId": "electrnics"},
		{"name": "no id", "parentId": nil},
		{"id": "phones", "parentId": "electronics"},
	}

	diags := diagnostic.CheckTree(items, nil)

	assert.False(t, diags.HasErrors())

	require.Len(t, diags.Infos, 1)
	assert.Equal(t, diagnostic.CodeMissingID, diags.Infos[0].Code)
	assert.Equal(t, "[3]", diags.Infos[0].Path)

	require.Len(t, diags.Warnings, 2)
	assert.Equal(t, diagnostic.CodeDuplicateID, diags.Warnings[0].Code)
	assert.Equal(t, "[4].id", diags.Warnings[0].Path)

	orphan := diags.Warnings[1]
	assert.Equal(t, diagnostic.CodeOrphan, orphan.Code)
	assert.Equal(t, "[2].parentId", orphan.Path)
	assert.Equal(t, []string{"electronics"}, orphan.Suggestions)
}

func TestCheckTree_CustomFields(t *testing.T) {
	t.Parallel()

	items := []collection.Record{
		{"key": 1, "up": 0},
		{"key": 2, "up": 1},
		{"key": 3, "up": 9},
	}

	diags := diagnostic.CheckTree(items, &collection.TreeOptions{
		IDField:       "key",
		ParentIDField: "up",
		RootValue:     0,
	})

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "[2].up", diags.Warnings[0].Path)
	assert.Empty(t, diags.Warnings[0].Suggestions)
	assert.Empty(t, diags.Infos)
}

func TestCheckTree_DuplicatesFollowTreeKeys(t *testing.T) {
	t.Parallel()

	items := []collection.Record{
		{"id": "1", "parentId": nil},
		{"id": 1, "parentId": nil},
		{"id": 1.0, "parentId": nil},
		{"id": []any{1}, "parentId": nil},
	}

	diags := diagnostic.CheckTree(items, nil)

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeDuplicateID, diags.Warnings[0].Code)
	assert.Equal(t, "[2].id", diags.Warnings[0].Path)

	require.Len(t, diags.Infos, 1)
	assert.Equal(t, "[3].id", diags.Infos[0].Path)
}

func TestCheckTree_MissingParentField(t *testing.T) {
	t.Parallel()

	items := []collection.Record{
		{"id": 1, "parentId": nil},
		{"id": 2},
	}

	diags := diagnostic.CheckTree(items, nil)

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeOrphan, diags.Warnings[0].Code)
	assert.Equal(t, "[1].parentId", diags.Warnings[0].Path)
	assert.Equal(t, "record has no parentId, record dropped", diags.Warnings[0].Message)
	assert.Empty(t, diags.Infos)
}
