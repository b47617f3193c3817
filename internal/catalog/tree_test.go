package catalog

import (
	"testing"

	"backoffice/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLang = int64(1)

func node(id int64, parentID *int64, level, position int, name, url string) *models.Category {
	return &models.Category{
		ID:       id,
		ParentID: parentID,
		Level:    level,
		Position: position,
		Data: []models.CategoryData{
			{LanguageID: testLang, Name: name},
		},
		URLs: []models.CategoryURL{
			{LanguageID: testLang, URL: url},
		},
	}
}

func intPtr(v int64) *int64 { return &v }

func TestBuildForestNestsChildrenByPosition(t *testing.T) {
	flat := []*models.Category{
		node(3, intPtr(1), 2, 1, "Second child", "second"),
		node(1, nil, 1, 0, "Root", "root"),
		node(2, intPtr(1), 2, 0, "First child", "first"),
		node(4, nil, 1, 1, "Other root", "other"),
	}

	forest := BuildForest(flat)
	require.Len(t, forest, 2)
	assert.Equal(t, int64(1), forest[0].ID)
	assert.Equal(t, int64(4), forest[1].ID)

	require.Len(t, forest[0].Children, 2)
	assert.Equal(t, int64(2), forest[0].Children[0].ID)
	assert.Equal(t, int64(3), forest[0].Children[1].ID)
}

func TestBuildForestOrphanBecomesRoot(t *testing.T) {
	flat := []*models.Category{
		node(7, intPtr(99), 2, 0, "Orphan", "orphan"),
	}
	forest := BuildForest(flat)
	require.Len(t, forest, 1)
	assert.Equal(t, int64(7), forest[0].ID)
}

func TestFlattenPreOrderWithBreadcrumbLabels(t *testing.T) {
	// A(1) -> B(2) -> C(3), excludeID = 2, the scenario from the admin
	// parent-selector: every ancestor appears before its descendants.
	a := node(1, nil, 1, 0, "A", "a")
	b := node(2, intPtr(1), 2, 0, "B", "b")
	c := node(3, intPtr(2), 3, 0, "C", "c")

	forest := BuildForest([]*models.Category{a, b, c})
	options := Flatten(forest, 2, testLang)

	require.Len(t, options, 3)
	assert.Equal(t, Option{Value: 1, Label: "A", Level: 1, FullURL: "a"}, options[0])
	assert.Equal(t, Option{Value: 2, Label: "A → B", Level: 2, FullURL: "a/b", Excluded: true}, options[1])
	assert.Equal(t, Option{Value: 3, Label: "A → B → C", Level: 3, FullURL: "a/b/c"}, options[2])
}

func TestFlattenExcludesOnlyTheRequestedNode(t *testing.T) {
	a := node(1, nil, 1, 0, "A", "a")
	b := node(2, intPtr(1), 2, 0, "B", "b")
	forest := BuildForest([]*models.Category{a, b})

	options := Flatten(forest, 1, testLang)
	require.Len(t, options, 2)
	assert.True(t, options[0].Excluded)
	assert.False(t, options[1].Excluded)
}

func TestFlattenAncestorsPrecedeDescendants(t *testing.T) {
	a := node(1, nil, 1, 0, "A", "a")
	b := node(2, intPtr(1), 2, 0, "B", "b")
	c := node(3, intPtr(1), 2, 1, "C", "c")
	d := node(4, intPtr(3), 3, 0, "D", "d")
	forest := BuildForest([]*models.Category{d, c, b, a})

	options := Flatten(forest, 0, testLang)
	indexOf := make(map[int64]int)
	for i, o := range options {
		assert.NotContains(t, indexOf, o.Value, "node visited twice")
		indexOf[o.Value] = i
	}
	require.Len(t, indexOf, 4)
	assert.Less(t, indexOf[1], indexOf[2])
	assert.Less(t, indexOf[1], indexOf[3])
	assert.Less(t, indexOf[3], indexOf[4])
}

func TestFlattenSkipsNodesMissingLanguageData(t *testing.T) {
	a := node(1, nil, 1, 0, "A", "a")
	b := node(2, intPtr(1), 2, 0, "B", "b")
	b.Data = nil // no content for the active language
	c := node(3, intPtr(2), 3, 0, "C", "c")

	forest := BuildForest([]*models.Category{a, b, c})
	options := Flatten(forest, 0, testLang)

	require.Len(t, options, 2)
	assert.Equal(t, int64(1), options[0].Value)
	// The gap node contributes no label segment but its url segment still
	// prefixes descendants.
	assert.Equal(t, int64(3), options[1].Value)
	assert.Equal(t, "A → C", options[1].Label)
	assert.Equal(t, "a/b/c", options[1].FullURL)
}

func TestFullURLComposition(t *testing.T) {
	root := FullURL("", "men")
	mid := FullURL(root, "shoes")
	leaf := FullURL(mid, "running")

	assert.Equal(t, "men", root)
	assert.Equal(t, "men/shoes", mid)
	assert.Equal(t, "men/shoes/running", leaf)
}

func TestIsDescendant(t *testing.T) {
	parents := map[int64]*int64{
		1: nil,
		2: intPtr(1),
		3: intPtr(2),
		4: nil,
	}

	assert.True(t, IsDescendant(parents, 1, 1), "a node is its own ancestor")
	assert.True(t, IsDescendant(parents, 1, 3))
	assert.True(t, IsDescendant(parents, 2, 3))
	assert.False(t, IsDescendant(parents, 3, 1))
	assert.False(t, IsDescendant(parents, 1, 4))
}

func TestIsDescendantBreaksParentCycles(t *testing.T) {
	parents := map[int64]*int64{
		1: intPtr(2),
		2: intPtr(1),
	}
	assert.False(t, IsDescendant(parents, 3, 1))
}
