package hierarchy

import (
	"testing"

	"curator/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func tags(ids ...string) []entity.LocationTag {
	out := make([]entity.LocationTag, 0, len(ids))
	for _, id := range ids {
		out = append(out, entity.LocationTag{MapboxID: id, CanonicalName: "name " + id})
	}

	return out
}

func TestIsRedundant_ContinentAndCountry(t *testing.T) {
	locations := worldFixture()
	chains := BuildAncestorChains(locations, BuildParentLookup(locations))
	set := NewTagSet("continent.europe", "country.nl")

	assert.True(t, IsRedundant(set, "country.nl", chains))
	assert.False(t, IsRedundant(set, "continent.europe", chains))

	product := &entity.Product{Locations: tags("continent.europe", "country.nl")}
	assert.Equal(t, tags("continent.europe"), PruneRedundantTags(product, chains))
}

func TestIsRedundant_AnyAncestorDepth(t *testing.T) {
	locations := worldFixture()
	chains := BuildAncestorChains(locations, BuildParentLookup(locations))

	assert.True(t, IsRedundant(NewTagSet("global", "place.amsterdam"), "place.amsterdam", chains))
	assert.False(t, IsRedundant(NewTagSet("place.amsterdam"), "place.amsterdam", chains))
	assert.False(t, IsRedundant(NewTagSet("country.de", "place.amsterdam"), "place.amsterdam", chains))
}

func TestIsRedundant_CycleKeepsBoth(t *testing.T) {
	locations := []entity.Location{loc(1, "A", "B"), loc(2, "B", "A")}
	chains := BuildAncestorChains(locations, BuildParentLookup(locations))
	set := NewTagSet("A", "B")

	assert.False(t, IsRedundant(set, "A", chains))
	assert.False(t, IsRedundant(set, "B", chains))
}

func TestPruneRedundantTags(t *testing.T) {
	locations := worldFixture()
	chains := BuildAncestorChains(locations, BuildParentLookup(locations))

	tests := []struct {
		name     string
		tags     []entity.LocationTag
		expected []entity.LocationTag
	}{
		{
			name:     "scenario parent and child",
			tags:     tags("continent.europe", "country.nl"),
			expected: tags("continent.europe"),
		},
		{
			name:     "no relationships unchanged",
			tags:     tags("country.de", "place.amsterdam", "continent.asia"),
			expected: tags("country.de", "place.amsterdam", "continent.asia"),
		},
		{
			name:     "survivor order preserved",
			tags:     tags("place.amsterdam", "continent.asia", "region.nh", "country.de", "country.nl"),
			expected: tags("continent.asia", "country.de", "country.nl"),
		},
		{
			name:     "duplicates collapse",
			tags:     tags("country.nl", "country.nl"),
			expected: tags("country.nl"),
		},
		{
			name:     "tags without id kept",
			tags:     append(tags("global", "country.nl"), entity.LocationTag{CanonicalName: "Unknown"}),
			expected: append(tags("global"), entity.LocationTag{CanonicalName: "Unknown"}),
		},
		{
			name:     "unknown ids kept",
			tags:     tags("place.atlantis", "global"),
			expected: tags("place.atlantis", "global"),
		},
		{
			name:     "empty",
			tags:     nil,
			expected: []entity.LocationTag{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			product := &entity.Product{Locations: tt.tags}
			pruned := PruneRedundantTags(product, chains)
			assert.Equal(t, tt.expected, pruned)

			again := PruneRedundantTags(&entity.Product{Locations: pruned}, chains)
			assert.Equal(t, pruned, again)
		})
	}
}

func TestPruneRedundantTags_DoesNotMutateProduct(t *testing.T) {
	locations := worldFixture()
	chains := BuildAncestorChains(locations, BuildParentLookup(locations))
	product := &entity.Product{Locations: tags("global", "country.nl")}

	_ = PruneRedundantTags(product, chains)

	assert.Equal(t, tags("global", "country.nl"), product.Locations)
}

func TestProductsWithRedundantTagging(t *testing.T) {
	locations := []entity.Location{loc(1, "A", ""), loc(2, "B", "A")}
	chains := BuildAncestorChains(locations, BuildParentLookup(locations))

	products := []entity.Product{
		{ID: 1, Category: entity.GenericProductCategory, Locations: tags("A", "B")},
		{ID: 2, Category: "Niche Product", Locations: tags("A", "B")},
		{ID: 3, Category: entity.GenericProductCategory, Locations: tags("A")},
		{ID: 4, Category: entity.GenericProductCategory, Locations: tags("B", "A")},
	}

	flagged := ProductsWithRedundantTagging(products, chains, entity.GenericProductCategory)

	ids := make([]int64, 0, len(flagged))
	for _, p := range flagged {
		assert.Equal(t, entity.GenericProductCategory, p.Category)
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int64{1, 4}, ids)

	assert.Equal(t, tags("B"), RedundantTags(&products[3], chains))
	assert.Equal(t, tags("A"), PruneRedundantTags(&products[0], chains))
}

func TestProductsWithRedundantTagging_ConfigurableCategory(t *testing.T) {
	locations := []entity.Location{loc(1, "A", ""), loc(2, "B", "A")}
	chains := BuildAncestorChains(locations, BuildParentLookup(locations))
	products := []entity.Product{
		{ID: 1, Category: entity.GenericProductCategory, Locations: tags("A", "B")},
		{ID: 2, Category: "Board", Locations: tags("A", "B")},
	}

	flagged := ProductsWithRedundantTagging(products, chains, "Board")

	assert.Len(t, flagged, 1)
	assert.Equal(t, int64(2), flagged[0].ID)
}
