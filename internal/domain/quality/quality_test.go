package quality

import (
	"testing"

	"curator/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func fixtureLocations() []entity.Location {
	return []entity.Location{
		{ID: 1, MapboxID: "global", CanonicalName: "Global", Approved: true},
		{ID: 2, MapboxID: "europe", CanonicalName: "Europe", WithinID: int64Ptr(1), ParentMapboxID: "global",
			Context: []string{"continent.europe"}},
		{ID: 3, MapboxID: "nl", CanonicalName: "Netherlands", WithinID: int64Ptr(2), ParentMapboxID: "europe",
			Context: []string{"continent.europe"}},
		{ID: 4, MapboxID: "ams", CanonicalName: "Amsterdam", WithinID: int64Ptr(3), ParentMapboxID: "nl",
			Context: []string{"country.nl"}},
		{ID: 5, CanonicalName: "Atlantis", Approved: true},
	}
}

func fixtureProducts() []entity.Product {
	return []entity.Product{
		{ID: 10, Title: "Dev Jobs NL", Category: entity.GenericProductCategory, IsActive: true, LogoURL: "logo.png",
			Locations: []entity.LocationTag{{MapboxID: "nl", CanonicalName: "Netherlands"}, {MapboxID: "ams", CanonicalName: "Amsterdam"}}},
		{ID: 11, Title: "Extra Customer Success package", Category: entity.GenericProductCategory, IsActive: true},
		{ID: 12, Title: "Niche Board", Category: "Niche", IsActive: true, Status: entity.ProductStatusDisabled,
			Locations: []entity.LocationTag{{MapboxID: "europe", CanonicalName: "Europe"}, {MapboxID: "nl", CanonicalName: "Netherlands"}}},
		{ID: 13, Title: "Old Board", Category: entity.GenericProductCategory, Status: entity.ProductStatusBlacklisted, LogoURL: "x.png",
			Locations: []entity.LocationTag{{MapboxID: "global", CanonicalName: "Global"}}},
	}
}

func checkByLabel(t *testing.T, checks []entity.Check, label string) entity.Check {
	t.Helper()
	for _, c := range checks {
		if c.Label == label {
			return c
		}
	}
	require.Failf(t, "check not found", "label %q", label)

	return entity.Check{}
}

func TestLooksLikeAddOn(t *testing.T) {
	tests := []struct {
		title    string
		expected bool
	}{
		{title: "Extra customer success hours", expected: true},
		{title: "Job posting add on", expected: true},
		{title: "Setup Costs", expected: true},
		{title: "Social Campaign", expected: true},
		{title: "Board set up fee", expected: true},
		{title: "Wallet 5000", expected: true},
		{title: "wallet board", expected: false},
		{title: "LinkedIn Jobs", expected: false},
		{title: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.expected, LooksLikeAddOn(tt.title))
		})
	}
}

func TestCountStatuses(t *testing.T) {
	stats := CountStatuses(fixtureProducts())

	assert.Equal(t, Stats{Disabled: 1, Blacklisted: 1, Active: 2, Total: 4}, stats)
}

func TestProductFilters(t *testing.T) {
	products := fixtureProducts()

	untagged := UntaggedActiveProducts(products, entity.GenericProductCategory)
	require.Len(t, untagged, 1)
	assert.Equal(t, int64(11), untagged[0].ID)

	inactive := ActiveWithInactiveStatus(products)
	require.Len(t, inactive, 1)
	assert.Equal(t, int64(12), inactive[0].ID)

	noLogo := ProductsWithoutLogo(products, entity.GenericProductCategory)
	require.Len(t, noLogo, 1)
	assert.Equal(t, int64(11), noLogo[0].ID)

	assert.Len(t, ManyLocationProducts(products, 2), 2)
}

func TestChecks(t *testing.T) {
	snapshot := NewSnapshot(fixtureLocations(), fixtureProducts(), true)

	checks := Checks(snapshot, DefaultOptions())
	require.Len(t, checks, 12)

	for i := 1; i < len(checks); i++ {
		assert.LessOrEqual(t, checks[i-1].Level.Ordering(), checks[i].Level.Ordering())
	}

	redundant := checkByLabel(t, checks, "Products with redundant sub-locations")
	assert.False(t, redundant.Pass)
	require.Len(t, redundant.Values, 1)
	assert.Equal(t, "Dev Jobs NL", redundant.Values[0].Label)
	assert.Equal(t, []string{"Netherlands", "Amsterdam"}, redundant.Values[0].Values)

	missingID := checkByLabel(t, checks, "Locations without mapbox_id")
	assert.Equal(t, entity.CheckLevelDanger, missingID.Level)
	require.Len(t, missingID.Values, 1)
	assert.Equal(t, "Atlantis", missingID.Values[0].Label)

	continent := checkByLabel(t, checks, "Locations without a continent in context")
	require.Len(t, continent.Values, 1)
	assert.Equal(t, []string{"country.nl"}, continent.Values[0].Values)

	noParent := checkByLabel(t, checks, "Approved locations with no parent")
	assert.Len(t, noParent.Values, 2)

	cycles := checkByLabel(t, checks, "Locations on a parent cycle")
	assert.True(t, cycles.Pass)
}

func TestChecks_ProductsNotLoaded(t *testing.T) {
	snapshot := NewSnapshot(fixtureLocations(), nil, false)

	checks := Checks(snapshot, DefaultOptions())

	redundant := checkByLabel(t, checks, "Products with redundant sub-locations")
	assert.True(t, redundant.Pass)
	assert.Empty(t, redundant.Values)
}

func TestChecks_Cycle(t *testing.T) {
	locations := []entity.Location{
		{ID: 1, MapboxID: "a", CanonicalName: "A", ParentMapboxID: "b"},
		{ID: 2, MapboxID: "b", CanonicalName: "B", ParentMapboxID: "a"},
	}

	checks := Checks(NewSnapshot(locations, nil, true), DefaultOptions())

	cycles := checkByLabel(t, checks, "Locations on a parent cycle")
	assert.False(t, cycles.Pass)
	require.Len(t, cycles.Values, 2)
	assert.Equal(t, "A", cycles.Values[0].Label)
}

func TestSnapshot_Find(t *testing.T) {
	snapshot := NewSnapshot(fixtureLocations(), fixtureProducts(), true)

	p, ok := snapshot.FindProduct(12)
	require.True(t, ok)
	assert.Equal(t, "Niche Board", p.Title)

	_, ok = snapshot.FindProduct(99)
	assert.False(t, ok)

	l, ok := snapshot.FindLocation("ams")
	require.True(t, ok)
	assert.Equal(t, []string{"nl", "europe", "global"}, snapshot.Chains.Chain(l.MapboxID))
}
