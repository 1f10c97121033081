// Package quality assembles the data-quality dashboard from a loaded
// snapshot of locations and products.
package quality

import (
	"sort"
	"strconv"
	"strings"

	"curator/internal/domain/entity"
	"curator/internal/domain/hierarchy"
)

// Options tune the checks.
type Options struct {
	GeneralPurposeCategory string
	ContinentPrefix        string
	ManyLocationThreshold  int
}

// DefaultOptions returns the thresholds used by the admin dashboard.
func DefaultOptions() Options {
	return Options{
		GeneralPurposeCategory: entity.GenericProductCategory,
		ContinentPrefix:        hierarchy.DefaultContinentPrefix,
		ManyLocationThreshold:  25,
	}
}

// Snapshot is an immutable view of the reference data with its derived hierarchy.
type Snapshot struct {
	Locations      []entity.Location
	Products       []entity.Product
	ProductsLoaded bool
	Lookup         hierarchy.ParentLookup
	Chains         hierarchy.AncestorChains
}

// NewSnapshot derives the parent lookup and the ancestor chains once.
func NewSnapshot(locations []entity.Location, products []entity.Product, productsLoaded bool) *Snapshot {
	lookup := hierarchy.BuildParentLookup(locations)

	return &Snapshot{
		Locations:      locations,
		Products:       products,
		ProductsLoaded: productsLoaded,
		Lookup:         lookup,
		Chains:         hierarchy.BuildAncestorChains(locations, lookup),
	}
}

// FindProduct returns the product with the given id.
func (s *Snapshot) FindProduct(id int64) (*entity.Product, bool) {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return &s.Products[i], true
		}
	}

	return nil, false
}

// FindLocation returns the location with the given geocoder id.
func (s *Snapshot) FindLocation(mapboxID string) (*entity.Location, bool) {
	for i := range s.Locations {
		if s.Locations[i].MapboxID == mapboxID {
			return &s.Locations[i], true
		}
	}

	return nil, false
}

// ManyLocationProducts returns products tagged with at least threshold locations.
func ManyLocationProducts(products []entity.Product, threshold int) []entity.Product {
	var flagged []entity.Product
	for i := range products {
		if len(products[i].Locations) >= threshold {
			flagged = append(flagged, products[i])
		}
	}

	return flagged
}

// UntaggedActiveProducts returns active products of the category with no location tag.
func UntaggedActiveProducts(products []entity.Product, category string) []entity.Product {
	var flagged []entity.Product
	for i := range products {
		p := &products[i]
		if p.IsActive && p.Category == category && len(p.Locations) == 0 {
			flagged = append(flagged, *p)
		}
	}

	return flagged
}

var addOnMarkers = []string{"add on", "costs", "campaign", "set up"}

// LooksLikeAddOn reports whether a title reads like an add-on or a service
// rather than a job board.
func LooksLikeAddOn(title string) bool {
	if title == "" {
		return false
	}
	if strings.HasPrefix(title, "Wallet ") {
		return true
	}

	lower := strings.ToLower(title)
	if strings.HasPrefix(lower, "extra customer success") {
		return true
	}
	for _, marker := range addOnMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	return false
}

// AddOnLookalikes returns products of the category whose title looks like an add-on.
func AddOnLookalikes(products []entity.Product, category string) []entity.Product {
	var flagged []entity.Product
	for i := range products {
		if products[i].Category == category && LooksLikeAddOn(products[i].Title) {
			flagged = append(flagged, products[i])
		}
	}

	return flagged
}

// ActiveWithInactiveStatus returns active products whose status is Disabled or Blacklisted.
func ActiveWithInactiveStatus(products []entity.Product) []entity.Product {
	var flagged []entity.Product
	for i := range products {
		p := &products[i]
		if p.IsActive && (p.Status == entity.ProductStatusDisabled || p.Status == entity.ProductStatusBlacklisted) {
			flagged = append(flagged, *p)
		}
	}

	return flagged
}

// ProductsWithoutLogo returns products of the category with no logo.
func ProductsWithoutLogo(products []entity.Product, category string) []entity.Product {
	var flagged []entity.Product
	for i := range products {
		if products[i].Category == category && products[i].LogoURL == "" {
			flagged = append(flagged, products[i])
		}
	}

	return flagged
}

// Stats counts products per status. An empty status counts as active.
type Stats struct {
	Disabled    int `json:"disabled"`
	Blacklisted int `json:"blacklisted"`
	Active      int `json:"active"`
	Total       int `json:"total"`
}

// CountStatuses tallies products by status.
func CountStatuses(products []entity.Product) Stats {
	stats := Stats{Total: len(products)}
	for i := range products {
		switch products[i].Status {
		case entity.ProductStatusDisabled:
			stats.Disabled++
		case entity.ProductStatusBlacklisted:
			stats.Blacklisted++
		case "":
			stats.Active++
		}
	}

	return stats
}

// Checks runs every check against the snapshot, most severe first. Product
// checks pass vacuously when products failed to load.
func Checks(s *Snapshot, opts Options) []entity.Check {
	checks := []entity.Check{
		simpleLocations("Approved locations with no parent", entity.CheckLevelWarning,
			hierarchy.ApprovedWithoutParent(s.Locations)),
		simpleLocations("Duplicate location names", entity.CheckLevelWarning,
			hierarchy.DuplicateCanonicalNames(s.Locations)),
		redundantProductsCheck(s, opts.GeneralPurposeCategory),
		manyLocationsCheck(s.Products, opts.ManyLocationThreshold),
		missingContinentCheck(hierarchy.LocationsMissingContinent(s.Locations, opts.ContinentPrefix)),
		simpleProducts("Active boards with no location tagging", entity.CheckLevelWarning,
			UntaggedActiveProducts(s.Products, opts.GeneralPurposeCategory)),
		simpleProducts("Boards that look like add-ons or services", entity.CheckLevelWarning,
			AddOnLookalikes(s.Products, opts.GeneralPurposeCategory)),
		simpleProducts("Active products with Disabled or Blacklisted status", entity.CheckLevelDanger,
			ActiveWithInactiveStatus(s.Products)),
		simpleLocations("Locations without mapbox_id", entity.CheckLevelDanger,
			hierarchy.LocationsWithoutID(s.Locations)),
		simpleProducts("Boards without a logo", entity.CheckLevelWarning,
			ProductsWithoutLogo(s.Products, opts.GeneralPurposeCategory)),
		cycleCheck(s),
		oversizedCheck(hierarchy.OversizedChildren(s.Locations, s.Lookup)),
	}

	sort.SliceStable(checks, func(i, j int) bool {
		return checks[i].Level.Ordering() < checks[j].Level.Ordering()
	})

	return checks
}

func simpleLocations(label string, level entity.CheckLevel, locations []entity.Location) entity.Check {
	values := make([]entity.Finding, 0, len(locations))
	for i := range locations {
		values = append(values, entity.Finding{
			Label:    locations[i].CanonicalName,
			AdminURL: locations[i].AdminURL(),
		})
	}

	return entity.Check{
		Label:  label,
		Kind:   entity.CheckKindSimple,
		Level:  level,
		Pass:   len(values) == 0,
		Values: values,
	}
}

func simpleProducts(label string, level entity.CheckLevel, products []entity.Product) entity.Check {
	values := make([]entity.Finding, 0, len(products))
	for i := range products {
		values = append(values, entity.Finding{
			Label:    products[i].Title,
			AdminURL: products[i].AdminURL(),
		})
	}

	return entity.Check{
		Label:  label,
		Kind:   entity.CheckKindSimple,
		Level:  level,
		Pass:   len(values) == 0,
		Values: values,
	}
}

func redundantProductsCheck(s *Snapshot, category string) entity.Check {
	check := entity.Check{
		Label:  "Products with redundant sub-locations",
		Kind:   entity.CheckKindStructured,
		Level:  entity.CheckLevelInfo,
		Pass:   true,
		Values: []entity.Finding{},
	}
	if !s.ProductsLoaded {
		return check
	}

	for _, p := range hierarchy.ProductsWithRedundantTagging(s.Products, s.Chains, category) {
		check.Values = append(check.Values, entity.Finding{
			Label:    p.Title,
			AdminURL: p.AdminURL(),
			Values:   p.LocationNames(),
		})
	}
	check.Pass = len(check.Values) == 0

	return check
}

func manyLocationsCheck(products []entity.Product, threshold int) entity.Check {
	flagged := ManyLocationProducts(products, threshold)
	values := make([]entity.Finding, 0, len(flagged))
	for i := range flagged {
		values = append(values, entity.Finding{
			Label:    flagged[i].Title,
			AdminURL: flagged[i].AdminURL(),
			Values:   []string{strconv.Itoa(len(flagged[i].Locations))},
		})
	}

	return entity.Check{
		Label:  "Products with " + strconv.Itoa(threshold) + " location taggings or more",
		Kind:   entity.CheckKindStructured,
		Level:  entity.CheckLevelInfo,
		Pass:   len(values) == 0,
		Values: values,
	}
}

func missingContinentCheck(locations []entity.Location) entity.Check {
	values := make([]entity.Finding, 0, len(locations))
	for i := range locations {
		values = append(values, entity.Finding{
			Label:    locations[i].CanonicalName,
			AdminURL: locations[i].AdminURL(),
			Values:   []string{strings.Join(locations[i].Context, ", ")},
		})
	}

	return entity.Check{
		Label:  "Locations without a continent in context",
		Kind:   entity.CheckKindStructured,
		Level:  entity.CheckLevelWarning,
		Pass:   len(values) == 0,
		Values: values,
	}
}

func cycleCheck(s *Snapshot) entity.Check {
	ids := hierarchy.FindCycles(s.Lookup)
	values := make([]entity.Finding, 0, len(ids))
	for _, id := range ids {
		finding := entity.Finding{Label: id}
		if loc, ok := s.FindLocation(id); ok {
			finding.Label = loc.CanonicalName
			finding.AdminURL = loc.AdminURL()
		}
		values = append(values, finding)
	}

	return entity.Check{
		Label:  "Locations on a parent cycle",
		Kind:   entity.CheckKindSimple,
		Level:  entity.CheckLevelDanger,
		Pass:   len(values) == 0,
		Values: values,
	}
}

func oversizedCheck(oversized []hierarchy.Oversized) entity.Check {
	values := make([]entity.Finding, 0, len(oversized))
	for i := range oversized {
		o := &oversized[i]
		values = append(values, entity.Finding{
			Label:    o.Child.CanonicalName,
			AdminURL: o.Child.AdminURL(),
			Values: []string{
				o.Parent.CanonicalName,
				strconv.FormatFloat(o.ChildArea/1e6, 'f', 0, 64) + " km²",
				strconv.FormatFloat(o.ParentArea/1e6, 'f', 0, 64) + " km²",
			},
		})
	}

	return entity.Check{
		Label:  "Locations larger than their parent",
		Kind:   entity.CheckKindStructured,
		Level:  entity.CheckLevelInfo,
		Pass:   len(values) == 0,
		Values: values,
	}
}
