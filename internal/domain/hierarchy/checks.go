package hierarchy

import (
	"math"
	"sort"
	"strings"

	"curator/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// DefaultContinentPrefix marks continent-level entries of a location's context.
const DefaultContinentPrefix = "continent."

// LocationsMissingContinent returns locations whose context is present but has
// no entry starting with prefix. Locations without any context are skipped.
func LocationsMissingContinent(locations []entity.Location, prefix string) []entity.Location {
	var flagged []entity.Location
	for i := range locations {
		if locations[i].Context == nil {
			continue
		}
		if !hasPrefixed(locations[i].Context, prefix) {
			flagged = append(flagged, locations[i])
		}
	}

	return flagged
}

func hasPrefixed(values []string, prefix string) bool {
	for _, v := range values {
		if strings.HasPrefix(v, prefix) {
			return true
		}
	}

	return false
}

// DuplicateCanonicalNames returns every location whose canonical name is
// shared with another location, all occurrences included, ordered by name then id.
func DuplicateCanonicalNames(locations []entity.Location) []entity.Location {
	counts := make(map[string]int, len(locations))
	for i := range locations {
		counts[locations[i].CanonicalName]++
	}

	var flagged []entity.Location
	for i := range locations {
		if counts[locations[i].CanonicalName] > 1 {
			flagged = append(flagged, locations[i])
		}
	}

	sort.SliceStable(flagged, func(i, j int) bool {
		if flagged[i].CanonicalName != flagged[j].CanonicalName {
			return flagged[i].CanonicalName < flagged[j].CanonicalName
		}

		return flagged[i].ID < flagged[j].ID
	})

	return flagged
}

// LocationsWithoutID returns locations missing a geocoder id.
func LocationsWithoutID(locations []entity.Location) []entity.Location {
	var flagged []entity.Location
	for i := range locations {
		if !locations[i].HasMapboxID() {
			flagged = append(flagged, locations[i])
		}
	}

	return flagged
}

// ApprovedWithoutParent returns approved locations that reference no parent.
func ApprovedWithoutParent(locations []entity.Location) []entity.Location {
	var flagged []entity.Location
	for i := range locations {
		if locations[i].Approved && !locations[i].HasParent() {
			flagged = append(flagged, locations[i])
		}
	}

	return flagged
}

// Oversized is a location whose bounding box covers more ground than its parent's.
type Oversized struct {
	Child      entity.Location
	Parent     entity.Location
	ChildArea  float64 // m²
	ParentArea float64 // m²
}

// OversizedChildren returns locations whose bounding-box area exceeds their
// immediate parent's. Locations where either box is unknown are skipped.
func OversizedChildren(locations []entity.Location, lookup ParentLookup) []Oversized {
	byID := make(map[string]*entity.Location, len(locations))
	for i := range locations {
		if locations[i].HasMapboxID() {
			byID[locations[i].MapboxID] = &locations[i]
		}
	}

	var flagged []Oversized
	for i := range locations {
		child := &locations[i]
		parent, ok := byID[lookup[child.MapboxID]]
		if !ok || !child.HasMapboxID() {
			continue
		}

		childArea, ok := BoundingBoxArea(child.BoundingBox)
		if !ok {
			continue
		}
		parentArea, ok := BoundingBoxArea(parent.BoundingBox)
		if !ok {
			continue
		}

		if childArea > parentArea {
			flagged = append(flagged, Oversized{
				Child:      *child,
				Parent:     *parent,
				ChildArea:  childArea,
				ParentArea: parentArea,
			})
		}
	}

	return flagged
}

// BoundingBoxArea returns the spherical area in square metres of a
// [minLon, minLat, maxLon, maxLat] box. ok is false for malformed boxes.
func BoundingBoxArea(bbox []float64) (float64, bool) {
	if len(bbox) != 4 {
		return 0, false
	}

	bound := orb.Bound{
		Min: orb.Point{bbox[0], bbox[1]},
		Max: orb.Point{bbox[2], bbox[3]},
	}
	if bound.Min.X() > bound.Max.X() || bound.Min.Y() > bound.Max.Y() {
		return 0, false
	}

	return math.Abs(geo.Area(bound.ToPolygon())), true
}
