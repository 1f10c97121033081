package hierarchy

import (
	"curator/internal/domain/entity"
)

// TagSet is a set of location geocoder ids tagged onto one product.
type TagSet map[string]struct{}

// NewTagSet builds a set from ids, ignoring empty ones.
func NewTagSet(ids ...string) TagSet {
	set := make(TagSet, len(ids))
	for _, id := range ids {
		if id != "" {
			set[id] = struct{}{}
		}
	}

	return set
}

// Has reports whether id is in the set.
func (s TagSet) Has(id string) bool {
	_, ok := s[id]

	return ok
}

// IsRedundant reports whether some other member of tagged is a strict ancestor
// of candidate, which makes the more specific candidate tag redundant.
// Two members that are each other's ancestor can only happen on a parent
// cycle; neither counts as the broader one and both are kept.
func IsRedundant(tagged TagSet, candidate string, chains AncestorChains) bool {
	for _, ancestor := range chains[candidate] {
		if ancestor == candidate || !tagged.Has(ancestor) {
			continue
		}
		if chains.IsAncestor(candidate, ancestor) {
			continue
		}

		return true
	}

	return false
}

// HasRedundantTagging reports whether any tag of the product is redundant.
func HasRedundantTagging(product *entity.Product, chains AncestorChains) bool {
	tagged := NewTagSet(product.LocationIDs()...)
	for id := range tagged {
		if IsRedundant(tagged, id, chains) {
			return true
		}
	}

	return false
}

// RedundantTags returns the product's tags that are subsumed by a broader tag,
// in tag order.
func RedundantTags(product *entity.Product, chains AncestorChains) []entity.LocationTag {
	tagged := NewTagSet(product.LocationIDs()...)

	var redundant []entity.LocationTag
	for _, tag := range product.Locations {
		if tag.MapboxID != "" && IsRedundant(tagged, tag.MapboxID, chains) {
			redundant = append(redundant, tag)
		}
	}

	return redundant
}

// ProductsWithRedundantTagging returns, in input order, the products of the
// given general-purpose category that carry at least one redundant tag.
// Products of any other category are never returned.
func ProductsWithRedundantTagging(products []entity.Product, chains AncestorChains, category string) []entity.Product {
	var flagged []entity.Product
	for i := range products {
		if products[i].Category != category {
			continue
		}
		if HasRedundantTagging(&products[i], chains) {
			flagged = append(flagged, products[i])
		}
	}

	return flagged
}

// PruneRedundantTags returns the product's tag-set with every redundant tag
// removed, keeping only tags without a tagged ancestor. Survivors keep their
// order; repeated geocoder ids collapse to the first occurrence; tags without
// a geocoder id cannot be placed in the hierarchy and are kept. Applying the
// function to its own output is a no-op.
func PruneRedundantTags(product *entity.Product, chains AncestorChains) []entity.LocationTag {
	tagged := NewTagSet(product.LocationIDs()...)

	pruned := make([]entity.LocationTag, 0, len(product.Locations))
	seen := make(map[string]struct{}, len(product.Locations))
	for _, tag := range product.Locations {
		if tag.MapboxID == "" {
			pruned = append(pruned, tag)
			continue
		}
		if _, dup := seen[tag.MapboxID]; dup {
			continue
		}
		seen[tag.MapboxID] = struct{}{}

		if !IsRedundant(tagged, tag.MapboxID, chains) {
			pruned = append(pruned, tag)
		}
	}

	return pruned
}
