// Package hierarchy builds the location parent forest from flat records and
// answers ancestor and redundancy questions over it. Every function is pure:
// inputs are never mutated and results are freshly allocated.
package hierarchy

import (
	"sort"

	"curator/internal/domain/entity"
)

// ParentLookup maps a location's geocoder id to its immediate parent's geocoder id.
// Absence from the map means the location is a root.
type ParentLookup map[string]string

// AncestorChains maps a location's geocoder id to its ancestors, nearest first and root last.
type AncestorChains map[string][]string

// Chain returns the ancestor chain of id, or nil when id is unknown or a root.
func (c AncestorChains) Chain(id string) []string {
	return c[id]
}

// IsAncestor reports whether ancestor appears in the chain of id.
func (c AncestorChains) IsAncestor(ancestor, id string) bool {
	for _, a := range c[id] {
		if a == ancestor {
			return true
		}
	}

	return false
}

// BuildParentLookup records the single-step parent of every location that has
// both a geocoder id and a resolvable parent. The parent is taken from
// ParentMapboxID when present, otherwise WithinID is resolved against the set.
func BuildParentLookup(locations []entity.Location) ParentLookup {
	byKey := make(map[int64]string, len(locations))
	for i := range locations {
		if locations[i].HasMapboxID() {
			byKey[locations[i].ID] = locations[i].MapboxID
		}
	}

	lookup := make(ParentLookup, len(locations))
	for i := range locations {
		loc := &locations[i]
		if !loc.HasMapboxID() || !loc.HasParent() {
			continue
		}

		parent := loc.ParentMapboxID
		if parent == "" && loc.WithinID != nil {
			parent = byKey[*loc.WithinID]
		}
		if parent == "" {
			continue
		}

		lookup[loc.MapboxID] = parent
	}

	return lookup
}

// BuildAncestorChains walks the parent lookup once per location and returns
// the full ancestor chain of each. The walk is iterative and keeps a visited
// set, so a parent cycle truncates the chain at the point where it would
// revisit a location. Chains computed earlier are reused, keeping the total
// work proportional to locations times depth.
func BuildAncestorChains(locations []entity.Location, lookup ParentLookup) AncestorChains {
	chains := make(AncestorChains, len(locations))

	for i := range locations {
		id := locations[i].MapboxID
		if id == "" {
			continue
		}
		if _, done := chains[id]; done {
			continue
		}

		chains[id] = walk(id, lookup, chains)
	}

	return chains
}

func walk(start string, lookup ParentLookup, chains AncestorChains) []string {
	visited := map[string]struct{}{start: {}}
	chain := []string{}

	cur := start
	for {
		parent, ok := lookup[cur]
		if !ok {
			break
		}
		if _, seen := visited[parent]; seen {
			break
		}

		chain = append(chain, parent)
		visited[parent] = struct{}{}

		if memo, ok := chains[parent]; ok {
			for _, a := range memo {
				if _, seen := visited[a]; seen {
					break
				}
				chain = append(chain, a)
				visited[a] = struct{}{}
			}

			break
		}

		cur = parent
	}

	return chain
}

// FindCycles returns the geocoder ids that sit on a parent cycle, sorted.
// A location that is its own parent counts as a cycle of one.
func FindCycles(lookup ParentLookup) []string {
	const (
		unvisited = iota
		onPath
		done
	)

	state := make(map[string]int, len(lookup))
	var cycles []string

	starts := make([]string, 0, len(lookup))
	for id := range lookup {
		starts = append(starts, id)
	}
	sort.Strings(starts)

	for _, start := range starts {
		if state[start] != unvisited {
			continue
		}

		var path []string
		pos := make(map[string]int)

		cur := start
		for {
			if state[cur] == done {
				break
			}
			if state[cur] == onPath {
				cycles = append(cycles, path[pos[cur]:]...)
				break
			}

			state[cur] = onPath
			pos[cur] = len(path)
			path = append(path, cur)

			parent, ok := lookup[cur]
			if !ok {
				break
			}
			cur = parent
		}

		for _, id := range path {
			state[id] = done
		}
	}

	sort.Strings(cycles)

	return cycles
}
