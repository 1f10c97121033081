// Package relevance checks that product search results come back in rule
// priority order: every result matched by a higher-priority rule must be
// ranked above every result first matched by a lower-priority one.
package relevance

import (
	"curator/internal/domain/entity"
)

// Unmatched is the rank of a result that no rule matches.
const Unmatched = -1

// Default production ids of the generic industry and the global location.
const (
	DefaultGenericIndustryID int64 = 29
	DefaultGlobalLocationID  int64 = 2425
)

// Rule is one priority level of the expected ordering.
type Rule struct {
	Label   string
	Matches func(r *entity.SearchResult) bool
}

// DefaultRules builds the five priority rules for a search case, highest first.
func DefaultRules(query entity.SearchCase, genericIndustryID, globalLocationID int64) []Rule {
	fn, ind, loc := query.JobFunction.ID, query.Industry.ID, query.Location.ID

	return []Rule{
		{
			Label: "match function & industry & location",
			Matches: func(r *entity.SearchResult) bool {
				return r.HasJobFunction(fn) && r.HasLocation(loc) && r.HasIndustry(ind)
			},
		},
		{
			Label: "match function & location",
			Matches: func(r *entity.SearchResult) bool {
				return r.HasJobFunction(fn) && r.HasLocation(loc)
			},
		},
		{
			Label: "match generic board in location",
			Matches: func(r *entity.SearchResult) bool {
				return r.HasIndustry(genericIndustryID) && r.HasLocation(loc)
			},
		},
		{
			Label: "match function globally",
			Matches: func(r *entity.SearchResult) bool {
				return r.HasLocation(globalLocationID) && r.HasJobFunction(fn)
			},
		},
		{
			Label: "match global generic",
			Matches: func(r *entity.SearchResult) bool {
				return r.HasIndustry(genericIndustryID) && r.HasLocation(globalLocationID)
			},
		},
	}
}

// LateMatch is a result ranked after the block its rule was expected to fill.
type LateMatch struct {
	ResultIndex int   `json:"result_index"`
	Endpoint    int   `json:"endpoint"`
	ProductID   int64 `json:"product_id"`
}

// RuleOutcome is where a rule's block sits in the results and what fell outside it.
// StartsAt equal to EndsBy means no result was placed by the rule.
type RuleOutcome struct {
	Label       string      `json:"label"`
	Priority    int         `json:"priority"`
	StartsAt    int         `json:"starts_at"`
	EndsBy      int         `json:"ends_by"`
	LateMatches []LateMatch `json:"late_matches"`
}

// CaseOutcome is the evaluation of one search case.
type CaseOutcome struct {
	Ranks    []int         `json:"ranks"`
	Outcomes []RuleOutcome `json:"outcomes"`
	Pass     bool          `json:"pass"`
}

// Rank returns the index of the first rule matching the result, or Unmatched.
func Rank(result *entity.SearchResult, rules []Rule) int {
	for i := range rules {
		if rules[i].Matches(result) {
			return i
		}
	}

	return Unmatched
}

// Evaluate ranks every result and sweeps the ranked list once. Rule r's block
// starts where rule r-1's ended and extends while results carry rank r; any
// later result of rank r is a late match. Unmatched results only end blocks.
func Evaluate(results []entity.SearchResult, rules []Rule) CaseOutcome {
	ranks := make([]int, len(results))
	for i := range results {
		ranks[i] = Rank(&results[i], rules)
	}

	outcomes := make([]RuleOutcome, len(rules))
	cursor := 0
	for r := range rules {
		start := cursor
		for cursor < len(ranks) && ranks[cursor] == r {
			cursor++
		}
		outcomes[r] = RuleOutcome{
			Label:       rules[r].Label,
			Priority:    r,
			StartsAt:    start,
			EndsBy:      cursor,
			LateMatches: []LateMatch{},
		}
	}

	pass := true
	for i, rank := range ranks {
		if rank == Unmatched {
			continue
		}
		if i >= outcomes[rank].EndsBy {
			outcomes[rank].LateMatches = append(outcomes[rank].LateMatches, LateMatch{
				ResultIndex: i,
				Endpoint:    outcomes[rank].EndsBy,
				ProductID:   results[i].ProductID,
			})
			pass = false
		}
	}

	return CaseOutcome{Ranks: ranks, Outcomes: outcomes, Pass: pass}
}
