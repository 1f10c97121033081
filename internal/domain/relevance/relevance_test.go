package relevance

import (
	"testing"

	"curator/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var query = entity.SearchCase{
	JobFunction: entity.Facet{ID: 10, Name: "Engineering"},
	Industry:    entity.Facet{ID: 20, Name: "Software"},
	Location:    entity.Facet{ID: 30, Name: "Netherlands"},
}

func facets(ids ...int64) []entity.Facet {
	out := make([]entity.Facet, 0, len(ids))
	for _, id := range ids {
		out = append(out, entity.Facet{ID: id})
	}

	return out
}

// result builds a search result that the default rules rank at the given priority.
func result(id int64, rank int) entity.SearchResult {
	r := entity.SearchResult{ProductID: id}
	switch rank {
	case 0:
		r.JobFunctions, r.Industries, r.Locations = facets(10), facets(20), facets(30)
	case 1:
		r.JobFunctions, r.Locations = facets(10), facets(30)
	case 2:
		r.Industries, r.Locations = facets(DefaultGenericIndustryID), facets(30)
	case 3:
		r.JobFunctions, r.Locations = facets(10), facets(DefaultGlobalLocationID)
	case 4:
		r.Industries, r.Locations = facets(DefaultGenericIndustryID), facets(DefaultGlobalLocationID)
	default:
		r.Locations = facets(99)
	}

	return r
}

func results(ranks ...int) []entity.SearchResult {
	out := make([]entity.SearchResult, 0, len(ranks))
	for i, rank := range ranks {
		out = append(out, result(int64(100+i), rank))
	}

	return out
}

func rules() []Rule {
	return DefaultRules(query, DefaultGenericIndustryID, DefaultGlobalLocationID)
}

func TestRank(t *testing.T) {
	rs := rules()
	require.Len(t, rs, 5)

	for rank := 0; rank < 5; rank++ {
		r := result(1, rank)
		assert.Equal(t, rank, Rank(&r, rs), rs[rank].Label)
	}

	r := result(1, Unmatched)
	assert.Equal(t, Unmatched, Rank(&r, rs))
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name          string
		ranks         []int
		expectedPass  bool
		expectedEnds  []int
		expectedLates map[int][]int
	}{
		{
			name:         "ordered blocks",
			ranks:        []int{0, 0, 1, 2, 2, 3, 4},
			expectedPass: true,
			expectedEnds: []int{2, 3, 5, 6, 7},
		},
		{
			name:         "skipped rules",
			ranks:        []int{0, 3, 3},
			expectedPass: true,
			expectedEnds: []int{1, 1, 1, 3, 3},
		},
		{
			name:          "higher rule after lower rule",
			ranks:         []int{1, 0},
			expectedPass:  false,
			expectedEnds:  []int{0, 1, 1, 1, 1},
			expectedLates: map[int][]int{0: {1}},
		},
		{
			name:          "unmatched breaks block",
			ranks:         []int{0, Unmatched, 0, 1},
			expectedPass:  false,
			expectedEnds:  []int{1, 1, 1, 1, 1},
			expectedLates: map[int][]int{0: {2}, 1: {3}},
		},
		{
			name:         "trailing unmatched",
			ranks:        []int{0, 1, Unmatched, Unmatched},
			expectedPass: true,
			expectedEnds: []int{1, 2, 2, 2, 2},
		},
		{
			name:         "no results",
			ranks:        nil,
			expectedPass: true,
			expectedEnds: []int{0, 0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			outcome := Evaluate(results(tt.ranks...), rules())

			assert.Equal(t, tt.expectedPass, outcome.Pass)
			require.Len(t, outcome.Outcomes, 5)

			for r, o := range outcome.Outcomes {
				assert.Equal(t, r, o.Priority)
				assert.Equal(t, tt.expectedEnds[r], o.EndsBy, "rule %d ends by", r)
				if r > 0 {
					assert.Equal(t, outcome.Outcomes[r-1].EndsBy, o.StartsAt)
				}

				lates := make([]int, 0, len(o.LateMatches))
				for _, m := range o.LateMatches {
					assert.Equal(t, o.EndsBy, m.Endpoint)
					lates = append(lates, m.ResultIndex)
				}
				expected := tt.expectedLates[r]
				if expected == nil {
					expected = []int{}
				}
				assert.Equal(t, expected, lates, "rule %d late matches", r)
			}
		})
	}
}

func TestEvaluate_LateMatchCarriesProduct(t *testing.T) {
	outcome := Evaluate(results(1, 0), rules())

	require.Len(t, outcome.Outcomes[0].LateMatches, 1)
	assert.Equal(t, int64(101), outcome.Outcomes[0].LateMatches[0].ProductID)
	assert.Equal(t, []int{1, 0}, outcome.Ranks)
}
