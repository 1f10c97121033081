package entity

// Facet is a named taxonomy reference (job function, industry or location)
// attached to a search query or result.
type Facet struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SearchCase is a relevance test case: one product search query.
type SearchCase struct {
	JobFunction Facet `json:"jobFunction"`
	Industry    Facet `json:"industry"`
	Location    Facet `json:"location"`
}

// SearchResult is one ranked product returned by the product search.
type SearchResult struct {
	ProductID    int64   `json:"id"`
	Title        string  `json:"title"`
	JobFunctions []Facet `json:"job_functions"`
	Industries   []Facet `json:"industries"`
	Locations    []Facet `json:"locations"`
}

// HasJobFunction reports whether the result is tagged with the job function.
func (r *SearchResult) HasJobFunction(id int64) bool {
	return containsFacet(r.JobFunctions, id)
}

// HasIndustry reports whether the result is tagged with the industry.
func (r *SearchResult) HasIndustry(id int64) bool {
	return containsFacet(r.Industries, id)
}

// HasLocation reports whether the result is tagged with the location.
func (r *SearchResult) HasLocation(id int64) bool {
	return containsFacet(r.Locations, id)
}

func containsFacet(facets []Facet, id int64) bool {
	for _, f := range facets {
		if f.ID == id {
			return true
		}
	}

	return false
}
