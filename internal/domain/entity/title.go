package entity

// Title is a job title string. Equivalent titles are grouped under one
// canonical title; the others point at it through AliasOfID.
type Title struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Active      bool   `json:"active"`
	Canonical   bool   `json:"canonical"`
	AliasOfID   *int64 `json:"alias_of_id"` // Canonical title this one is an alias of.
	Frequency   int    `json:"frequency"`   // How often the title was seen in postings.
	JobFunction string `json:"job_function,omitempty"`
	Industry    string `json:"industry,omitempty"`
}

// IsAlias reports whether the title points at a canonical title.
func (t *Title) IsAlias() bool {
	return t.AliasOfID != nil
}

// IsAliasOf reports whether the title is an alias of the title with the given id.
func (t *Title) IsAliasOf(id int64) bool {
	return t.AliasOfID != nil && *t.AliasOfID == id
}
