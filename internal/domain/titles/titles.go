// Package titles maintains the canonical/alias graph of job titles in memory.
// Operations mutate the titles they touch and return them so the caller can
// persist exactly what changed.
package titles

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/errors"
)

// DefaultIgnoredTokens are words too common to suggest an alias on their own.
var DefaultIgnoredTokens = []string{"consultant", "manager", "assistant", "executive", "developer"}

// Set is the working set of titles, ordered by frequency, most frequent first.
type Set struct {
	titles []*entity.Title
	byID   map[int64]*entity.Title
}

// NewSet indexes titles. The slice is reordered by descending frequency.
func NewSet(titles []*entity.Title) *Set {
	sort.SliceStable(titles, func(i, j int) bool {
		return titles[i].Frequency > titles[j].Frequency
	})

	byID := make(map[int64]*entity.Title, len(titles))
	for _, t := range titles {
		byID[t.ID] = t
	}

	return &Set{titles: titles, byID: byID}
}

// All returns every title in frequency order.
func (s *Set) All() []*entity.Title {
	return s.titles
}

// Len returns the number of titles.
func (s *Set) Len() int {
	return len(s.titles)
}

// Get returns the title with the given id.
func (s *Set) Get(id int64) (*entity.Title, error) {
	t, ok := s.byID[id]
	if !ok {
		return nil, domainerrors.ErrTitleNotFound.WrapMessage("title id " + strconv.FormatInt(id, 10))
	}

	return t, nil
}

// AliasesOf returns the titles pointing at id.
func (s *Set) AliasesOf(id int64) []*entity.Title {
	var aliases []*entity.Title
	for _, t := range s.titles {
		if t.IsAliasOf(id) {
			aliases = append(aliases, t)
		}
	}

	return aliases
}

// MakeAlias points aliasID at canonicalID. The canonical title becomes active
// and canonical; aliases of the new alias follow it to the canonical so that
// no alias is ever the target of another.
func (s *Set) MakeAlias(aliasID, canonicalID int64) ([]*entity.Title, error) {
	if aliasID == canonicalID {
		return nil, domainerrors.ErrSelfAlias
	}

	alias, err := s.Get(aliasID)
	if err != nil {
		return nil, err
	}
	canonical, err := s.Get(canonicalID)
	if err != nil {
		return nil, err
	}
	if canonical.IsAlias() {
		return nil, domainerrors.ErrAliasTargetIsAlias.WithDetails(canonical.Name)
	}

	changed := newChangeSet()
	for _, t := range s.AliasesOf(alias.ID) {
		t.AliasOfID = ptr(canonical.ID)
		changed.add(t)
	}

	alias.AliasOfID = ptr(canonical.ID)
	alias.Canonical = false
	changed.add(alias)

	if !canonical.Canonical || !canonical.Active {
		canonical.Canonical = true
		canonical.Active = true
		changed.add(canonical)
	}

	return changed.list(), nil
}

// BreakAlias clears the alias link of aliasID.
func (s *Set) BreakAlias(aliasID int64) ([]*entity.Title, error) {
	alias, err := s.Get(aliasID)
	if err != nil {
		return nil, err
	}
	if !alias.IsAlias() {
		return nil, domainerrors.ErrNotAlias.WithDetails(alias.Name)
	}

	alias.AliasOfID = nil

	return []*entity.Title{alias}, nil
}

// Canonify marks the title as canonical.
func (s *Set) Canonify(id int64) ([]*entity.Title, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if t.Canonical {
		return nil, nil
	}

	t.Canonical = true

	return []*entity.Title{t}, nil
}

// Decanonify clears the canonical flag and releases every alias of the title.
func (s *Set) Decanonify(id int64) ([]*entity.Title, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	return s.decanonify(t), nil
}

func (s *Set) decanonify(t *entity.Title) []*entity.Title {
	changed := newChangeSet()

	t.Canonical = false
	changed.add(t)

	for _, alias := range s.AliasesOf(t.ID) {
		alias.AliasOfID = nil
		changed.add(alias)
	}

	return changed.list()
}

// Activate marks the title active.
func (s *Set) Activate(id int64) ([]*entity.Title, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	t.Active = true

	return []*entity.Title{t}, nil
}

// Deactivate marks the title inactive and decanonifies it.
func (s *Set) Deactivate(id int64) ([]*entity.Title, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	t.Active = false

	return s.decanonify(t), nil
}

// Rebase swaps an alias with its canonical title: the alias becomes the
// canonical, takes over the other aliases, and the old canonical becomes
// one of its aliases.
func (s *Set) Rebase(id int64) ([]*entity.Title, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !t.IsAlias() {
		return nil, domainerrors.ErrNotAlias.WithDetails(t.Name)
	}

	old, err := s.Get(*t.AliasOfID)
	if err != nil {
		return nil, errors.Wrap(err, "rebase onto missing canonical")
	}

	changed := newChangeSet()
	for _, alias := range s.AliasesOf(old.ID) {
		if alias.ID == t.ID {
			continue
		}
		alias.AliasOfID = ptr(t.ID)
		changed.add(alias)
	}

	old.AliasOfID = ptr(t.ID)
	old.Canonical = false
	changed.add(old)

	t.AliasOfID = nil
	t.Canonical = true
	t.Active = true
	changed.add(t)

	return changed.list(), nil
}

// CanonicalAliases returns canonical titles that are also aliases of another title.
func (s *Set) CanonicalAliases() []*entity.Title {
	var flagged []*entity.Title
	for _, t := range s.titles {
		if t.Canonical && t.IsAlias() {
			flagged = append(flagged, t)
		}
	}

	return flagged
}

// AliasTargetsThatAreAliases returns aliases whose target is itself an alias.
func (s *Set) AliasTargetsThatAreAliases() []*entity.Title {
	var flagged []*entity.Title
	for _, t := range s.titles {
		if !t.IsAlias() {
			continue
		}
		if target, ok := s.byID[*t.AliasOfID]; ok && target.IsAlias() {
			flagged = append(flagged, t)
		}
	}

	return flagged
}

// PossibleAliases suggests titles sharing a word with the title, skipping
// ignored words, the title itself and its existing aliases. Active titles
// come first; otherwise frequency order is kept.
func (s *Set) PossibleAliases(id int64, ignoredTokens []string) ([]*entity.Title, error) {
	current, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	ignored := make(map[string]struct{}, len(ignoredTokens))
	for _, tok := range ignoredTokens {
		ignored[strings.ToLower(tok)] = struct{}{}
	}

	var tokens []string
	for _, tok := range strings.Fields(strings.ToLower(current.Name)) {
		if _, skip := ignored[tok]; !skip {
			tokens = append(tokens, tok)
		}
	}

	seen := make(map[int64]struct{})
	var possibles []*entity.Title
	for _, tok := range tokens {
		for _, t := range s.titles {
			if t.ID == current.ID || t.IsAliasOf(current.ID) {
				continue
			}
			if _, dup := seen[t.ID]; dup {
				continue
			}
			if strings.Contains(strings.ToLower(t.Name), tok) {
				seen[t.ID] = struct{}{}
				possibles = append(possibles, t)
			}
		}
	}

	sort.SliceStable(possibles, func(i, j int) bool {
		return possibles[i].Active && !possibles[j].Active
	})

	return possibles, nil
}

// Filter returns titles whose name matches pattern, case-insensitively.
func (s *Set) Filter(pattern string) ([]*entity.Title, error) {
	if pattern == "" {
		return s.titles, nil
	}

	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	var matched []*entity.Title
	for _, t := range s.titles {
		if re.MatchString(t.Name) {
			matched = append(matched, t)
		}
	}

	return matched, nil
}

// Counts summarises the set.
type Counts struct {
	Aliases    int `json:"aliases"`
	Active     int `json:"active"`
	Canonicals int `json:"canonicals"`
	Total      int `json:"total"`
}

// Counts returns alias, active and canonical totals.
func (s *Set) Counts() Counts {
	c := Counts{Total: len(s.titles)}
	for _, t := range s.titles {
		if t.IsAlias() {
			c.Aliases++
		}
		if t.Active {
			c.Active++
		}
		if t.Canonical {
			c.Canonicals++
		}
	}

	return c
}

type changeSet struct {
	order []*entity.Title
	seen  map[int64]struct{}
}

func newChangeSet() *changeSet {
	return &changeSet{seen: make(map[int64]struct{})}
}

func (c *changeSet) add(t *entity.Title) {
	if _, ok := c.seen[t.ID]; ok {
		return
	}
	c.seen[t.ID] = struct{}{}
	c.order = append(c.order, t)
}

func (c *changeSet) list() []*entity.Title {
	return c.order
}

func ptr(v int64) *int64 { return &v }
