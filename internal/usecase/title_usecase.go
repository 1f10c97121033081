package usecase

import (
	"context"

	"curator/internal/domain/entity"
	"curator/internal/domain/titles"
)

// TitleAction is a single-title mutation of the alias graph.
type TitleAction string

const (
	TitleActionBreakAlias TitleAction = "break-alias"
	TitleActionRebase     TitleAction = "rebase"
	TitleActionCanonify   TitleAction = "canonify"
	TitleActionDecanonify TitleAction = "decanonify"
	TitleActionActivate   TitleAction = "activate"
	TitleActionDeactivate TitleAction = "deactivate"
)

// ListTitlesInput filters the title listing.
type ListTitlesInput struct {
	Pattern string `query:"q"`
}

// TitleChecksOutput carries the alias graph findings and counts.
type TitleChecksOutput struct {
	Counts                     titles.Counts   `json:"counts"`
	CanonicalAliases           []*entity.Title `json:"canonical_aliases"`
	AliasTargetsThatAreAliases []*entity.Title `json:"alias_targets_that_are_aliases"`
}

// TitleUsecase defines the job title alias graph use cases.
type TitleUsecase interface {
	// ListTitles returns titles in frequency order, optionally filtered by name.
	ListTitles(ctx context.Context, input *ListTitlesInput) ([]*entity.Title, error)

	// Checks returns alias graph inconsistencies.
	Checks(ctx context.Context) (*TitleChecksOutput, error)

	// PossibleAliases suggests titles that may be aliases of the given one.
	PossibleAliases(ctx context.Context, id int64) ([]*entity.Title, error)

	// MakeAlias points aliasID at canonicalID and persists every changed title.
	MakeAlias(ctx context.Context, aliasID, canonicalID int64) ([]*entity.Title, error)

	// Apply runs a single-title action and persists every changed title.
	Apply(ctx context.Context, id int64, action TitleAction) ([]*entity.Title, error)
}
