package usecase

import (
	"context"

	"curator/internal/domain/entity"
	"curator/internal/domain/relevance"
)

// CaseReport is the evaluation of one search test case.
type CaseReport struct {
	Query   entity.SearchCase     `json:"query"`
	Results []entity.SearchResult `json:"results"`
	Outcome relevance.CaseOutcome `json:"outcome"`
	Error   string                `json:"error,omitempty"`
}

// RelevanceReport aggregates a relevance run.
type RelevanceReport struct {
	Cases  int           `json:"cases"`
	Passed int           `json:"passed"`
	Failed int           `json:"failed"`
	Errors int           `json:"errors"`
	Report []*CaseReport `json:"report"`
}

// RelevanceUsecase defines the search relevance check use cases.
type RelevanceUsecase interface {
	// Run loads the test cases, queries search for each and evaluates the ordering.
	Run(ctx context.Context) (*RelevanceReport, error)
}
