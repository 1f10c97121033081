package service

import (
	"context"

	"curator/internal/domain/entity"
)

// CaseStore loads the search relevance test cases.
type CaseStore interface {
	LoadCases(ctx context.Context) ([]entity.SearchCase, error)
}

// ProductSearcher runs a product search the way the job-board frontend does.
type ProductSearcher interface {
	Search(ctx context.Context, query entity.SearchCase, limit int) ([]entity.SearchResult, error)
}
