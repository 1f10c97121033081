package impl

import (
	"context"
	"testing"

	"curator/config"
	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	mockService "curator/internal/mocks/service"
	"curator/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type relevanceFixtures struct {
	cases    *mockService.MockCaseStore
	searcher *mockService.MockProductSearcher
	service  usecase.RelevanceUsecase
}

func createTestRelevanceService(t *testing.T) *relevanceFixtures {
	t.Helper()

	fx := &relevanceFixtures{
		cases:    mockService.NewMockCaseStore(t),
		searcher: mockService.NewMockProductSearcher(t),
	}
	fx.service = NewRelevanceService(RelevanceServiceParams{
		Cases:    fx.cases,
		Searcher: fx.searcher,
		Config: &config.Config{Relevance: &config.RelevanceConfig{
			Limit:             20,
			Concurrency:       2,
			GenericIndustryID: 29,
			GlobalLocationID:  2425,
		}},
		Logger: newDiscardLogger(),
	})

	return fx
}

var (
	engineeringInNL = entity.SearchCase{
		JobFunction: entity.Facet{ID: 10, Name: "Engineering"},
		Industry:    entity.Facet{ID: 20, Name: "Software"},
		Location:    entity.Facet{ID: 30, Name: "Netherlands"},
	}
	salesInDE = entity.SearchCase{
		JobFunction: entity.Facet{ID: 11, Name: "Sales"},
		Industry:    entity.Facet{ID: 21, Name: "Retail"},
		Location:    entity.Facet{ID: 31, Name: "Germany"},
	}
	marketingInBE = entity.SearchCase{
		JobFunction: entity.Facet{ID: 12, Name: "Marketing"},
		Industry:    entity.Facet{ID: 22, Name: "Media"},
		Location:    entity.Facet{ID: 32, Name: "Belgium"},
	}
)

func facets(ids ...int64) []entity.Facet {
	list := make([]entity.Facet, 0, len(ids))
	for _, id := range ids {
		list = append(list, entity.Facet{ID: id})
	}

	return list
}

func TestRelevanceService_Run(t *testing.T) {
	fx := createTestRelevanceService(t)
	ctx := context.Background()

	fx.cases.EXPECT().LoadCases(ctx).Return([]entity.SearchCase{engineeringInNL, salesInDE, marketingInBE}, nil)

	// Ordered: full match, then generic board in location.
	fx.searcher.EXPECT().Search(mock.Anything, engineeringInNL, 20).Return([]entity.SearchResult{
		{ProductID: 1, JobFunctions: facets(10), Industries: facets(20), Locations: facets(30)},
		{ProductID: 2, Industries: facets(29), Locations: facets(30)},
	}, nil)
	// A global generic board ranks above a function match in location.
	fx.searcher.EXPECT().Search(mock.Anything, salesInDE, 20).Return([]entity.SearchResult{
		{ProductID: 3, Industries: facets(29), Locations: facets(2425)},
		{ProductID: 4, JobFunctions: facets(11), Locations: facets(31)},
	}, nil)
	fx.searcher.EXPECT().Search(mock.Anything, marketingInBE, 20).
		Return(nil, domainerrors.ErrSearchFailed.WithDetails("status 500"))

	report, err := fx.service.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Cases)
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Errors)

	require.Len(t, report.Report, 3)
	assert.True(t, report.Report[0].Outcome.Pass)
	assert.Equal(t, []int{0, 2}, report.Report[0].Outcome.Ranks)

	failed := report.Report[1].Outcome
	assert.False(t, failed.Pass)
	require.Len(t, failed.Outcomes[1].LateMatches, 1)
	assert.Equal(t, int64(4), failed.Outcomes[1].LateMatches[0].ProductID)

	assert.NotEmpty(t, report.Report[2].Error)
}

func TestRelevanceService_Run_CasesUnavailable(t *testing.T) {
	fx := createTestRelevanceService(t)
	ctx := context.Background()

	fx.cases.EXPECT().LoadCases(ctx).Return(nil, domainerrors.ErrSearchCasesUnavailable)

	report, err := fx.service.Run(ctx)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, domainerrors.ErrSearchCasesUnavailable)
}

func TestRelevanceService_Run_Cancelled(t *testing.T) {
	fx := createTestRelevanceService(t)
	ctx, cancel := context.WithCancel(context.Background())

	fx.cases.EXPECT().LoadCases(ctx).Return([]entity.SearchCase{engineeringInNL}, nil)
	fx.searcher.EXPECT().Search(mock.Anything, engineeringInNL, 20).
		RunAndReturn(func(context.Context, entity.SearchCase, int) ([]entity.SearchResult, error) {
			cancel()

			return nil, context.Canceled
		})

	_, err := fx.service.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
