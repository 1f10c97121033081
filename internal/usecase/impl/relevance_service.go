package impl

import (
	"context"
	"log/slog"

	"curator/config"
	deliverycontext "curator/internal/delivery/context"
	"curator/internal/domain/relevance"
	"curator/internal/domain/service"
	"curator/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	defaultRelevanceConcurrency = 4
	defaultSearchLimit          = 50
)

// relevanceService implements the RelevanceUsecase interface.
type relevanceService struct {
	cases             service.CaseStore
	searcher          service.ProductSearcher
	limit             int
	concurrency       int
	genericIndustryID int64
	globalLocationID  int64
	logger            *slog.Logger
}

// RelevanceServiceParams holds dependencies for RelevanceService, injected by Fx.
type RelevanceServiceParams struct {
	fx.In

	Cases    service.CaseStore
	Searcher service.ProductSearcher
	Config   *config.Config
	Logger   *slog.Logger
}

// NewRelevanceService is the constructor for relevanceService.
func NewRelevanceService(params RelevanceServiceParams) usecase.RelevanceUsecase {
	srv := &relevanceService{
		cases:             params.Cases,
		searcher:          params.Searcher,
		limit:             defaultSearchLimit,
		concurrency:       defaultRelevanceConcurrency,
		genericIndustryID: relevance.DefaultGenericIndustryID,
		globalLocationID:  relevance.DefaultGlobalLocationID,
		logger:            params.Logger,
	}

	if cfg := params.Config.Relevance; cfg != nil {
		if cfg.Limit > 0 {
			srv.limit = cfg.Limit
		}
		if cfg.Concurrency > 0 {
			srv.concurrency = cfg.Concurrency
		}
		if cfg.GenericIndustryID > 0 {
			srv.genericIndustryID = cfg.GenericIndustryID
		}
		if cfg.GlobalLocationID > 0 {
			srv.globalLocationID = cfg.GlobalLocationID
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *relevanceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Run searches every test case and checks the rule-priority ordering of the results.
// A failed search is reported on its case and does not stop the others.
func (srv *relevanceService) Run(ctx context.Context) (*usecase.RelevanceReport, error) {
	cases, err := srv.cases.LoadCases(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load search cases")
	}

	srv.log(ctx).Info("Running relevance check", slog.Int("cases", len(cases)))

	reports := make([]*usecase.CaseReport, len(cases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(srv.concurrency)
	for i := range cases {
		g.Go(func() error {
			report := &usecase.CaseReport{Query: cases[i]}
			reports[i] = report

			results, err := srv.searcher.Search(gctx, cases[i], srv.limit)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				srv.log(ctx).Warn("Search failed",
					slog.String("job_function", cases[i].JobFunction.Name),
					slog.String("industry", cases[i].Industry.Name),
					slog.String("location", cases[i].Location.Name),
					slog.Any("error", err),
				)
				report.Error = err.Error()

				return nil
			}

			rules := relevance.DefaultRules(cases[i], srv.genericIndustryID, srv.globalLocationID)
			report.Results = results
			report.Outcome = relevance.Evaluate(results, rules)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "relevance run cancelled")
	}

	summary := &usecase.RelevanceReport{Cases: len(cases), Report: reports}
	for _, r := range reports {
		switch {
		case r.Error != "":
			summary.Errors++
		case r.Outcome.Pass:
			summary.Passed++
		default:
			summary.Failed++
		}
	}

	srv.log(ctx).Info("Relevance check finished",
		slog.Int("passed", summary.Passed),
		slog.Int("failed", summary.Failed),
		slog.Int("errors", summary.Errors),
	)

	return summary, nil
}
