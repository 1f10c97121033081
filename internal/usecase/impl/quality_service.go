// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"sync"
	"time"

	"curator/config"
	deliverycontext "curator/internal/delivery/context"
	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/hierarchy"
	"curator/internal/domain/quality"
	"curator/internal/domain/repository"
	"curator/internal/domain/service"
	"curator/internal/usecase"
	"curator/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const defaultPruneConcurrency = 8

// qualityService implements the QualityUsecase interface.
type qualityService struct {
	locationRepo repository.LocationRepository
	productRepo  repository.ProductRepository
	sink         service.TagUpdateSink
	options      quality.Options
	concurrency  int
	logger       *slog.Logger
	now          func() time.Time

	mu       sync.RWMutex
	snapshot *quality.Snapshot
}

// QualityServiceParams holds dependencies for QualityService, injected by Fx.
type QualityServiceParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	ProductRepo  repository.ProductRepository
	Sink         service.TagUpdateSink
	Config       *config.Config
	Logger       *slog.Logger
}

// NewQualityService is the constructor for qualityService.
func NewQualityService(params QualityServiceParams) usecase.QualityUsecase {
	options := quality.DefaultOptions()
	if q := params.Config.Quality; q != nil {
		if q.GeneralPurposeCategory != "" {
			options.GeneralPurposeCategory = q.GeneralPurposeCategory
		}
		if q.ContinentPrefix != "" {
			options.ContinentPrefix = q.ContinentPrefix
		}
		if q.ManyLocationThreshold > 0 {
			options.ManyLocationThreshold = q.ManyLocationThreshold
		}
	}

	concurrency := defaultPruneConcurrency
	if params.Config.Prune != nil && params.Config.Prune.Concurrency > 0 {
		concurrency = params.Config.Prune.Concurrency
	}

	return &qualityService{
		locationRepo: params.LocationRepo,
		productRepo:  params.ProductRepo,
		sink:         params.Sink,
		options:      options,
		concurrency:  concurrency,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *qualityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checks returns every data-quality check. It answers with the location checks
// even when products failed to load.
func (srv *qualityService) Checks(ctx context.Context) ([]entity.Check, error) {
	snap, err := srv.current(ctx)
	if err != nil {
		return nil, err
	}

	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return quality.Checks(snap, srv.options), nil
}

// ProductStats counts loaded products by status.
func (srv *qualityService) ProductStats(ctx context.Context) (*usecase.ProductStats, error) {
	snap, err := srv.currentWithProducts(ctx)
	if err != nil {
		return nil, err
	}

	srv.mu.RLock()
	defer srv.mu.RUnlock()

	stats := quality.CountStatuses(snap.Products)

	return &stats, nil
}

// RedundantProducts lists general-purpose products carrying a redundant tag.
func (srv *qualityService) RedundantProducts(ctx context.Context) ([]entity.Product, error) {
	snap, err := srv.current(ctx)
	if err != nil {
		return nil, err
	}
	if !snap.ProductsLoaded {
		return []entity.Product{}, nil
	}

	srv.mu.RLock()
	defer srv.mu.RUnlock()

	flagged := hierarchy.ProductsWithRedundantTagging(snap.Products, snap.Chains, srv.options.GeneralPurposeCategory)
	if flagged == nil {
		flagged = []entity.Product{}
	}

	return flagged, nil
}

// Ancestors resolves the ancestor chain of a location, nearest first.
func (srv *qualityService) Ancestors(ctx context.Context, mapboxID string) (*usecase.AncestorsOutput, error) {
	snap, err := srv.current(ctx)
	if err != nil {
		return nil, err
	}

	loc, ok := snap.FindLocation(mapboxID)
	if !ok || mapboxID == "" {
		return nil, domainerrors.ErrLocationNotFound.WithDetails("mapbox id " + mapboxID)
	}

	chain := snap.Chains.Chain(loc.MapboxID)
	ancestors := make([]entity.LocationTag, 0, len(chain))
	for _, id := range chain {
		tag := entity.LocationTag{MapboxID: id}
		if a, ok := snap.FindLocation(id); ok {
			tag.CanonicalName = a.CanonicalName
		}
		ancestors = append(ancestors, tag)
	}

	return &usecase.AncestorsOutput{
		MapboxID:      loc.MapboxID,
		CanonicalName: loc.CanonicalName,
		Ancestors:     ancestors,
	}, nil
}

// PruneProduct replaces the product's tags with the pruned set and submits it.
// The in-memory product keeps the pruned tags even when the submission fails.
func (srv *qualityService) PruneProduct(ctx context.Context, productID int64) (*usecase.PruneResult, error) {
	snap, err := srv.currentWithProducts(ctx)
	if err != nil {
		return nil, err
	}

	product, ok := snap.FindProduct(productID)
	if !ok {
		return nil, domainerrors.ErrProductNotFound.WithDetails("product id " + strconv.FormatInt(productID, 10))
	}

	result := srv.prune(ctx, snap, product)
	if result.Error != "" {
		return nil, domainerrors.ErrTagUpdateFailed.WithDetails(result.Error)
	}

	return result, nil
}

// PruneAll prunes every redundant product with bounded concurrency. Each
// submission stands alone: failures are collected, never retried. Until
// products have loaded there is nothing to prune.
func (srv *qualityService) PruneAll(ctx context.Context) (*usecase.PruneSummary, error) {
	snap, err := srv.current(ctx)
	if err != nil {
		return nil, err
	}
	if !snap.ProductsLoaded {
		return &usecase.PruneSummary{Results: []*usecase.PruneResult{}}, nil
	}

	srv.mu.RLock()
	candidates := hierarchy.ProductsWithRedundantTagging(snap.Products, snap.Chains, srv.options.GeneralPurposeCategory)
	srv.mu.RUnlock()

	srv.log(ctx).Info("Pruning redundant tags", slog.Int("candidates", len(candidates)), slog.Int("concurrency", srv.concurrency))

	results := make([]*usecase.PruneResult, len(candidates))

	var g errgroup.Group
	g.SetLimit(srv.concurrency)
	for i := range candidates {
		product, ok := snap.FindProduct(candidates[i].ID)
		if !ok {
			continue
		}
		g.Go(func() error {
			results[i] = srv.prune(ctx, snap, product)

			return nil
		})
	}
	_ = g.Wait()

	summary := &usecase.PruneSummary{
		Candidates: len(candidates),
		Results:    make([]*usecase.PruneResult, 0, len(results)),
	}
	for _, r := range results {
		if r == nil {
			continue
		}
		switch {
		case r.Unchanged:
			summary.Unchanged++
		case r.Submitted:
			summary.Submitted++
		default:
			summary.Failed++
		}
		summary.Results = append(summary.Results, r)
	}

	srv.log(ctx).Info("Pruning finished",
		slog.Int("submitted", summary.Submitted),
		slog.Int("unchanged", summary.Unchanged),
		slog.Int("failed", summary.Failed),
	)

	return summary, nil
}

func (srv *qualityService) prune(ctx context.Context, snap *quality.Snapshot, product *entity.Product) *usecase.PruneResult {
	srv.mu.Lock()
	before := product.LocationNames()
	product.Locations = hierarchy.PruneRedundantTags(product, snap.Chains)
	after := product.LocationNames()
	srv.mu.Unlock()

	result := &usecase.PruneResult{
		ProductID: product.ID,
		Title:     product.Title,
		Before:    before,
		After:     after,
	}

	if slices.Equal(before, after) {
		result.Unchanged = true

		return result
	}

	if err := srv.sink.SetLocations(ctx, product.ID, after); err != nil {
		srv.log(ctx).Error("Failed to submit pruned locations",
			slog.Int64("product_id", product.ID),
			slog.Any("error", err),
		)
		result.Error = err.Error()

		return result
	}

	result.Submitted = true
	srv.log(ctx).Debug("Submitted pruned locations",
		slog.Int64("product_id", product.ID),
		slog.Int("before", len(before)),
		slog.Int("after", len(after)),
	)

	return result
}

// Reload discards the snapshot and loads locations and products again.
func (srv *qualityService) Reload(ctx context.Context) (*usecase.SnapshotInfo, error) {
	snap, loadedAt, err := srv.load(ctx)
	if err != nil {
		return nil, err
	}

	srv.mu.Lock()
	srv.snapshot = snap
	srv.mu.Unlock()

	return &usecase.SnapshotInfo{
		Locations:      len(snap.Locations),
		Products:       len(snap.Products),
		ProductsLoaded: snap.ProductsLoaded,
		LoadedAt:       loadedAt,
	}, nil
}

// current returns the snapshot, loading it on first use.
func (srv *qualityService) current(ctx context.Context) (*quality.Snapshot, error) {
	srv.mu.RLock()
	snap := srv.snapshot
	srv.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()
	if srv.snapshot != nil {
		return srv.snapshot, nil
	}

	snap, _, err := srv.load(ctx)
	if err != nil {
		return nil, err
	}
	srv.snapshot = snap

	return snap, nil
}

func (srv *qualityService) currentWithProducts(ctx context.Context) (*quality.Snapshot, error) {
	snap, err := srv.current(ctx)
	if err != nil {
		return nil, err
	}
	if !snap.ProductsLoaded {
		return nil, domainerrors.ErrSnapshotNotReady
	}

	return snap, nil
}

// load fetches locations and products concurrently. A products failure still
// yields a snapshot, flagged as lacking products.
func (srv *qualityService) load(ctx context.Context) (*quality.Snapshot, time.Time, error) {
	start := srv.now()

	var (
		locations   []entity.Location
		products    []entity.Product
		productsErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		locations, err = srv.locationRepo.ListLocations(ctx)

		return errors.Wrap(err, "failed to list locations")
	})
	g.Go(func() error {
		products, productsErr = srv.productRepo.ListProducts(ctx)

		return nil
	})
	if err := g.Wait(); err != nil {
		srv.log(ctx).Error("Failed to load locations", slog.Any("error", err))

		return nil, time.Time{}, domainerrors.ErrSnapshotLoadFailed.WithDetails(err.Error())
	}

	if productsErr != nil {
		srv.log(ctx).Warn("Failed to load products, product checks are disabled", slog.Any("error", productsErr))
		products = nil
	}

	snap := quality.NewSnapshot(locations, products, productsErr == nil)
	if cycles := hierarchy.FindCycles(snap.Lookup); len(cycles) > 0 {
		srv.log(ctx).Warn("Location parent cycles detected", slog.Any("mapbox_ids", cycles))
	}

	loadedAt := srv.now()
	srv.log(ctx).Info("Snapshot loaded",
		slog.Int("locations", len(snap.Locations)),
		slog.Int("products", len(snap.Products)),
		slog.Bool("products_loaded", snap.ProductsLoaded),
		slog.String("took", util.FormatDuration(loadedAt.Sub(start))),
	)

	return snap, loadedAt, nil
}
