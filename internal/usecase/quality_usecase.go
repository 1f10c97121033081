// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"curator/internal/domain/entity"
	"curator/internal/domain/quality"
)

// ProductStats counts products by status.
type ProductStats = quality.Stats

// AncestorsOutput is the resolved ancestor chain of a location, nearest first.
type AncestorsOutput struct {
	MapboxID      string               `json:"mapbox_id"`
	CanonicalName string               `json:"canonical_name"`
	Ancestors     []entity.LocationTag `json:"ancestors"`
}

// PruneResult describes one replacement tag-set. Unchanged results were
// already minimal and are never submitted.
type PruneResult struct {
	ProductID int64    `json:"product_id"`
	Title     string   `json:"title"`
	Before    []string `json:"before"`
	After     []string `json:"after"`
	Submitted bool     `json:"submitted"`
	Unchanged bool     `json:"unchanged,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// PruneSummary aggregates a prune-all run.
type PruneSummary struct {
	Candidates int            `json:"candidates"`
	Submitted  int            `json:"submitted"`
	Unchanged  int            `json:"unchanged"`
	Failed     int            `json:"failed"`
	Results    []*PruneResult `json:"results"`
}

// SnapshotInfo reports what the last load produced.
type SnapshotInfo struct {
	Locations      int       `json:"locations"`
	Products       int       `json:"products"`
	ProductsLoaded bool      `json:"products_loaded"`
	LoadedAt       time.Time `json:"loaded_at"`
}

// QualityUsecase defines the location hierarchy data-quality use cases.
type QualityUsecase interface {
	// Checks returns every data-quality check, most severe first.
	Checks(ctx context.Context) ([]entity.Check, error)

	// ProductStats counts loaded products by status.
	ProductStats(ctx context.Context) (*ProductStats, error)

	// RedundantProducts lists general-purpose products carrying a redundant tag.
	RedundantProducts(ctx context.Context) ([]entity.Product, error)

	// Ancestors resolves the ancestor chain of a location.
	Ancestors(ctx context.Context, mapboxID string) (*AncestorsOutput, error)

	// PruneProduct submits the product's tag-set without redundant tags.
	PruneProduct(ctx context.Context, productID int64) (*PruneResult, error)

	// PruneAll prunes every product listed by RedundantProducts.
	PruneAll(ctx context.Context) (*PruneSummary, error)

	// Reload discards the snapshot and loads locations and products again.
	Reload(ctx context.Context) (*SnapshotInfo, error)
}
