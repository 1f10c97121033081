package postgres

import (
	"context"
	"log/slog"

	"curator/config"
	"curator/internal/domain/lifecycle"
	"curator/internal/errors"
	"curator/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the curated tables through the shared postgres client. Tables are
// migrated on start when store.autoMigrate is set.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Store != nil && params.Config.Store.AutoMigrate {
				if err := Migrate(db.WithContext(ctx)); err != nil {
					return err
				}
			}

			logStoreSummary(ctx, db, params.Logger)

			return nil
		},
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Postgres store")

			return errors.Wrap(sqlDB.Close(), "failed to close PostgreSQL")
		},
	})

	return db, nil
}

// Migrate creates or updates the curated tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.LocationModel{},
		&model.ProductModel{},
		&model.ProductLocationModel{},
		&model.TitleModel{},
	)

	return errors.Wrap(err, "failed to migrate tables")
}

// logStoreSummary reports how many curated rows the store holds. Counting is
// best effort: a failure is logged and does not block startup.
func logStoreSummary(ctx context.Context, db *gorm.DB, logger *slog.Logger) {
	tables := []struct {
		name  string
		model any
	}{
		{name: "locations", model: &model.LocationModel{}},
		{name: "products", model: &model.ProductModel{}},
		{name: "job_titles", model: &model.TitleModel{}},
	}

	attrs := make([]slog.Attr, 0, len(tables))
	for _, table := range tables {
		var count int64
		if err := db.WithContext(ctx).Model(table.model).Count(&count).Error; err != nil {
			logger.Warn("Failed to count rows", slog.String("table", table.name), slog.Any("error", err))

			return
		}
		attrs = append(attrs, slog.Int64(table.name, count))
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Postgres store ready", attrs...)
}
