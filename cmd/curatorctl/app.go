package main

import (
	"context"
	"encoding/json"
	"io"

	"curator/config"
	"curator/internal/infra/auth"
	"curator/internal/infra/casestore"
	logs "curator/internal/infra/log"
	"curator/internal/infra/persistence"
	"curator/internal/infra/pubsub"
	"curator/internal/infra/search"
	"curator/internal/infra/sink"
	"curator/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// providers is the dependency graph shared by every command. Fx only builds
// what the requested target needs.
func providers() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.NewStderr,
			context.Background,
		),
		persistence.Module,
		pubsub.Module,
		fx.Provide(
			auth.NewJWTService,
			sink.New,
			casestore.New,
			search.NewClient,
			impl.NewQualityService,
			impl.NewTitleService,
			impl.NewRelevanceService,
		),
	)
}

// runWith builds the app, resolves target and runs fn before stopping the app.
func runWith[T any](cmd *cobra.Command, fn func(ctx context.Context, target T) error) error {
	var target T
	app := fx.New(
		fx.NopLogger,
		providers(),
		fx.Populate(&target),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}
	defer func() {
		// Stop gets its own deadline so a timed-out command still closes the store
		stopCtx, stopCancel := context.WithTimeout(context.Background(), fx.DefaultTimeout)
		defer stopCancel()
		_ = app.Stop(stopCtx)
	}()

	return fn(ctx, target)
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return errors.WithStack(encoder.Encode(v))
}
