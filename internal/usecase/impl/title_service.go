package impl

import (
	"context"
	"log/slog"

	deliverycontext "curator/internal/delivery/context"
	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/repository"
	"curator/internal/domain/titles"
	"curator/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// titleService implements the TitleUsecase interface.
type titleService struct {
	txManager repository.TransactionManager
	titleRepo repository.TitleRepository
	logger    *slog.Logger
}

// TitleServiceParams holds dependencies for TitleService, injected by Fx.
type TitleServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TitleRepo repository.TitleRepository
	Logger    *slog.Logger
}

// NewTitleService is the constructor for titleService.
func NewTitleService(params TitleServiceParams) usecase.TitleUsecase {
	return &titleService{
		txManager: params.TxManager,
		titleRepo: params.TitleRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *titleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *titleService) load(ctx context.Context, repo repository.TitleRepository) (*titles.Set, error) {
	list, err := repo.ListTitles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list titles")
	}

	return titles.NewSet(list), nil
}

// ListTitles returns titles in frequency order, optionally filtered by name.
func (srv *titleService) ListTitles(ctx context.Context, input *usecase.ListTitlesInput) ([]*entity.Title, error) {
	set, err := srv.load(ctx, srv.titleRepo)
	if err != nil {
		return nil, err
	}

	pattern := ""
	if input != nil {
		pattern = input.Pattern
	}

	matched, err := set.Filter(pattern)
	if err != nil {
		return nil, err
	}
	if matched == nil {
		matched = []*entity.Title{}
	}

	return matched, nil
}

// Checks returns alias graph inconsistencies and totals.
func (srv *titleService) Checks(ctx context.Context) (*usecase.TitleChecksOutput, error) {
	set, err := srv.load(ctx, srv.titleRepo)
	if err != nil {
		return nil, err
	}

	return &usecase.TitleChecksOutput{
		Counts:                     set.Counts(),
		CanonicalAliases:           orEmpty(set.CanonicalAliases()),
		AliasTargetsThatAreAliases: orEmpty(set.AliasTargetsThatAreAliases()),
	}, nil
}

// PossibleAliases suggests titles sharing a significant word with the title.
func (srv *titleService) PossibleAliases(ctx context.Context, id int64) ([]*entity.Title, error) {
	set, err := srv.load(ctx, srv.titleRepo)
	if err != nil {
		return nil, err
	}

	possibles, err := set.PossibleAliases(id, titles.DefaultIgnoredTokens)
	if err != nil {
		return nil, err
	}

	return orEmpty(possibles), nil
}

// MakeAlias points aliasID at canonicalID and persists every changed title.
func (srv *titleService) MakeAlias(ctx context.Context, aliasID, canonicalID int64) ([]*entity.Title, error) {
	srv.log(ctx).Info("Making alias", slog.Int64("alias_id", aliasID), slog.Int64("canonical_id", canonicalID))

	return srv.mutate(ctx, func(set *titles.Set) ([]*entity.Title, error) {
		return set.MakeAlias(aliasID, canonicalID)
	})
}

// Apply runs a single-title action and persists every changed title.
func (srv *titleService) Apply(ctx context.Context, id int64, action usecase.TitleAction) ([]*entity.Title, error) {
	var op func(set *titles.Set) ([]*entity.Title, error)
	switch action {
	case usecase.TitleActionBreakAlias:
		op = func(set *titles.Set) ([]*entity.Title, error) { return set.BreakAlias(id) }
	case usecase.TitleActionRebase:
		op = func(set *titles.Set) ([]*entity.Title, error) { return set.Rebase(id) }
	case usecase.TitleActionCanonify:
		op = func(set *titles.Set) ([]*entity.Title, error) { return set.Canonify(id) }
	case usecase.TitleActionDecanonify:
		op = func(set *titles.Set) ([]*entity.Title, error) { return set.Decanonify(id) }
	case usecase.TitleActionActivate:
		op = func(set *titles.Set) ([]*entity.Title, error) { return set.Activate(id) }
	case usecase.TitleActionDeactivate:
		op = func(set *titles.Set) ([]*entity.Title, error) { return set.Deactivate(id) }
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown title action: " + string(action))
	}

	srv.log(ctx).Info("Applying title action", slog.Int64("title_id", id), slog.String("action", string(action)))

	return srv.mutate(ctx, op)
}

// mutate loads the titles, applies op and writes back what changed, all in one transaction.
func (srv *titleService) mutate(ctx context.Context, op func(set *titles.Set) ([]*entity.Title, error)) ([]*entity.Title, error) {
	var changed []*entity.Title
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewTitleRepository()

		set, err := srv.load(ctx, repo)
		if err != nil {
			return err
		}

		changed, err = op(set)
		if err != nil {
			return err
		}

		for _, t := range changed {
			if err := repo.UpdateTitle(ctx, t); err != nil {
				return errors.Wrapf(err, "failed to update title %d", t.ID)
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update titles", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Titles updated", slog.Int("changed", len(changed)))

	return orEmpty(changed), nil
}

func orEmpty(list []*entity.Title) []*entity.Title {
	if list == nil {
		return []*entity.Title{}
	}

	return list
}
