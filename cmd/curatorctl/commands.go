package main

import (
	"context"
	"strconv"

	"curator/internal/domain/service"
	"curator/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	pruneProductID int64
	tokenSubject   string
	tokenRoles     []string
)

// checksCmd prints every location hierarchy check
var checksCmd = &cobra.Command{
	Use:   "checks",
	Short: "Run the location hierarchy data-quality checks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWith(cmd, func(ctx context.Context, uc usecase.QualityUsecase) error {
			checks, err := uc.Checks(ctx)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), checks)
		})
	},
}

// statsCmd prints product counts by status
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count products by status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWith(cmd, func(ctx context.Context, uc usecase.QualityUsecase) error {
			stats, err := uc.ProductStats(ctx)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), stats)
		})
	},
}

// ancestorsCmd resolves the ancestor chain of one location
var ancestorsCmd = &cobra.Command{
	Use:   "ancestors <mapbox-id>",
	Short: "Resolve the ancestors of a location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWith(cmd, func(ctx context.Context, uc usecase.QualityUsecase) error {
			out, err := uc.Ancestors(ctx, args[0])
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), out)
		})
	},
}

// pruneCmd removes redundant location tags
var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Submit tag-sets without redundant locations",
	Long: `Prune removes every location tag already implied by a more specific tag
of the same product and submits the remaining tag-set.

Without --product every general-purpose product with redundant tags is pruned.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWith(cmd, func(ctx context.Context, uc usecase.QualityUsecase) error {
			if pruneProductID > 0 {
				result, err := uc.PruneProduct(ctx, pruneProductID)
				if err != nil {
					return err
				}

				return printJSON(cmd.OutOrStdout(), result)
			}

			summary, err := uc.PruneAll(ctx)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), summary)
		})
	},
}

// titlesCmd is the parent command for the job title alias graph
var titlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "Inspect and edit job title aliases",
}

var titlesListCmd = &cobra.Command{
	Use:   "list [pattern]",
	Short: "List titles, optionally filtered by a case-insensitive pattern",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := &usecase.ListTitlesInput{}
		if len(args) == 1 {
			input.Pattern = args[0]
		}

		return runWith(cmd, func(ctx context.Context, uc usecase.TitleUsecase) error {
			list, err := uc.ListTitles(ctx, input)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), list)
		})
	},
}

var titlesChecksCmd = &cobra.Command{
	Use:   "checks",
	Short: "Report canonical titles that are aliases and aliases of aliases",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWith(cmd, func(ctx context.Context, uc usecase.TitleUsecase) error {
			out, err := uc.Checks(ctx)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), out)
		})
	},
}

var titlesAliasCmd = &cobra.Command{
	Use:   "alias <alias-id> <canonical-id>",
	Short: "Make a title an alias of a canonical title",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		aliasID, err := parseID(args[0])
		if err != nil {
			return err
		}
		canonicalID, err := parseID(args[1])
		if err != nil {
			return err
		}

		return runWith(cmd, func(ctx context.Context, uc usecase.TitleUsecase) error {
			changed, err := uc.MakeAlias(ctx, aliasID, canonicalID)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), changed)
		})
	},
}

var titlesApplyCmd = &cobra.Command{
	Use:   "apply <action> <title-id>",
	Short: "Run a single-title action",
	Long: `Apply runs one action on a title and persists every title it changed.

Actions: break-alias, rebase, canonify, decanonify, activate, deactivate.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[1])
		if err != nil {
			return err
		}

		return runWith(cmd, func(ctx context.Context, uc usecase.TitleUsecase) error {
			changed, err := uc.Apply(ctx, id, usecase.TitleAction(args[0]))
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), changed)
		})
	},
}

// relevanceCmd runs the search relevance check
var relevanceCmd = &cobra.Command{
	Use:   "relevance",
	Short: "Check that search ranks specific products above generic ones",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWith(cmd, func(ctx context.Context, uc usecase.RelevanceUsecase) error {
			report, err := uc.Run(ctx)
			if err != nil {
				return err
			}

			if err := printJSON(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if report.Failed > 0 || report.Errors > 0 {
				return errors.Errorf("%d of %d cases failed, %d errored", report.Failed, report.Cases, report.Errors)
			}

			return nil
		})
	},
}

// tokenCmd issues an API access token
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an access token for the curator API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWith(cmd, func(_ context.Context, tokens service.TokenService) error {
			token, err := tokens.GenerateToken(tokenSubject, tokenRoles)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write([]byte(token + "\n"))

			return errors.WithStack(err)
		})
	},
}

func init() {
	pruneCmd.Flags().Int64Var(&pruneProductID, "product", 0, "Prune a single product by id")

	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "Operator the token is issued to")
	tokenCmd.Flags().StringSliceVar(&tokenRoles, "role", []string{service.RoleCurator}, "Roles granted by the token")
	_ = tokenCmd.MarkFlagRequired("subject")
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("invalid id: %q", arg)
	}

	return id, nil
}
