package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"account-recommendation/internal/database"
	"account-recommendation/internal/migration"
)

func newMigrateCommand(a *app) *cobra.Command {
	var (
		databaseURL string
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Add formula, calculation and accounts_used columns to analysis_result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			url := a.cfg.DB.DatabaseURL
			if cmd.Flags().Changed("database-url") {
				url = databaseURL
			}

			db, err := database.Open(cmd.Context(), url, a.logger)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					a.logger.Warn("failed to close database", zap.Error(err))
				}
			}()

			runner, err := migration.NewRunner(db, a.logger)
			if err != nil {
				return err
			}

			result, err := runner.Apply(cmd.Context(), migration.AnalysisResultSchemaExtension, dryRun)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			prefix := ""
			if result.DryRun {
				prefix = "[dry-run] "
			}
			fmt.Fprintf(out, "%s%s: added [%s], already present [%s]\n",
				prefix, result.Table, strings.Join(result.Added, ", "), strings.Join(result.Skipped, ", "))
			return nil
		},
	}

	cmd.Flags().StringVar(&databaseURL, "database-url", "", "database URL (default DATABASE_URL)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes and roll back")

	return cmd
}
