package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"account-recommendation/internal/provider"
)

func newCheckProviderCommand(a *app) *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "check-provider",
		Short: "Check that AI provider credentials can build a client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Provider
			if cmd.Flags().Changed("backend") {
				cfg.Backend = backend
			}

			results := provider.NewChecker(cfg, a.logger).Run(cmd.Context())

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, r := range results {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", status(r), r.Name, r.Message)
			}
			// Результат проверки только сообщается, код возврата всегда 0
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&backend, "backend", "", "provider backend: gemini-api or vertex-ai (default AI_PROVIDER_BACKEND)")

	return cmd
}

func status(r provider.CheckResult) string {
	switch {
	case r.Passed:
		return "PASS"
	case r.Skipped:
		return "SKIP"
	default:
		return "FAIL"
	}
}
