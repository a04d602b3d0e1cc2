package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"account-recommendation/internal/bootstrap/stub"
)

func newServeCommand(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the mock recommendation server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return stub.Run(ctx, a.cfg, a.logger)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "listen port (default PORT or 5001)")

	return cmd
}
