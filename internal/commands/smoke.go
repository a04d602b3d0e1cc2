package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"account-recommendation/internal/client"
	"account-recommendation/internal/generator"
	"account-recommendation/internal/models"
)

func newSmokeCommand(a *app) *cobra.Command {
	var (
		baseURL     string
		accountName string
		fileType    string
		timeout     time.Duration
		retries     int
		samples     int
		seed        int64
	)

	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Send one recommendation request to a deployed server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Client
			if cmd.Flags().Changed("base-url") {
				cfg.BaseURL = baseURL
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Timeout = timeout
			}
			if cmd.Flags().Changed("retries") {
				cfg.MaxRetries = retries
			}

			var requests []*models.AccountRecommendationRequest
			if samples > 0 {
				gen := generator.NewRequestGenerator()
				if cmd.Flags().Changed("seed") {
					gen = generator.NewRequestGeneratorWithSeed(seed)
				}
				requests = gen.GenerateBatch(samples)
			} else {
				req := &models.AccountRecommendationRequest{
					AccountName: accountName,
					FileType:    models.FileType(fileType),
				}
				req.Normalize()
				if err := req.Validate(); err != nil {
					return err
				}
				requests = append(requests, req)
			}

			c := client.New(cfg, a.logger)
			failed := 0
			for _, req := range requests {
				if c.Smoke(cmd.Context(), req) {
					fmt.Fprintf(cmd.OutOrStdout(), "OK   %s [%s] %s\n", c.BaseURL(), req.FileType, req.AccountName)
				} else {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s [%s] %s\n", c.BaseURL(), req.FileType, req.AccountName)
				}
			}

			if failed > 0 {
				return fmt.Errorf("smoke check against %s: %d of %d requests failed: %w", c.BaseURL(), failed, len(requests), ErrCheckFailed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "server base URL (default REPLIT_URL or http://localhost:5001)")
	cmd.Flags().StringVar(&accountName, "account-name", client.SmokeAccountName, "account name to classify")
	cmd.Flags().StringVar(&fileType, "file-type", string(client.SmokeFileType), "statement type (bs, pl, cf)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "HTTP timeout (default CLIENT_TIMEOUT_SECONDS)")
	cmd.Flags().IntVar(&retries, "retries", 0, "retries on transport errors and 5xx (default CLIENT_MAX_RETRIES)")
	cmd.Flags().IntVar(&samples, "samples", 0, "send N generated requests across bs, pl and cf instead of one")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for generated requests")

	return cmd
}
