package main

import (
	"fmt"

	"marketplace-integrations/internal/adapter/storage/objectstore"
	"marketplace-integrations/internal/app"
	"marketplace-integrations/internal/core/domain"
	"marketplace-integrations/internal/service"

	"github.com/spf13/cobra"
)

func healthCmd(opts *rootOptions) *cobra.Command {
	var failOnError bool
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Probe every provider and print the health snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}

			providers := app.NewProviders(cfg, objectstore.NewMemoryStore(cfg.App.PublicURL), log)
			snapshot := service.NewHealthProber(providers.Probes(), cfg.Providers.Timeout, log).Probe(cmd.Context())
			if err := printJSON(cmd.OutOrStdout(), snapshot); err != nil {
				return err
			}

			if failOnError {
				for name, h := range snapshot {
					if h.Status == domain.HealthError {
						return fmt.Errorf("provider %s is failing: %s", name, h.Error)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&failOnError, "fail-on-error", false, "exit non-zero when a configured provider fails its probe")
	return cmd
}
