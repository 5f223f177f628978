package main

import (
	"fmt"
	"strings"

	"marketplace-integrations/internal/adapter/storage/objectstore"
	"marketplace-integrations/internal/app"
	"marketplace-integrations/internal/core/domain"
	"marketplace-integrations/internal/core/ports"
	"marketplace-integrations/internal/service"

	"github.com/spf13/cobra"
)

func quoteCmd(opts *rootOptions) *cobra.Command {
	var (
		from, to              string
		weight                float64
		length, width, height float64
	)
	cmd := &cobra.Command{
		Use:     "quote",
		Short:   "Rate-shop one package across all carriers",
		Example: "  providerctl quote --from DE:10115 --to US:10001 --weight 1.5 --dims 20x15x10",
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, err := parseAddress(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			destination, err := parseAddress(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}

			cfg, log, err := opts.load()
			if err != nil {
				return err
			}

			providers := app.NewProviders(cfg, objectstore.NewMemoryStore(cfg.App.PublicURL), log)
			result, err := service.NewShippingService(providers.Quoters(), log).QuoteRates(cmd.Context(), ports.QuoteRequest{
				From:     origin,
				To:       destination,
				Packages: []domain.Package{{Weight: weight, Length: length, Width: width, Height: height}},
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "origin as COUNTRY:POSTAL, e.g. DE:10115")
	cmd.Flags().StringVar(&to, "to", "", "destination as COUNTRY:POSTAL")
	cmd.Flags().Float64Var(&weight, "weight", 1, "package weight in kg")
	cmd.Flags().Float64Var(&length, "length", 20, "package length in cm")
	cmd.Flags().Float64Var(&width, "width", 15, "package width in cm")
	cmd.Flags().Float64Var(&height, "height", 10, "package height in cm")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// parseAddress reads COUNTRY:POSTAL.
func parseAddress(s string) (domain.Address, error) {
	country, postal, ok := strings.Cut(s, ":")
	if !ok || country == "" || postal == "" {
		return domain.Address{}, fmt.Errorf("want COUNTRY:POSTAL, got %q", s)
	}
	return domain.Address{CountryCode: strings.ToUpper(country), PostalCode: postal}, nil
}
