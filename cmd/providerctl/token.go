package main

import (
	"errors"
	"time"

	"marketplace-integrations/internal/service"

	"github.com/spf13/cobra"
)

type tokenOutput struct {
	Token     string    `json:"token"`
	Subject   string    `json:"subject"`
	ExpiresAt time.Time `json:"expires_at"`
}

func tokenCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "token [subject]",
		Short: "Mint an admin token for the payout and webhook admin routes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.load()
			if err != nil {
				return err
			}
			if cfg.JWT.Secret == "" {
				return errors.New("jwt.secret is not configured")
			}

			token, expiresAt, err := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer).Generate(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), tokenOutput{Token: token, Subject: args[0], ExpiresAt: expiresAt})
		},
	}
}
