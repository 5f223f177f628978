// Command providerctl probes and exercises the provider adapters from an
// operator shell, using the same configuration as the API.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"marketplace-integrations/config"
	"marketplace-integrations/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "providerctl",
		Short:         "Inspect shipping and payment provider integrations",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config file (default ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log adapter activity to stderr")

	rootCmd.AddCommand(healthCmd(opts))
	rootCmd.AddCommand(quoteCmd(opts))
	rootCmd.AddCommand(tokenCmd(opts))
	return rootCmd
}

func (o *rootOptions) load() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if !o.verbose {
		return cfg, zerolog.Nop(), nil
	}
	return cfg, logger.NewWithWriter(cfg.Log.Level, os.Stderr), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
