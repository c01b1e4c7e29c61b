package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/smartcart/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "smartcart: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:           "smartcart",
		Short:         "Self-checkout smart cart in the terminal",
		Long:          "smartcart simulates a grocery smart cart: scan catalog items, weigh produce and watch the running subtotal and savings.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := root.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/smartcart/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/smartcart/prefs.toml)")
	flags.BoolVar(&opts.NoSound, "no-sound", false, "disable add and error cues")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed for random picks and scale readings (0 uses the clock)")
	flags.BoolVarP(&opts.Debug, "verbose", "v", false, "debug logging")

	root.AddCommand(newCatalogCmd())
	return root
}

func newCatalogCmd() *cobra.Command {
	var opts app.ListOptions

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List catalog items and their barcodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.PrintCatalog(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.Produce, "produce", false, "list produce sold by weight")
	cmd.Flags().StringVarP(&opts.Query, "search", "s", "", "filter by name or barcode")
	return cmd
}
