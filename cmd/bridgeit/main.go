// Package main provides the entry point for the bridgeit CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"

	globalConfig string
	globalCSV    string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "bridgeit",
		Short:   "Directory and matching tool over a published spreadsheet export",
		Version: version,
	}

	rootCmd.PersistentFlags().StringVarP(&globalConfig, "config", "c", "", "Config file (default bridgeit.yaml)")
	rootCmd.PersistentFlags().StringVar(&globalCSV, "csv", "", "CSV URL (overrides configured source)")

	rootCmd.AddCommand(
		newListCmd(),
		newShowCmd(),
		newMatchCmd(),
		newFacetsCmd(),
		newServeCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
