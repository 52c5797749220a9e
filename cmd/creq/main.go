package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/appliedlogix/component-requests/internal/cli"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "creq",
		Short: "creq - track component library entry requests",
		Long: `creq tracks requests for electronic component library entries
(symbols, footprints, full parts) submitted by engineers and fulfilled
by librarians, backed by a MongoDB collection.`,
	}

	rootCmd.PersistentFlags().StringVar(&cli.ConfigPath, "config", "", "Path to YAML configuration file")

	rootCmd.AddCommand(cli.CreateCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.SetStatusCmd())
	rootCmd.AddCommand(cli.DeleteCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
