package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mossline/gardenlog/internal/app"
	"github.com/mossline/gardenlog/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "gardenlog",
	Short: "Gardenlog - personal gardening tracker",
	Long: `Gardenlog tracks what you planted, estimates growth phases from
per-plant-type timing parameters, logs harvests, and aggregates totals
into simple reports.

Run 'gardenlog serve' to start the API, 'gardenlog seed' to load the
default catalogue, or 'gardenlog export'/'gardenlog import' to back up
and restore your data.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(tokenCmd)
}

func newApp() (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return app.New(cfg)
}
