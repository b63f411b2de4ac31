package main

import (
	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/spf13/cobra"

	"github.com/altin/fault-finder/internal/config"
	"github.com/altin/fault-finder/internal/dataset"
	"github.com/altin/fault-finder/internal/report"
)

var brandsCmd = &cobra.Command{
	Use:   "brands",
	Short: "List the brands in the dataset with their fault code counts",
	Args:  cobra.NoArgs,
	RunE:  runBrands,
}

func runBrands(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{DataPath: rootFlags.data, LogFile: rootFlags.logFile}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	records, err := loadRecords(cfg, logger)
	if err != nil {
		return err
	}

	t := term.FromEnv()
	width, _, err := t.Size()
	if err != nil {
		width = 80
	}
	return report.Brands(cmd.OutOrStdout(), dataset.Brands(records), t.IsTerminalOutput(), width)
}
