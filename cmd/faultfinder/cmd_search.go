package main

import (
	"io"
	"strings"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/spf13/cobra"

	"github.com/altin/fault-finder/internal/config"
	"github.com/altin/fault-finder/internal/model"
	"github.com/altin/fault-finder/internal/report"
	"github.com/altin/fault-finder/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Print the fault records matching a query",
	Example: "  faultfinder search E110\n" +
		"  faultfinder search greenstar --data ./faults.yaml",
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
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

	query := strings.Join(args, " ")
	logger.Debug("search", "query", query)

	t := term.FromEnv()
	width, _, err := t.Size()
	if err != nil {
		width = 80
	}
	return printSearch(cmd.OutOrStdout(), query, records, t.IsTerminalOutput(), width)
}

// printSearch writes the results for query. A blank query prints nothing,
// matching the interactive view.
func printSearch(w io.Writer, query string, records []model.FaultRecord, isTTY bool, width int) error {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	return report.Results(w, search.Search(query, records), isTTY, width)
}
