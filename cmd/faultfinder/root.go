package main

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/altin/fault-finder/internal/config"
	"github.com/altin/fault-finder/internal/dataset"
	"github.com/altin/fault-finder/internal/model"
	"github.com/altin/fault-finder/internal/tui"
	"github.com/altin/fault-finder/internal/ui"
)

var version = "dev"

func init() {
	if version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

var rootFlags struct {
	data    string
	theme   string
	logFile string
	query   string
}

var rootCmd = &cobra.Command{
	Use:   "faultfinder",
	Short: "Look up boiler fault codes by code, brand or model",
	Long: "faultfinder opens an interactive search over a boiler fault code dataset.\n" +
		"Every change to the query re-runs a case-insensitive substring match\n" +
		"against fault codes, brands and models.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&rootFlags.data, "data", "", "Fault dataset YAML file (default: bundled dataset)")
	f.StringVar(&rootFlags.logFile, "log-file", "", "Write debug logs to this file")

	rootCmd.Flags().StringVar(&rootFlags.theme, "theme", config.DefaultTheme(), "Colour theme: light or dark (env "+config.ThemeEnv+")")
	rootCmd.Flags().StringVarP(&rootFlags.query, "query", "q", "", "Initial search query")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(brandsCmd)
	rootCmd.Version = version
}

func loadConfig() (config.Config, error) {
	theme, err := ui.ParseTheme(rootFlags.theme)
	if err != nil {
		return config.Config{}, err
	}
	cfg := config.Config{
		DataPath: rootFlags.data,
		Theme:    theme,
		LogFile:  rootFlags.logFile,
		Query:    rootFlags.query,
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger routes slog output to the log file, since the terminal belongs
// to the UI. Without a log file everything is discarded.
func newLogger(path string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile(path, "faultfinder")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), f, nil
}

func loadRecords(cfg config.Config, logger *slog.Logger) ([]model.FaultRecord, error) {
	var (
		records []model.FaultRecord
		err     error
	)
	if cfg.DataPath == "" {
		records, err = dataset.Default()
	} else {
		records, err = dataset.Load(cfg.DataPath)
	}
	if err != nil {
		return nil, err
	}
	source := cfg.DataPath
	if source == "" {
		source = "bundled"
	}
	logger.Info("dataset loaded", "source", source, "records", len(records))
	return records, nil
}

func runRoot(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
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

	app := tui.NewApp(cfg, records, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
