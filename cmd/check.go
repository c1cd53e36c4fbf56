package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"dq-health-check/core/config"
	"dq-health-check/core/logger"
	"dq-health-check/feature/healthcheck"
	"dq-health-check/feature/healthcheck/model"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var mainIndexFlag int

// checkCmd runs the health check pipeline over local spreadsheet files.
var checkCmd = &cobra.Command{
	Use:   "check <files...>",
	Short: "Run a health check over local spreadsheets",
	Long: `Reads the given spreadsheets (.xlsx or .csv), reconciles them against the
main source, and prints the report as JSON.

The first file is the main source unless --main selects another (1-based).
Exits with status 1 when any check fails.

Examples:
  # First file is main
  dq-health-check check rules_a.xlsx rules_b.xlsx

  # Third file is main
  dq-health-check check a.csv b.csv c.csv --main 3`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logg, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		sources := make([]*model.Source, 0, len(args))
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			src, err := healthcheck.NewSourceFromFile(filepath.Base(path), data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			logg.Debug("Loaded source",
				zap.String("file", src.Name),
				zap.Int("rules", len(src.Rules)))
			sources = append(sources, src)
		}

		mainIndex := 0
		if mainIndexFlag >= 1 && mainIndexFlag <= len(sources) {
			mainIndex = mainIndexFlag - 1
		}

		svc := healthcheck.NewService(logg)
		report, err := svc.Analyze(sources, mainIndex)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))

		if !report.OK {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().IntVar(&mainIndexFlag, "main", 0, "1-based index of the main source (default: first file)")
	RootCmd.AddCommand(checkCmd)
}
