package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/specsuite/core/pkg/config"
	"github.com/specsuite/core/pkg/report"
	"github.com/specsuite/core/pkg/stats"
)

var (
	statsConfigPath string
	statsRoot       string
	statsVerify     bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate spec test counts by area, section, paragraph and type",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if statsConfigPath != "" {
			loaded, err := config.Load(statsConfigPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if statsRoot != "" {
			cfg.SuiteRoot = statsRoot
		}

		areas, err := cfg.TestAreas()
		if err != nil {
			return err
		}

		aggregator := stats.NewAggregator(
			stats.WithAreas(areas),
			stats.WithExcludePatterns(cfg.Exclude),
			stats.WithPatterns(cfg.Patterns),
			stats.WithWorkers(cfg.Workers),
			stats.WithVerify(statsVerify),
		)

		result, err := aggregator.Collect(cmd.Context(), cfg.SuiteRoot)
		if err != nil {
			return err
		}

		report.PrintStatistics(cmd.OutOrStdout(), result.Counters)

		log.Info().
			Int("counted", result.Stats.FilesCounted).
			Int("skipped", result.Stats.FilesSkipped).
			Dur("took", result.Stats.Duration).
			Msg("aggregation complete")

		if len(result.Errors) > 0 {
			return fmt.Errorf("%d of %d files failed verification", len(result.Errors), result.Stats.FilesCounted)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsConfigPath, "config", "", "path to YAML configuration file")
	statsCmd.Flags().StringVar(&statsRoot, "root", "", "suite root directory (overrides config)")
	statsCmd.Flags().BoolVar(&statsVerify, "verify", false, "cross-check each counted file's header against its path")
}
