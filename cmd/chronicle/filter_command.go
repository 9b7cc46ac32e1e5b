package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chronicle/internal/filter"
	"chronicle/internal/media"
)

func newFilterCommand(ctx *commandContext) *cobra.Command {
	var sidecarDir string
	var jsonOutput bool
	var showKept bool

	cmd := &cobra.Command{
		Use:   "filter <records.json>",
		Short: "Apply acceptance thresholds to a metadata export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger(cmd)
			if err != nil {
				return err
			}

			result, err := loadInput(cmd, args, sidecarDir, logger)
			if err != nil {
				return err
			}

			pipeline := filter.New(filterConfigFrom(cfg), logger)
			kept, stats := pipeline.Run(result.Records)
			stats.NoIdentifier += result.NoIdentifier
			stats.TotalProcessed += result.NoIdentifier

			if jsonOutput {
				payload := struct {
					Kept  []media.VideoRecord `json:"kept"`
					Stats filter.Stats        `json:"stats"`
				}{Kept: kept, Stats: stats}
				return printJSON(cmd.OutOrStdout(), payload)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Check", "Rejected"},
				statsRows(stats),
				1,
			))
			fmt.Fprintf(out, "Kept %d of %d records\n", stats.PassedFilters, stats.TotalProcessed)

			if showKept && len(kept) > 0 {
				rows := make([][]string, 0, len(kept))
				for _, record := range kept {
					rows = append(rows, []string{
						record.ID,
						truncate(record.Title, 60),
						formatSeconds(record.EffectiveDuration()),
						formatCount(record.ViewCount),
						formatBytes(record.FileSizeBytes),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Title", "Duration", "Views", "Size"},
					rows,
					2, 3, 4,
				))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sidecarDir, "sidecar-dir", "", "Directory of <id>.json sidecar metadata files")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit kept records and stats as JSON")
	cmd.Flags().BoolVar(&showKept, "kept", false, "List the kept records")
	return cmd
}

func statsRows(stats filter.Stats) [][]string {
	return [][]string{
		{"No identifier", fmt.Sprintf("%d", stats.NoIdentifier)},
		{"Duplicate ID", fmt.Sprintf("%d", stats.FailedDuplicates)},
		{"Duration", fmt.Sprintf("%d", stats.FailedDuration)},
		{"Views", fmt.Sprintf("%d", stats.FailedViews)},
		{"Blocked channel", fmt.Sprintf("%d", stats.BlockedChannels)},
		{"Keywords", fmt.Sprintf("%d", stats.FailedKeywords)},
		{"Quality", fmt.Sprintf("%d", stats.FailedQuality)},
	}
}
