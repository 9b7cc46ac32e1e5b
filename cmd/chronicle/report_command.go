package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chronicle/internal/categorize"
	"chronicle/internal/filter"
	"chronicle/internal/report"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var sidecarDir string
	var outputPath string
	var skipFilter bool

	cmd := &cobra.Command{
		Use:   "report <records.json>",
		Short: "Build a content analysis report from a metadata export",
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

			records := result.Records
			var stats filter.Stats
			if !skipFilter {
				pipeline := filter.New(filterConfigFrom(cfg), logger)
				records, stats = pipeline.Run(records)
				stats.NoIdentifier += result.NoIdentifier
				stats.TotalProcessed += result.NoIdentifier
			}

			categorizer := categorize.New(categoriesFrom(cfg), logger)
			buckets := categorizer.Assign(records)

			content := report.BuildContent(records, buckets, stats)

			if outputPath != "" {
				if err := report.WriteJSON(outputPath, content); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote report to %s\n", outputPath)
				return nil
			}
			return printJSON(cmd.OutOrStdout(), content)
		},
	}

	cmd.Flags().StringVar(&sidecarDir, "sidecar-dir", "", "Directory of <id>.json sidecar metadata files")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the report JSON to a file")
	cmd.Flags().BoolVar(&skipFilter, "no-filter", false, "Analyze all records without applying filters")
	return cmd
}
