package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chronicle/internal/batch"
	"chronicle/internal/categorize"
	"chronicle/internal/report"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var sidecarDir string
	var jsonOutput bool
	var outputPath string

	cmd := &cobra.Command{
		Use:   "plan <records.json>",
		Short: "Pack categorized records into duration-bounded groups",
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

			categorizer := categorize.New(categoriesFrom(cfg), logger)
			buckets := categorizer.Assign(result.Records)

			batcher := batch.New(boundsFrom(cfg), nil, logger)
			var groups []batch.Group
			for _, name := range sortedBucketNames(buckets) {
				groups = append(groups, batcher.Plan(name, buckets[name])...)
			}
			entries := report.PlanEntries(groups)

			if outputPath != "" {
				if err := report.WriteJSON(outputPath, entries); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote plan to %s\n", outputPath)
			}

			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), entries)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No groups planned")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for i, entry := range entries {
				rows = append(rows, []string{
					fmt.Sprintf("%d", i+1),
					displayName(entry.Category),
					fmt.Sprintf("%d", entry.VideoCount),
					formatSeconds(entry.Duration),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Group", "Category", "Videos", "Duration"},
				rows,
				0, 2, 3,
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&sidecarDir, "sidecar-dir", "", "Directory of <id>.json sidecar metadata files")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit plan entries as JSON")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the plan JSON to a file")
	return cmd
}
