package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chronicle/internal/categorize"
)

func newCategorizeCommand(ctx *commandContext) *cobra.Command {
	var sidecarDir string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "categorize <records.json>",
		Short: "Assign records to configured keyword categories",
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

			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), buckets)
			}

			rows := make([][]string, 0, len(buckets))
			for _, name := range sortedBucketNames(buckets) {
				records := buckets[name]
				var total float64
				for _, record := range records {
					total += record.EffectiveDuration()
				}
				rows = append(rows, []string{
					displayName(name),
					fmt.Sprintf("%d", len(records)),
					formatSeconds(total),
				})
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "No records to categorize")
				return nil
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Category", "Videos", "Duration"},
				rows,
				1, 2,
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&sidecarDir, "sidecar-dir", "", "Directory of <id>.json sidecar metadata files")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit category buckets as JSON")
	return cmd
}
