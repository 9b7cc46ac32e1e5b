package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chronicle/internal/dedup"
	"chronicle/internal/media"
)

func newDuplicatesCommand(ctx *commandContext) *cobra.Command {
	var sidecarDir string
	var jsonOutput bool
	var threshold float64

	cmd := &cobra.Command{
		Use:   "duplicates <records.json>",
		Short: "Report near-duplicate clusters in a metadata export",
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

			if !cmd.Flags().Changed("threshold") {
				threshold = cfg.ContentFilter.DuplicateThreshold
			}
			detector := dedup.NewDetector(threshold, logger)
			clusters := detector.Detect(result.Records)

			if jsonOutput {
				payload := struct {
					Threshold float64               `json:"threshold"`
					Clusters  [][]media.VideoRecord `json:"clusters"`
				}{Threshold: threshold, Clusters: clusters}
				return printJSON(cmd.OutOrStdout(), payload)
			}

			out := cmd.OutOrStdout()
			if len(clusters) == 0 {
				fmt.Fprintf(out, "No duplicate clusters at threshold %.2f\n", threshold)
				return nil
			}

			var rows [][]string
			for i, cluster := range clusters {
				for _, record := range cluster {
					rows = append(rows, []string{
						fmt.Sprintf("%d", i+1),
						record.ID,
						truncate(record.Title, 60),
						formatSeconds(record.EffectiveDuration()),
						record.ChannelTitle,
					})
				}
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Cluster", "ID", "Title", "Duration", "Channel"},
				rows,
				0, 3,
			))
			fmt.Fprintf(out, "%s across %s\n",
				pluralize(len(clusters), "cluster"),
				pluralize(len(rows), "record"))
			return nil
		},
	}

	cmd.Flags().StringVar(&sidecarDir, "sidecar-dir", "", "Directory of <id>.json sidecar metadata files")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit clusters as JSON")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Similarity threshold (defaults to config value)")
	return cmd
}
