package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"chronicle/internal/batch"
	"chronicle/internal/categorize"
	"chronicle/internal/dedup"
	"chronicle/internal/fileutil"
	"chronicle/internal/filter"
	"chronicle/internal/ingest"
	"chronicle/internal/report"
	"chronicle/internal/sessions"
)

type runSummary struct {
	SessionID         string       `json:"session_id"`
	InputPath         string       `json:"input_path"`
	ReportDir         string       `json:"report_dir"`
	Stats             filter.Stats `json:"stats"`
	DuplicateClusters int          `json:"duplicate_clusters"`
	Categories        int          `json:"categories"`
	Groups            int          `json:"groups"`
	Invalid           int          `json:"invalid_files,omitempty"`
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	var sidecarDir string
	var jsonOutput bool
	var validateFiles bool

	cmd := &cobra.Command{
		Use:   "run <records.json>",
		Short: "Triage an export end to end and record the session",
		Long: `Run executes the full triage sequence: ingest, filter, duplicate
analysis, categorization, and compilation planning. Reports are written to
the configured report directory and the session is recorded for later
inspection with 'chronicle session'.`,
		Args: cobra.ExactArgs(1),
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

			var invalid []ingest.Invalid
			records := result.Records
			if validateFiles {
				records, invalid = ingest.ValidateFiles(records)
				for _, entry := range invalid {
					logger.Warn("invalid media file",
						"video_id", entry.Record.ID,
						"reason", entry.Reason)
				}
			}

			bar := progressbar.NewOptions(4,
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSetDescription("filtering"),
				progressbar.OptionSetVisibility(isTerminal(cmd.ErrOrStderr())),
			)

			pipeline := filter.New(filterConfigFrom(cfg), logger)
			kept, stats := pipeline.Run(records)
			stats.NoIdentifier += result.NoIdentifier
			stats.TotalProcessed += result.NoIdentifier
			_ = bar.Add(1)

			bar.Describe("detecting duplicates")
			detector := dedup.NewDetector(cfg.ContentFilter.DuplicateThreshold, logger)
			clusters := detector.Detect(kept)
			_ = bar.Add(1)

			bar.Describe("categorizing")
			categorizer := categorize.New(categoriesFrom(cfg), logger)
			buckets := categorizer.Assign(kept)
			_ = bar.Add(1)

			bar.Describe("planning")
			batcher := batch.New(boundsFrom(cfg), nil, logger)
			var groups []batch.Group
			for _, name := range sortedBucketNames(buckets) {
				groups = append(groups, batcher.Plan(name, buckets[name])...)
			}
			_ = bar.Add(1)
			_ = bar.Finish()

			sessionID := uuid.NewString()
			reportDir := filepath.Join(cfg.Paths.ReportDir, sessionID)

			entries := report.PlanEntries(groups)
			if err := report.WriteJSON(filepath.Join(reportDir, "plan.json"), entries); err != nil {
				return err
			}
			content := report.BuildContent(kept, buckets, stats)
			if err := report.WriteJSON(filepath.Join(reportDir, "content_report.json"), content); err != nil {
				return err
			}
			if err := report.WriteJSON(filepath.Join(reportDir, "filter_report.json"), stats); err != nil {
				return err
			}
			if err := fileutil.CopyFile(args[0], filepath.Join(reportDir, "input.json")); err != nil {
				return fmt.Errorf("archive input: %w", err)
			}

			flagged := 0
			for _, cluster := range clusters {
				flagged += len(cluster)
			}

			statsJSON, err := json.Marshal(stats)
			if err != nil {
				return fmt.Errorf("marshal stats: %w", err)
			}
			session := &sessions.Session{
				ID:                sessionID,
				InputPath:         args[0],
				ReportPath:        reportDir,
				TotalProcessed:    stats.TotalProcessed,
				Kept:              stats.PassedFilters,
				DuplicatesFlagged: flagged,
				CategoryCount:     len(sortedBucketNames(buckets)),
				GroupCount:        len(groups),
				StatsJSON:         string(statsJSON),
			}
			if err := ctx.withStore(func(store *sessions.Store) error {
				return store.Record(cmd.Context(), session)
			}); err != nil {
				return err
			}

			summary := runSummary{
				SessionID:         sessionID,
				InputPath:         args[0],
				ReportDir:         reportDir,
				Stats:             stats,
				DuplicateClusters: len(clusters),
				Categories:        session.CategoryCount,
				Groups:            len(groups),
				Invalid:           len(invalid),
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), summary)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderKeyValues([][2]string{
				{"Session", sessionID},
				{"Processed", fmt.Sprintf("%d", stats.TotalProcessed)},
				{"Kept", fmt.Sprintf("%d", stats.PassedFilters)},
				{"Rejected", fmt.Sprintf("%d", stats.Rejected())},
				{"Duplicate clusters", fmt.Sprintf("%d", len(clusters))},
				{"Categories", fmt.Sprintf("%d", session.CategoryCount)},
				{"Groups", fmt.Sprintf("%d", len(groups))},
				{"Reports", reportDir},
			}))
			return nil
		},
	}

	cmd.Flags().StringVar(&sidecarDir, "sidecar-dir", "", "Directory of <id>.json sidecar metadata files")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the run summary as JSON")
	cmd.Flags().BoolVar(&validateFiles, "validate-files", false, "Drop records whose media file is missing or empty")
	return cmd
}
