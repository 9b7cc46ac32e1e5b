package main

import (
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"chronicle/internal/ingest"
	"chronicle/internal/media"
)

// loadInput reads the records file named by the first positional argument
// and optionally merges sidecar metadata from sidecarDir.
func loadInput(cmd *cobra.Command, args []string, sidecarDir string, logger *slog.Logger) (ingest.Result, error) {
	result, err := ingest.LoadRecords(args[0], logger)
	if err != nil {
		return ingest.Result{}, err
	}
	if sidecarDir != "" {
		result.Records = ingest.MergeSidecars(result.Records, sidecarDir)
	}
	return result, nil
}

// sortedBucketNames returns the non-empty bucket names in a stable order,
// with the uncategorized bucket last.
func sortedBucketNames(buckets map[string][]media.VideoRecord) []string {
	names := make([]string, 0, len(buckets))
	for name, records := range buckets {
		if len(records) == 0 {
			continue
		}
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i] == media.Uncategorized {
			return false
		}
		if names[j] == media.Uncategorized {
			return true
		}
		return names[i] < names[j]
	})
	return names
}
