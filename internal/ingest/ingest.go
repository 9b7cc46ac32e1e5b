package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"chronicle/internal/logging"
	"chronicle/internal/media"
)

// Result carries the coerced records plus ingestion accounting.
type Result struct {
	Records      []media.VideoRecord
	NoIdentifier int
}

// LoadRecords reads a JSON array of loose metadata objects from path and
// coerces each into a VideoRecord. Records without identifiers are dropped
// and counted, not treated as errors.
func LoadRecords(path string, logger *slog.Logger) (Result, error) {
	logger = logging.WithComponent(logger, "ingest")

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read records: %w", err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Result{}, fmt.Errorf("parse records %s: %w", path, err)
	}

	result := Result{Records: make([]media.VideoRecord, 0, len(raw))}
	for _, entry := range raw {
		record, err := media.FromMap(entry)
		if err != nil {
			if errors.Is(err, media.ErrNoIdentifier) {
				result.NoIdentifier++
				continue
			}
			return Result{}, err
		}
		result.Records = append(result.Records, record)
	}

	logger.Info("records ingested",
		"path", path,
		"records", len(result.Records),
		"no_identifier", result.NoIdentifier)
	return result, nil
}
