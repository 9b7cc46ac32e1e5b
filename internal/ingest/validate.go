package ingest

import (
	"os"

	"chronicle/internal/media"
)

// Invalid pairs a record with the reason its file failed validation.
type Invalid struct {
	Record media.VideoRecord
	Reason string
}

// ValidateFiles partitions records by whether their media file is usable:
// a path must be set, exist, be a regular file, and be non-empty. Records
// are not mutated; invalid ones carry a human-readable reason.
func ValidateFiles(records []media.VideoRecord) (valid []media.VideoRecord, invalid []Invalid) {
	for _, record := range records {
		if record.FilePath == "" {
			invalid = append(invalid, Invalid{Record: record, Reason: "no filepath specified"})
			continue
		}
		info, err := os.Stat(record.FilePath)
		if err != nil {
			invalid = append(invalid, Invalid{Record: record, Reason: "file does not exist"})
			continue
		}
		if info.IsDir() {
			invalid = append(invalid, Invalid{Record: record, Reason: "path is not a file"})
			continue
		}
		if info.Size() == 0 {
			invalid = append(invalid, Invalid{Record: record, Reason: "file is empty"})
			continue
		}
		valid = append(valid, record)
	}
	return valid, invalid
}
