package ingest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"chronicle/internal/media"
)

// sidecarInfo mirrors the metadata block download tooling writes next to
// each media file.
type sidecarInfo struct {
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	UploadDate  string   `json:"upload_date"`
	Height      int      `json:"height"`
	Duration    float64  `json:"duration"`
	Filesize    int64    `json:"filesize"`
}

type sidecarFile struct {
	Info sidecarInfo `json:"media_info"`
}

// MergeSidecars fills record fields from <id>.json sidecar files under dir.
// Sidecar values only fill gaps: fields already present on a record are kept.
// Missing or unreadable sidecars leave the record untouched.
func MergeSidecars(records []media.VideoRecord, dir string) []media.VideoRecord {
	merged := make([]media.VideoRecord, len(records))
	for i, record := range records {
		merged[i] = mergeOne(record, dir)
	}
	return merged
}

func mergeOne(record media.VideoRecord, dir string) media.VideoRecord {
	data, err := os.ReadFile(filepath.Join(dir, record.ID+".json"))
	if err != nil {
		return record
	}
	var sidecar sidecarFile
	if err := json.Unmarshal(data, &sidecar); err != nil {
		return record
	}
	info := sidecar.Info

	if record.Description == "" {
		record.Description = info.Description
	}
	if len(record.Tags) == 0 {
		record.Tags = info.Tags
	}
	if !record.HasUploadTime() && info.UploadDate != "" {
		if parsed, err := time.Parse("20060102", info.UploadDate); err == nil {
			record.UploadedAt = parsed
		}
	}
	if record.Height == 0 {
		record.Height = info.Height
	}
	if record.MeasuredDuration == 0 && info.Duration > 0 {
		record.MeasuredDuration = info.Duration
	}
	if record.FileSizeBytes == 0 {
		record.FileSizeBytes = info.Filesize
	}
	return record
}
