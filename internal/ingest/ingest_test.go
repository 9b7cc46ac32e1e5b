package ingest

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"chronicle/internal/logging"
	"chronicle/internal/media"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadRecords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.json")
	writeFile(t, path, `[
		{"video_id": "abc", "title": "First", "duration_seconds": 120, "view_count": "1.5K"},
		{"title": "No ID"},
		{"video_id": "def", "title": "Second", "upload_date": "20240115"}
	]`)

	result, err := LoadRecords(path, logging.NewNop())
	if err != nil {
		t.Fatalf("LoadRecords() error = %v", err)
	}
	if len(result.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(result.Records))
	}
	if result.NoIdentifier != 1 {
		t.Errorf("NoIdentifier = %d, want 1", result.NoIdentifier)
	}
	if result.Records[0].ViewCount != 1500 {
		t.Errorf("ViewCount = %d, want 1500", result.Records[0].ViewCount)
	}
	if result.Records[1].UploadedAt.Year() != 2024 {
		t.Errorf("UploadedAt = %v", result.Records[1].UploadedAt)
	}
}

func TestLoadRecordsMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	writeFile(t, path, `{"not": "an array"}`)

	if _, err := LoadRecords(path, logging.NewNop()); err == nil {
		t.Fatal("expected parse error for non-array payload")
	}
}

func TestLoadRecordsMissingFile(t *testing.T) {
	if _, err := LoadRecords(filepath.Join(t.TempDir(), "absent.json"), logging.NewNop()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestMergeSidecarsFillsGapsOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "abc.json"), `{
		"media_info": {
			"description": "sidecar description",
			"tags": ["patrol"],
			"upload_date": "20230310",
			"height": 1080,
			"duration": 93.5,
			"filesize": 2048
		}
	}`)

	records := []media.VideoRecord{
		{ID: "abc", Description: "already set"},
		{ID: "missing"},
	}

	merged := MergeSidecars(records, dir)

	got := merged[0]
	if got.Description != "already set" {
		t.Errorf("Description = %q, existing value must win", got.Description)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "patrol" {
		t.Errorf("Tags = %v", got.Tags)
	}
	if got.Height != 1080 || got.MeasuredDuration != 93.5 || got.FileSizeBytes != 2048 {
		t.Errorf("merged fields = height %d duration %v size %d", got.Height, got.MeasuredDuration, got.FileSizeBytes)
	}
	if !got.HasUploadTime() || got.UploadedAt.Year() != 2023 {
		t.Errorf("UploadedAt = %v", got.UploadedAt)
	}

	if !reflect.DeepEqual(merged[1], records[1]) {
		t.Errorf("record without sidecar changed: %+v", merged[1])
	}
}

func TestMergeSidecarsCorruptSidecar(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "abc.json"), `not json`)

	records := []media.VideoRecord{{ID: "abc", Title: "kept"}}
	merged := MergeSidecars(records, dir)
	if !reflect.DeepEqual(merged[0], records[0]) {
		t.Errorf("corrupt sidecar must leave record untouched: %+v", merged[0])
	}
}

func TestValidateFiles(t *testing.T) {
	dir := t.TempDir()

	goodPath := filepath.Join(dir, "good.mp4")
	writeFile(t, goodPath, "data")
	emptyPath := filepath.Join(dir, "empty.mp4")
	writeFile(t, emptyPath, "")

	records := []media.VideoRecord{
		{ID: "good", FilePath: goodPath},
		{ID: "nopath"},
		{ID: "gone", FilePath: filepath.Join(dir, "gone.mp4")},
		{ID: "dir", FilePath: dir},
		{ID: "empty", FilePath: emptyPath},
	}

	valid, invalid := ValidateFiles(records)
	if len(valid) != 1 || valid[0].ID != "good" {
		t.Fatalf("valid = %+v", valid)
	}

	wantReasons := map[string]string{
		"nopath": "no filepath specified",
		"gone":   "file does not exist",
		"dir":    "path is not a file",
		"empty":  "file is empty",
	}
	if len(invalid) != len(wantReasons) {
		t.Fatalf("invalid = %d entries, want %d", len(invalid), len(wantReasons))
	}
	for _, entry := range invalid {
		if want := wantReasons[entry.Record.ID]; entry.Reason != want {
			t.Errorf("reason for %s = %q, want %q", entry.Record.ID, entry.Reason, want)
		}
	}
}
