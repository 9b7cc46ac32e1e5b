package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"chronicle/internal/report"
)

func TestFilterCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	records := writeRecordsFile(t, t.TempDir(), sampleRecordsJSON)

	out, _, err := runCLI(t, []string{"filter", records}, env.configPath)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	requireContains(t, out, "Kept 3 of 5 records")
	requireContains(t, out, "Duplicate ID")
}

func TestDuplicatesCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	payload := `[
		{"video_id": "x1", "title": "Epic chase downtown", "duration_seconds": 200, "channel_title": "Cam One"},
		{"video_id": "x2", "title": "Epic chase downtown", "duration_seconds": 210, "channel_title": "Cam One"},
		{"video_id": "x3", "title": "Completely different cooking show", "duration_seconds": 900, "channel_title": "Cam Two"}
	]`
	records := writeRecordsFile(t, t.TempDir(), payload)

	out, _, err := runCLI(t, []string{"duplicates", records}, env.configPath)
	if err != nil {
		t.Fatalf("duplicates: %v", err)
	}
	requireContains(t, out, "1 cluster")
	requireContains(t, out, "x1")
	requireContains(t, out, "x2")
}

func TestDuplicatesCommandNoClusters(t *testing.T) {
	env := setupCLITestEnv(t)
	payload := `[
		{"video_id": "x1", "title": "Epic chase downtown", "duration_seconds": 200},
		{"video_id": "x2", "title": "Slow cooking tutorial", "duration_seconds": 900}
	]`
	records := writeRecordsFile(t, t.TempDir(), payload)

	out, _, err := runCLI(t, []string{"duplicates", records}, env.configPath)
	if err != nil {
		t.Fatalf("duplicates: %v", err)
	}
	requireContains(t, out, "No duplicate clusters")
}

func TestDuplicatesCommandExplicitZeroThreshold(t *testing.T) {
	env := setupCLITestEnv(t)
	payload := `[
		{"video_id": "x1", "title": "Epic chase downtown", "duration_seconds": 200},
		{"video_id": "x2", "title": "Slow cooking tutorial", "duration_seconds": 900}
	]`
	records := writeRecordsFile(t, t.TempDir(), payload)

	// --threshold 0 is an explicit value, not a fallback to the config.
	out, _, err := runCLI(t, []string{"duplicates", records, "--threshold", "0"}, env.configPath)
	if err != nil {
		t.Fatalf("duplicates: %v", err)
	}
	requireContains(t, out, "1 cluster")
}

func TestCategorizeCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	records := writeRecordsFile(t, t.TempDir(), sampleRecordsJSON)

	out, _, err := runCLI(t, []string{"categorize", records}, env.configPath)
	if err != nil {
		t.Fatalf("categorize: %v", err)
	}
	requireContains(t, out, "Traffic Stop")
	requireContains(t, out, "Pursuit")
	requireContains(t, out, "Uncategorized")
}

func TestPlanCommandWritesOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	records := writeRecordsFile(t, t.TempDir(), sampleRecordsJSON)
	target := filepath.Join(t.TempDir(), "plan.json")

	out, _, err := runCLI(t, []string{"plan", records, "--output", target}, env.configPath)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	requireContains(t, out, "Wrote plan to")

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read plan: %v", err)
	}
	var entries []report.PlanEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("decode plan: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("plan is empty")
	}
}

func TestReportCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	records := writeRecordsFile(t, t.TempDir(), sampleRecordsJSON)

	out, _, err := runCLI(t, []string{"report", records}, env.configPath)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	var content report.ContentReport
	if err := json.Unmarshal([]byte(out), &content); err != nil {
		t.Fatalf("decode report: %v\noutput: %s", err, out)
	}
	if content.Summary.TotalVideos != 3 {
		t.Errorf("TotalVideos = %d, want 3", content.Summary.TotalVideos)
	}
	if content.FilterStats.TotalProcessed != 5 {
		t.Errorf("TotalProcessed = %d, want 5", content.FilterStats.TotalProcessed)
	}
}

func TestSessionListAndShow(t *testing.T) {
	env := setupCLITestEnv(t)
	records := writeRecordsFile(t, t.TempDir(), sampleRecordsJSON)

	if _, _, err := runCLI(t, []string{"run", records}, env.configPath); err != nil {
		t.Fatalf("run: %v", err)
	}

	out, _, err := runCLI(t, []string{"session", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("session list: %v", err)
	}
	requireContains(t, out, "3/5")

	var listed []struct {
		ID string
	}
	out, _, err = runCLI(t, []string{"session", "list", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("session list --json: %v", err)
	}
	if err := json.Unmarshal([]byte(out), &listed); err != nil {
		t.Fatalf("decode sessions: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("sessions = %d, want 1", len(listed))
	}

	out, _, err = runCLI(t, []string{"session", "show", listed[0].ID}, env.configPath)
	if err != nil {
		t.Fatalf("session show: %v", err)
	}
	requireContains(t, out, listed[0].ID)
	requireContains(t, out, "Groups")

	out, _, err = runCLI(t, []string{"session", "clear"}, env.configPath)
	if err != nil {
		t.Fatalf("session clear: %v", err)
	}
	requireContains(t, out, "Removed 1 sessions")
}

func TestSessionShowUnknown(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"session", "show", "nope"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for unknown session")
	}
}
