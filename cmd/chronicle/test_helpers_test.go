package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chronicle/internal/config"
	"chronicle/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	cfg := testsupport.NewConfig(t,
		testsupport.WithCategories(
			config.Category{Name: "traffic_stop", Keywords: []string{"traffic stop", "pulled over"}, Priority: 0},
			config.Category{Name: "pursuit", Keywords: []string{"pursuit", "chase"}, Priority: 1},
		),
		testsupport.WithCompilationMinutes(15, 10, 20),
	)

	configPath := filepath.Join(homeDir, ".config", "chronicle", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		baseDir:    base,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	var sb strings.Builder
	fmt.Fprintf(&sb, "[paths]\ndata_dir = %q\nlog_dir = %q\nreport_dir = %q\n\n",
		cfg.Paths.DataDir, cfg.Paths.LogDir, cfg.Paths.ReportDir)
	fmt.Fprintf(&sb, "[content_filter]\nmin_duration_seconds = %d\nmax_duration_seconds = %d\nmin_views = %d\nmax_file_size_mb = %d\nmin_resolution_height = %d\nduplicate_threshold = %v\n",
		cfg.ContentFilter.MinDurationSeconds,
		cfg.ContentFilter.MaxDurationSeconds,
		cfg.ContentFilter.MinViews,
		cfg.ContentFilter.MaxFileSizeMB,
		cfg.ContentFilter.MinResolutionHeight,
		cfg.ContentFilter.DuplicateThreshold)
	if len(cfg.ContentFilter.BlockedChannels) > 0 {
		fmt.Fprintf(&sb, "blocked_channels = [%s]\n", quoteList(cfg.ContentFilter.BlockedChannels))
	}
	sb.WriteString("\n")
	for _, category := range cfg.Categories {
		fmt.Fprintf(&sb, "[[categories]]\nname = %q\nkeywords = [%s]\npriority = %d\n\n",
			category.Name, quoteList(category.Keywords), category.Priority)
	}
	fmt.Fprintf(&sb, "[compilation]\ntarget_duration_minutes = %d\nmin_duration_minutes = %d\nmax_duration_minutes = %d\n\n",
		cfg.Compilation.TargetDurationMinutes,
		cfg.Compilation.MinDurationMinutes,
		cfg.Compilation.MaxDurationMinutes)
	fmt.Fprintf(&sb, "[logging]\nformat = %q\nlevel = %q\n", "console", "error")

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func quoteList(values []string) string {
	quoted := make([]string, 0, len(values))
	for _, value := range values {
		quoted = append(quoted, fmt.Sprintf("%q", value))
	}
	return strings.Join(quoted, ", ")
}

func writeRecordsFile(t *testing.T, dir string, payload string) string {
	t.Helper()
	path := filepath.Join(dir, "records.json")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write records: %v", err)
	}
	return path
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

const sampleRecordsJSON = `[
	{"video_id": "a1", "title": "Wild police pursuit on highway", "duration_seconds": 300, "view_count": 5000, "upload_date": "20240101", "channel_title": "Dash Cams"},
	{"video_id": "a2", "title": "Routine traffic stop goes wrong", "duration_seconds": 240, "view_count": 2500, "upload_date": "20240102", "channel_title": "Dash Cams"},
	{"video_id": "a3", "title": "Quiet morning vlog", "duration_seconds": 600, "view_count": 900, "upload_date": "20240103", "channel_title": "Daily Life"},
	{"video_id": "a4", "title": "Too short clip", "duration_seconds": 5, "view_count": 10000, "upload_date": "20240104"},
	{"video_id": "a1", "title": "Wild police pursuit on highway", "duration_seconds": 300, "view_count": 5000, "upload_date": "20240101"}
]`
