package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"chronicle/internal/batch"
	"chronicle/internal/config"
	"chronicle/internal/filter"
	"chronicle/internal/media"
)

func filterConfigFrom(cfg *config.Config) filter.Config {
	cf := cfg.ContentFilter
	return filter.Config{
		MinDurationSeconds: cf.MinDurationSeconds,
		MaxDurationSeconds: cf.MaxDurationSeconds,
		MinViews:           cf.MinViews,
		BlockedChannels:    cf.BlockedChannels,
		RequiredKeywords:   cf.RequiredKeywords,
		ExcludedKeywords:   cf.ExcludedKeywords,
		MaxFileSizeBytes:   cf.MaxFileSizeMB * 1024 * 1024,
		MinHeight:          cf.MinResolutionHeight,
	}
}

func boundsFrom(cfg *config.Config) batch.Bounds {
	comp := cfg.Compilation
	return batch.Bounds{
		Target: float64(comp.TargetDurationMinutes) * 60,
		Min:    float64(comp.MinDurationMinutes) * 60,
		Max:    float64(comp.MaxDurationMinutes) * 60,
	}
}

func categoriesFrom(cfg *config.Config) []media.Category {
	categories := make([]media.Category, 0, len(cfg.Categories))
	for _, c := range cfg.Categories {
		categories = append(categories, media.Category{
			Name:     c.Name,
			Keywords: c.Keywords,
			Priority: c.Priority,
		})
	}
	return categories
}

var titleCaser = cases.Title(language.Und)

// displayName turns a snake_case category name into a table-friendly label.
func displayName(category string) string {
	return titleCaser.String(strings.ReplaceAll(category, "_", " "))
}

func formatSeconds(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second)).Round(time.Second)
	return d.String()
}

func formatBytes(size int64) string {
	if size <= 0 {
		return "-"
	}
	return humanize.Bytes(uint64(size))
}

func formatCount(count int64) string {
	return humanize.Comma(count)
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// truncate shortens s to at most max runes, marking the cut with an
// ellipsis. Counting runes keeps multibyte titles valid UTF-8.
func truncate(s string, max int) string {
	if max <= 3 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}

func pluralize(count int, singular string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %ss", count, singular)
}
