package config

import (
	"fmt"
	"strings"

	"chronicle/internal/textutil"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeContentFilter()
	c.normalizeCategories()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ReportDir) == "" {
		c.Paths.ReportDir = defaultReportDir
	}
	if c.Paths.ReportDir, err = expandPath(c.Paths.ReportDir); err != nil {
		return fmt.Errorf("paths.report_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeContentFilter() {
	c.ContentFilter.BlockedChannels = trimAll(c.ContentFilter.BlockedChannels)
	c.ContentFilter.RequiredKeywords = trimAll(c.ContentFilter.RequiredKeywords)
	c.ContentFilter.ExcludedKeywords = trimAll(c.ContentFilter.ExcludedKeywords)
	if c.ContentFilter.DuplicateThreshold == 0 {
		c.ContentFilter.DuplicateThreshold = defaultDuplicateThreshold
	}
}

func (c *Config) normalizeCategories() {
	normalized := c.Categories[:0]
	for _, category := range c.Categories {
		if strings.TrimSpace(category.Name) == "" {
			continue
		}
		category.Name = textutil.CanonicalKey(category.Name)
		category.Keywords = trimAll(category.Keywords)
		normalized = append(normalized, category)
	}
	c.Categories = normalized
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func trimAll(values []string) []string {
	trimmed := values[:0]
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		trimmed = append(trimmed, value)
	}
	return trimmed
}
