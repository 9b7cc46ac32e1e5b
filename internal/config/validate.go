package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateContentFilter(); err != nil {
		return err
	}
	if err := c.validateCategories(); err != nil {
		return err
	}
	if err := c.validateCompilation(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateContentFilter() error {
	f := c.ContentFilter
	if f.MinDurationSeconds < 0 {
		return errors.New("content_filter.min_duration_seconds must not be negative")
	}
	if f.MaxDurationSeconds < f.MinDurationSeconds {
		return errors.New("content_filter.max_duration_seconds must be >= min_duration_seconds")
	}
	if f.MinViews < 0 {
		return errors.New("content_filter.min_views must not be negative")
	}
	if f.MaxFileSizeMB < 0 {
		return errors.New("content_filter.max_file_size_mb must not be negative")
	}
	if f.MinResolutionHeight < 0 {
		return errors.New("content_filter.min_resolution_height must not be negative")
	}
	if f.DuplicateThreshold < 0 || f.DuplicateThreshold > 1 {
		return errors.New("content_filter.duplicate_threshold must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateCategories() error {
	seen := make(map[string]struct{}, len(c.Categories))
	for _, category := range c.Categories {
		if _, dup := seen[category.Name]; dup {
			return fmt.Errorf("categories: duplicate name %q", category.Name)
		}
		seen[category.Name] = struct{}{}
		if category.Name == "uncategorized" {
			return errors.New(`categories: "uncategorized" is a reserved label`)
		}
		if len(category.Keywords) == 0 {
			return fmt.Errorf("categories: %q has no keywords", category.Name)
		}
	}
	return nil
}

func (c *Config) validateCompilation() error {
	comp := c.Compilation
	if comp.TargetDurationMinutes <= 0 {
		return errors.New("compilation.target_duration_minutes must be positive")
	}
	if comp.MinDurationMinutes <= 0 {
		return errors.New("compilation.min_duration_minutes must be positive")
	}
	if comp.MaxDurationMinutes < comp.TargetDurationMinutes {
		return errors.New("compilation.max_duration_minutes must be >= target_duration_minutes")
	}
	if comp.MinDurationMinutes > comp.TargetDurationMinutes {
		return errors.New("compilation.min_duration_minutes must be <= target_duration_minutes")
	}
	return nil
}
