package config

import (
	"fmt"
	"os"
)

// EnsureDirectories creates every directory the pipeline writes into.
// Input directories are not created: a missing data directory is a user
// error surfaced at load time, not something to silently fabricate.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.ReportsDir, c.Paths.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// ValidateInputPaths verifies that the configured input locations exist
func (c *Config) ValidateInputPaths() error {
	for _, p := range []string{c.StudentsPath(), c.CoursesPath(), c.Paths.SeriesDir} {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("input path %s: %w", p, err)
		}
	}
	return nil
}
