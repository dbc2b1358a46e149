package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "data", cfg.Paths.DataDir)
	assert.Equal(t, 100, cfg.Sampling.SampleSize)
	assert.Equal(t, 50, cfg.Sampling.Trials)
	assert.Equal(t, int64(0), cfg.Sampling.Seed)
	assert.Equal(t, 0.05, cfg.Correlation.Alpha)
	assert.Equal(t, "MATH", cfg.Classify.TargetSubject)
	assert.Equal(t, 500, cfg.Classify.Epochs)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("EDUSTAT_SAMPLING_SAMPLE_SIZE", "25")
	t.Setenv("EDUSTAT_LOGGING_LEVEL", "debug")
	t.Setenv("EDUSTAT_CLASSIFY_TARGET_SUBJECT", "PHYS")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Sampling.SampleSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "PHYS", cfg.Classify.TargetSubject)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "edustat.yaml")
	content := `
logging:
  level: warn
  format: text
sampling:
  sample_size: 10
  trials: 200
correlation:
  alpha: 0.01
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	cfg, err := Load(configFile)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, 10, cfg.Sampling.SampleSize)
	assert.Equal(t, 200, cfg.Sampling.Trials)
	assert.Equal(t, 0.01, cfg.Correlation.Alpha)
	// Untouched sections keep their defaults.
	assert.Equal(t, "MATH", cfg.Classify.TargetSubject)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"invalid log level", "EDUSTAT_LOGGING_LEVEL", "verbose"},
		{"invalid log format", "EDUSTAT_LOGGING_FORMAT", "xml"},
		{"zero sample size", "EDUSTAT_SAMPLING_SAMPLE_SIZE", "0"},
		{"alpha out of range", "EDUSTAT_CORRELATION_ALPHA", "1.5"},
		{"non-positive learning rate", "EDUSTAT_CLASSIFY_LEARNING_RATE", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestResolvedPaths(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("data", "students.csv.gz"), cfg.StudentsPath())
	assert.Equal(t, filepath.Join("data", "courses.csv.gz"), cfg.CoursesPath())
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Paths.ReportsDir = filepath.Join(dir, "reports")
	cfg.Paths.LogsDir = filepath.Join(dir, "logs")

	require.NoError(t, cfg.EnsureDirectories())
	assert.DirExists(t, cfg.Paths.ReportsDir)
	assert.DirExists(t, cfg.Paths.LogsDir)
}
