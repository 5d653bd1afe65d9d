package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, "./reference/finance", config.Corpora.FinanceDir)
	assert.Equal(t, "./reference/insurance", config.Corpora.InsuranceDir)
	assert.Equal(t, 8, config.Loader.Workers)
	assert.False(t, config.Cache.Enabled)
	assert.Equal(t, "info", config.Logging.Level)
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reperio.toml")

	content := `
[corpora]
finance_dir = "/data/finance"

[loader]
workers = 4

[cache]
enabled = true
path = "/tmp/cache"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadFromFiles(path)
	require.NoError(t, err)

	// File values override defaults.
	assert.Equal(t, "/data/finance", config.Corpora.FinanceDir)
	assert.Equal(t, 4, config.Loader.Workers)
	assert.True(t, config.Cache.Enabled)

	// Untouched values keep defaults.
	assert.Equal(t, "./reference/insurance", config.Corpora.InsuranceDir)
}

func TestLoadFromFilesMissingFile(t *testing.T) {
	_, err := LoadFromFiles(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reperio.toml")
	require.NoError(t, os.WriteFile(path, []byte("[loader]\nworkers = 4\n"), 0644))

	t.Setenv("REPERIO_LOADER_WORKERS", "2")
	t.Setenv("REPERIO_OUTPUT_PATH", "/tmp/answers.json")

	config, err := LoadFromFiles(path)
	require.NoError(t, err)

	// Env wins over file.
	assert.Equal(t, 2, config.Loader.Workers)
	assert.Equal(t, "/tmp/answers.json", config.Output.Path)
}

func TestApplyFlagOverrides(t *testing.T) {
	config := NewDefaultConfig()

	ApplyFlagOverrides(config, "/out/answers.json")
	assert.Equal(t, "/out/answers.json", config.Output.Path)

	// Empty flag leaves config untouched.
	ApplyFlagOverrides(config, "")
	assert.Equal(t, "/out/answers.json", config.Output.Path)
}
