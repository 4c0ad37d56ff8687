package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/concord/internal/core"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
port = "9090"

[comparator]
match_threshold = 0.9
conflict_threshold = 0.4

[log]
level = "debug"
format = "text"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, int64(10), cfg.Server.MaxUploadMB)
	assert.Equal(t, 0.9, cfg.Comparator.MatchThreshold)
	assert.Equal(t, 0.4, cfg.Comparator.ConflictThreshold)
	assert.Equal(t, core.DefaultMinSentenceLength, cfg.Comparator.MinSentenceLength)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[comparator\nmatch_threshold = "))
	assert.ErrorContains(t, err, "failed to parse TOML")
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefault_MatchesComparatorDefaults(t *testing.T) {
	assert.Equal(t, core.DefaultOptions(), Default().Comparator.Options())
	assert.NoError(t, Default().Validate())
	assert.Equal(t, int64(10<<20), Default().Server.MaxUploadBytes())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CONCORD_MATCH_THRESHOLD", "0.97")
	t.Setenv("CONCORD_CONFLICT_THRESHOLD", "0.6")
	t.Setenv("CONCORD_MIN_SENTENCE_LENGTH", "8")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 0.97, cfg.Comparator.MatchThreshold)
	assert.Equal(t, 0.6, cfg.Comparator.ConflictThreshold)
	assert.Equal(t, 8, cfg.Comparator.MinSentenceLength)
}

func TestApplyEnv_InvalidNumber(t *testing.T) {
	t.Setenv("CONCORD_MATCH_THRESHOLD", "high")
	assert.Error(t, Default().ApplyEnv())
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Comparator.ConflictThreshold = 0.99
	assert.ErrorContains(t, cfg.Validate(), "comparator")

	cfg = Default()
	cfg.Server.MaxUploadMB = 0
	assert.ErrorContains(t, cfg.Validate(), "max_upload_mb")

	cfg = Default()
	cfg.Server.Mode = "fast"
	assert.ErrorContains(t, cfg.Validate(), "mode")
}
