package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/agenthands/concord/internal/core"
)

type ServerConfig struct {
	Port        string `toml:"port"`
	Mode        string `toml:"mode"` // gin mode: debug, release, test
	MaxUploadMB int64  `toml:"max_upload_mb"`
}

type ComparatorConfig struct {
	MatchThreshold    float64 `toml:"match_threshold"`
	ConflictThreshold float64 `toml:"conflict_threshold"`
	MinSentenceLength int     `toml:"min_sentence_length"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type Config struct {
	Server     ServerConfig     `toml:"server"`
	Comparator ComparatorConfig `toml:"comparator"`
	Log        LogConfig        `toml:"log"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        "8080",
			Mode:        "release",
			MaxUploadMB: 10,
		},
		Comparator: ComparatorConfig{
			MatchThreshold:    core.DefaultMatchThreshold,
			ConflictThreshold: core.DefaultConflictThreshold,
			MinSentenceLength: core.DefaultMinSentenceLength,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML file over the defaults, so keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// ApplyEnv overrides fields with environment variables that are set.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		c.Server.Mode = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}

	if v := os.Getenv("CONCORD_MATCH_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid CONCORD_MATCH_THRESHOLD %q: %w", v, err)
		}
		c.Comparator.MatchThreshold = f
	}
	if v := os.Getenv("CONCORD_CONFLICT_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid CONCORD_CONFLICT_THRESHOLD %q: %w", v, err)
		}
		c.Comparator.ConflictThreshold = f
	}
	if v := os.Getenv("CONCORD_MIN_SENTENCE_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid CONCORD_MIN_SENTENCE_LENGTH %q: %w", v, err)
		}
		c.Comparator.MinSentenceLength = n
	}
	return nil
}

func (c *Config) Validate() error {
	if err := c.Comparator.Options().Validate(); err != nil {
		return fmt.Errorf("comparator: %w", err)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server: unknown mode %q", c.Server.Mode)
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("server: max_upload_mb must be positive, got %d", c.Server.MaxUploadMB)
	}
	return nil
}

func (c ComparatorConfig) Options() core.Options {
	return core.Options{
		MatchThreshold:    c.MatchThreshold,
		ConflictThreshold: c.ConflictThreshold,
		MinSentenceLength: c.MinSentenceLength,
	}
}

// MaxUploadBytes is the per-file upload limit.
func (s ServerConfig) MaxUploadBytes() int64 {
	return s.MaxUploadMB << 20
}
