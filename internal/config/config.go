package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	WorkDir   string `toml:"work_dir"`
	LogDir    string `toml:"log_dir"`
	OutputDir string `toml:"output_dir"`
}

// Aligner contains settings for the external alignment engine invocation.
type Aligner struct {
	// Command is the runner used to launch the engine (default "uvx").
	Command string `toml:"command"`
	// Model is the Whisper model name (e.g. "base", "large-v3").
	Model string `toml:"model"`
	// Language is the default language hint; empty lets the engine detect.
	Language string `toml:"language"`
	// Stabilize re-aligns the recognized text in free-transcription mode to
	// tighten word timestamps. Costs a second engine invocation.
	Stabilize bool `toml:"stabilize"`
}

// Segmentation contains the silence heuristic for free-transcription line
// breaks.
type Segmentation struct {
	// PauseThreshold is the minimum inter-word silence, in seconds, for a
	// segment boundary to become a line break. Exclusive bound.
	PauseThreshold float64 `toml:"pause_threshold"`
	// FallbackWordDuration estimates a word's end when the engine reported
	// none.
	FallbackWordDuration float64 `toml:"fallback_word_duration"`
}

// Repair contains the timestamp anomaly thresholds and replacement gaps for
// guided alignment. All gaps are seconds; the anomaly bounds are exclusive.
type Repair struct {
	MaxWordGap      float64 `toml:"max_word_gap"`
	MaxLineGap      float64 `toml:"max_line_gap"`
	WordNudge       float64 `toml:"word_nudge"`
	LineNudge       float64 `toml:"line_nudge"`
	LineGapEstimate float64 `toml:"line_gap_estimate"`
	MaxPasses       int     `toml:"max_passes"`
	// SynthesisGap spaces out expected words the engine returned no
	// observation for.
	SynthesisGap float64 `toml:"synthesis_gap"`
}

// Sections contains section label placement settings.
type Sections struct {
	// LeadSeconds anchors a section label this far ahead of its line's
	// first word.
	LeadSeconds float64 `toml:"lead_seconds"`
}

// History contains run-history settings.
type History struct {
	Enabled bool `toml:"enabled"`
}

// Logging contains log output configuration.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for lyricsync.
type Config struct {
	Paths        Paths        `toml:"paths"`
	Aligner      Aligner      `toml:"aligner"`
	Segmentation Segmentation `toml:"segmentation"`
	Repair       Repair       `toml:"repair"`
	Sections     Sections     `toml:"sections"`
	History      History      `toml:"history"`
	Logging      Logging      `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/lyricsync/config.toml")
}

// SampleConfig returns the embedded annotated sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The boolean reports
// whether a file was found; a missing file is not an error and yields the
// defaults.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("lyricsync.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories a run needs.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.WorkDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if strings.TrimSpace(c.Paths.OutputDir) != "" {
		if err := os.MkdirAll(c.Paths.OutputDir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", c.Paths.OutputDir, err)
		}
	}
	return nil
}

// ExpandPath resolves a leading tilde and returns an absolute, cleaned path.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
