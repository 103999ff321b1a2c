package aligner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	langpkg "lyricsync/internal/language"
)

// ErrCollaboratorUnavailable marks failures to invoke the external alignment
// engine or its supporting binaries. Runs that fail with it abort before any
// output is written.
var ErrCollaboratorUnavailable = errors.New("alignment collaborator unavailable")

// Service provides transcription and forced alignment via the external
// engine.
type Service struct {
	cfg           Config
	ffmpegBinary  string
	commandRunner func(ctx context.Context, name string, args ...string) error
}

// NewService creates an alignment service with the given configuration.
func NewService(cfg Config, ffmpegBinary string) *Service {
	if cfg.Command == "" {
		cfg.Command = DefaultCommand
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if ffmpegBinary == "" {
		ffmpegBinary = FFmpegCommand
	}
	return &Service{cfg: cfg, ffmpegBinary: ffmpegBinary}
}

// WithCommandRunner sets a custom command runner (for testing).
func (s *Service) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) error) {
	s.commandRunner = runner
}

// Model returns the configured model name for logging.
func (s *Service) Model() string {
	return s.cfg.Model
}

// Word is a single word hypothesis with timing from the engine output.
type Word struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Segment is a coarse word grouping from the engine output. Segments do not
// correspond to lyric lines; they are acoustic chunks.
type Segment struct {
	ID    int     `json:"id"`
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Words []Word  `json:"words"`
}

type enginePayload struct {
	Segments []Segment `json:"segments"`
}

// Result contains the parsed engine output for one invocation.
type Result struct {
	Segments []Segment
	// JSONPath is the raw engine output file, kept for debugging.
	JSONPath string
}

// Transcribe recognizes the audio without ground truth. When stabilize is
// set, the recognized text is force-aligned back to the audio in a second
// invocation to tighten the word timestamps; this is the only case where the
// engine runs twice.
func (s *Service) Transcribe(ctx context.Context, audio, outputDir, language string, stabilize bool) (Result, error) {
	result, err := s.invoke(ctx, audio, outputDir, language, "")
	if err != nil {
		return Result{}, err
	}
	if !stabilize {
		return result, nil
	}

	text := transcriptText(result.Segments)
	if text == "" {
		return result, nil
	}
	transcriptPath := filepath.Join(outputDir, "transcript.txt")
	if err := os.WriteFile(transcriptPath, []byte(text), 0o644); err != nil {
		return Result{}, fmt.Errorf("write transcript: %w", err)
	}
	return s.invoke(ctx, audio, outputDir, language, transcriptPath)
}

// Align force-aligns known lyric lines to the audio, yielding a timestamp
// for every word the engine could place.
func (s *Service) Align(ctx context.Context, audio string, lyrics []string, outputDir, language string) (Result, error) {
	if len(lyrics) == 0 {
		return Result{}, fmt.Errorf("align: lyric lines required")
	}
	lyricsPath := filepath.Join(outputDir, "lyrics.txt")
	if err := os.WriteFile(lyricsPath, []byte(strings.Join(lyrics, "\n")), 0o644); err != nil {
		return Result{}, fmt.Errorf("write lyrics: %w", err)
	}
	return s.invoke(ctx, audio, outputDir, language, lyricsPath)
}

// invoke runs the engine once. A non-empty alignText switches the engine
// from recognition to forced alignment of that text file.
func (s *Service) invoke(ctx context.Context, audio, outputDir, language, alignText string) (Result, error) {
	if audio == "" {
		return Result{}, fmt.Errorf("align: audio path required")
	}
	if outputDir == "" {
		outputDir = filepath.Dir(audio)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("align: ensure output dir: %w", err)
	}

	baseName := strings.TrimSuffix(filepath.Base(audio), filepath.Ext(audio))
	jsonPath := filepath.Join(outputDir, baseName+".json")

	args := s.buildArgs(audio, jsonPath, language, alignText)
	if err := s.run(ctx, s.cfg.Command, args...); err != nil {
		return Result{}, fmt.Errorf("alignment engine: %w: %w", ErrCollaboratorUnavailable, err)
	}

	segments, err := LoadSegments(jsonPath)
	if err != nil {
		return Result{}, err
	}
	return Result{Segments: segments, JSONPath: jsonPath}, nil
}

// buildArgs constructs the uvx command arguments for the engine.
func (s *Service) buildArgs(audio, jsonPath, language, alignText string) []string {
	args := []string{
		EnginePackage,
		audio,
		"--model", s.cfg.Model,
		"--output", jsonPath,
		"--output_format", OutputFormat,
		"--word_timestamps", "true",
		"--overwrite",
	}
	if alignText != "" {
		args = append(args, "--align", alignText)
	}
	if lang := langpkg.ToISO2(language); lang != "" {
		args = append(args, "--language", lang)
	}
	return args
}

// run executes a command, using the custom runner if set.
func (s *Service) run(ctx context.Context, name string, args ...string) error {
	if s.commandRunner != nil {
		return s.commandRunner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// LoadSegments loads segments from an engine JSON output file.
func LoadSegments(jsonPath string) ([]Segment, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, err
	}
	var payload enginePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse engine json: %w", err)
	}
	return payload.Segments, nil
}

// transcriptText concatenates the recognized segment texts.
func transcriptText(segments []Segment) string {
	var parts []string
	for _, seg := range segments {
		if text := strings.TrimSpace(seg.Text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}
