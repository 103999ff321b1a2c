package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"lyricsync/internal/aligner"
	"lyricsync/internal/config"
	"lyricsync/internal/fileutil"
	langpkg "lyricsync/internal/language"
	"lyricsync/internal/logging"
	"lyricsync/internal/lyrics"
	"lyricsync/internal/runlog"
)

// ErrBusy indicates another run holds the work-directory lock.
var ErrBusy = errors.New("another lyricsync run is in progress")

// Engine is the alignment collaborator surface the pipeline needs.
type Engine interface {
	PrepareAudio(ctx context.Context, source, dest string) error
	Transcribe(ctx context.Context, audio, outputDir, language string, stabilize bool) (aligner.Result, error)
	Align(ctx context.Context, audio string, lyricLines []string, outputDir, language string) (aligner.Result, error)
	Model() string
}

// Pipeline runs the end-to-end flows.
type Pipeline struct {
	cfg     *config.Config
	logger  *slog.Logger
	engine  Engine
	history *runlog.Store
}

// New constructs a pipeline. history may be nil to disable run recording;
// logger may be nil for silent operation.
func New(cfg *config.Config, logger *slog.Logger, engine Engine, history *runlog.Store) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		logger:  logging.NewComponentLogger(logger, "pipeline"),
		engine:  engine,
		history: history,
	}
}

// Summary reports what a run produced.
type Summary struct {
	RunID       string
	Mode        string
	OutputPath  string
	TotalWords  int
	TotalLines  int
	Fixes       int
	Passes      int
	Converged   bool
	Synthesized int
	Duration    time.Duration
	Document    lyrics.Document
}

// Transcribe runs the free-transcription flow: recognize the audio, group
// words into lines with the silence heuristic, and write the document. Raw
// engine timestamps are trusted; no repair pass is applied.
func (p *Pipeline) Transcribe(ctx context.Context, audioPath, outputPath, language string) (*Summary, error) {
	return p.run(ctx, "transcribe", audioPath, outputPath, language, func(ctx context.Context, wav, runDir, lang string) (lyrics.Document, *Summary, error) {
		result, err := p.engine.Transcribe(ctx, wav, runDir, lang, p.cfg.Aligner.Stabilize)
		if err != nil {
			return lyrics.Document{}, nil, err
		}

		observations := flatten(result.Segments)
		if len(observations) == 0 {
			p.logger.Warn("no lyrics detected", logging.Args(logging.String("audio", audioPath))...)
		}

		segmenter := lyrics.Segmenter{
			PauseThreshold:       p.cfg.Segmentation.PauseThreshold,
			FallbackWordDuration: p.cfg.Segmentation.FallbackWordDuration,
		}
		records := segmenter.Segment(observations)
		return lyrics.Assemble(records, nil), &Summary{}, nil
	})
}

// AlignGuided runs the guided flow: force-align known lyric lines, map the
// observations 1:1 onto the expected words, repair timestamp anomalies, and
// place section labels.
func (p *Pipeline) AlignGuided(ctx context.Context, audioPath string, lyricLines []string, sectionCues map[int]string, outputPath, language string) (*Summary, error) {
	return p.run(ctx, "align", audioPath, outputPath, language, func(ctx context.Context, wav, runDir, lang string) (lyrics.Document, *Summary, error) {
		result, err := p.engine.Align(ctx, wav, lyricLines, runDir, lang)
		if err != nil {
			return lyrics.Document{}, nil, err
		}

		observations := flatten(result.Segments)
		if len(observations) == 0 {
			p.logger.Warn("no lyrics detected", logging.Args(logging.String("audio", audioPath))...)
		}

		mapper := lyrics.Mapper{SynthesisGap: p.cfg.Repair.SynthesisGap}
		records, synthesized := mapper.Map(lyricLines, observations)
		if synthesized > 0 {
			p.logger.Info("synthesized timestamps for unaligned words",
				logging.Args(logging.Int("count", synthesized))...)
		}

		repairer := lyrics.Repairer{
			MaxWordGap:      p.cfg.Repair.MaxWordGap,
			MaxLineGap:      p.cfg.Repair.MaxLineGap,
			WordNudge:       p.cfg.Repair.WordNudge,
			LineNudge:       p.cfg.Repair.LineNudge,
			LineGapEstimate: p.cfg.Repair.LineGapEstimate,
			MaxPasses:       p.cfg.Repair.MaxPasses,
		}
		repair := repairer.Repair(records)
		if !repair.Converged {
			p.logger.Warn("timestamp repair stopped at pass budget",
				logging.Args(logging.Int("passes", repair.Passes), logging.Int("fixed", repair.Fixed))...)
		}

		sections := lyrics.BuildSections(records, sectionCues, p.cfg.Sections.LeadSeconds)
		return lyrics.Assemble(records, sections), &Summary{
			Fixes:       repair.Fixed,
			Passes:      repair.Passes,
			Converged:   repair.Converged,
			Synthesized: synthesized,
		}, nil
	})
}

type runFunc func(ctx context.Context, wav, runDir, language string) (lyrics.Document, *Summary, error)

func (p *Pipeline) run(ctx context.Context, mode, audioPath, outputPath, language string, fn runFunc) (*Summary, error) {
	started := time.Now()
	runID := uuid.NewString()
	logger := p.logger.With(logging.String("run_id", runID))

	if _, err := os.Stat(audioPath); err != nil {
		return nil, fmt.Errorf("audio source: %w", err)
	}
	if err := os.MkdirAll(p.cfg.Paths.WorkDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure work dir: %w", err)
	}

	lock := flock.New(filepath.Join(p.cfg.Paths.WorkDir, "lyricsync.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire work lock: %w", err)
	}
	if !locked {
		return nil, ErrBusy
	}
	defer func() { _ = lock.Unlock() }()

	runDir := filepath.Join(p.cfg.Paths.WorkDir, runID)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure run dir: %w", err)
	}

	lang := language
	if lang == "" {
		lang = p.cfg.Aligner.Language
	}

	startAttrs := []logging.Attr{
		logging.String("mode", mode),
		logging.String("audio", audioPath),
		logging.String("model", p.engine.Model()),
	}
	if lang != "" {
		startAttrs = append(startAttrs, logging.String("language", langpkg.DisplayName(lang)))
	}
	logger.Info("starting run", logging.Args(startAttrs...)...)

	baseName := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	wav := filepath.Join(runDir, baseName+".wav")
	if err := p.engine.PrepareAudio(ctx, audioPath, wav); err != nil {
		return nil, fmt.Errorf("prepare audio: %w", err)
	}

	doc, summary, err := fn(ctx, wav, runDir, lang)
	if err != nil {
		return nil, err
	}

	resolved, err := p.resolveOutputPath(audioPath, outputPath)
	if err != nil {
		return nil, err
	}
	data, err := doc.Encode()
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	if err := fileutil.WriteFileAtomic(resolved, data, 0o644); err != nil {
		return nil, fmt.Errorf("write document: %w", err)
	}

	summary.RunID = runID
	summary.Mode = mode
	summary.OutputPath = resolved
	summary.TotalWords = doc.TotalWords
	summary.TotalLines = doc.TotalLines
	summary.Duration = time.Since(started)
	summary.Document = doc

	p.record(ctx, logger, audioPath, summary)

	logger.Info("run complete",
		logging.Args(
			logging.Int("words", summary.TotalWords),
			logging.Int("lines", summary.TotalLines),
			logging.Int("fixes", summary.Fixes),
			logging.Int("passes", summary.Passes),
			logging.String("output", resolved),
			logging.Duration("duration", summary.Duration),
		)...)

	return summary, nil
}

// record stores the run in history. Best-effort: a history failure never
// fails a run that already produced its document.
func (p *Pipeline) record(ctx context.Context, logger *slog.Logger, audioPath string, summary *Summary) {
	if p.history == nil {
		return
	}
	err := p.history.Record(ctx, runlog.Run{
		ID:          summary.RunID,
		Mode:        summary.Mode,
		AudioPath:   audioPath,
		OutputPath:  summary.OutputPath,
		TotalWords:  summary.TotalWords,
		TotalLines:  summary.TotalLines,
		Fixes:       summary.Fixes,
		Passes:      summary.Passes,
		Synthesized: summary.Synthesized,
		Duration:    summary.Duration,
	})
	if err != nil {
		logger.Warn("record run history", logging.Args(logging.Error(err))...)
	}
}

func (p *Pipeline) resolveOutputPath(audioPath, outputPath string) (string, error) {
	if outputPath != "" {
		abs, err := filepath.Abs(outputPath)
		if err != nil {
			return "", fmt.Errorf("resolve output path: %w", err)
		}
		return abs, nil
	}
	baseName := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	dir := p.cfg.Paths.OutputDir
	if dir == "" {
		abs, err := filepath.Abs(filepath.Dir(audioPath))
		if err != nil {
			return "", fmt.Errorf("resolve audio dir: %w", err)
		}
		dir = abs
	}
	return filepath.Join(dir, baseName+".lyrics.json"), nil
}

// flatten turns engine segments into the single ordered observation stream
// the core consumes. Words that trim to empty are dropped here so both
// flows see the same stream shape.
func flatten(segments []aligner.Segment) []lyrics.Observation {
	var observations []lyrics.Observation
	for _, seg := range segments {
		for _, word := range seg.Words {
			text := strings.TrimSpace(word.Word)
			if text == "" {
				continue
			}
			observations = append(observations, lyrics.Observation{
				Word:      text,
				Start:     word.Start,
				End:       word.End,
				SegmentID: seg.ID,
			})
		}
	}
	return observations
}
