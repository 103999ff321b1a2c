package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lyricsync/internal/config"
	"lyricsync/internal/pipeline"
)

func newAlignCommand(ctx *commandContext) *cobra.Command {
	var lyricsPath string
	var sectionsPath string
	var outputPath string
	var language string

	cmd := &cobra.Command{
		Use:   "align <audio>",
		Short: "Align known lyrics against sung audio",
		Long: "Align takes the ground-truth lyric text, force-aligns it against the\n" +
			"audio, repairs timestamp anomalies, and writes a word-timestamped lyric\n" +
			"JSON document. Every expected word appears in the output even when the\n" +
			"engine failed to place it.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			audioPath, err := resolveAudioArg(args[0])
			if err != nil {
				return err
			}
			lyricLines, err := loadLyricLines(lyricsPath)
			if err != nil {
				return err
			}

			var sectionCues map[int]string
			if strings.TrimSpace(sectionsPath) != "" {
				sectionCues, err = config.LoadSectionCues(sectionsPath)
				if err != nil {
					return fmt.Errorf("load section cues: %w", err)
				}
			}

			return ctx.withPipeline(func(cfg *config.Config, p *pipeline.Pipeline) error {
				summary, err := p.AlignGuided(cmd.Context(), audioPath, lyricLines, sectionCues, outputPath, language)
				if err != nil {
					if errors.Is(err, pipeline.ErrBusy) {
						return fmt.Errorf("another run is already in progress in %s", cfg.Paths.WorkDir)
					}
					return err
				}
				printSummary(cmd, summary)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&lyricsPath, "lyrics", "l", "", "Ground-truth lyric text file, one line per lyric line (required)")
	cmd.Flags().StringVarP(&sectionsPath, "sections", "s", "", "Section cue file mapping line indexes to labels")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output document path (default: <audio>.lyrics.json)")
	cmd.Flags().StringVar(&language, "language", "", "Language hint, name or ISO code (default: auto-detect)")
	_ = cmd.MarkFlagRequired("lyrics")
	return cmd
}

// loadLyricLines reads the ground-truth text verbatim. Blank lines are kept
// so line indexes match the source file; trailing whitespace is trimmed.
func loadLyricLines(path string) ([]string, error) {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve lyrics path: %w", err)
	}
	file, err := os.Open(expanded)
	if err != nil {
		return nil, fmt.Errorf("open lyrics file: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), " \t\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lyrics file: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("lyrics file %s is empty", expanded)
	}
	return lines, nil
}
