package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lyricsync/internal/config"
	"lyricsync/internal/pipeline"
)

func newTranscribeCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var language string

	cmd := &cobra.Command{
		Use:   "transcribe <audio>",
		Short: "Transcribe sung audio into a timed lyric document",
		Long: "Transcribe recognizes the words in the audio without a reference text,\n" +
			"groups them into lines using pauses, and writes a word-timestamped\n" +
			"lyric JSON document.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			audioPath, err := resolveAudioArg(args[0])
			if err != nil {
				return err
			}
			return ctx.withPipeline(func(cfg *config.Config, p *pipeline.Pipeline) error {
				summary, err := p.Transcribe(cmd.Context(), audioPath, outputPath, language)
				if err != nil {
					return err
				}
				printSummary(cmd, summary)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output document path (default: <audio>.lyrics.json)")
	cmd.Flags().StringVar(&language, "language", "", "Language hint, name or ISO code (default: auto-detect)")
	return cmd
}

func resolveAudioArg(arg string) (string, error) {
	absPath, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("audio file does not exist: %s", absPath)
		}
		return "", fmt.Errorf("inspect audio file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", absPath)
	}
	return absPath, nil
}
