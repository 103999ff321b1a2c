package aligner

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// PrepareAudio extracts the audio stream from a source file into a mono
// 16 kHz WAV suitable for the alignment engine. Uses the service's command
// runner if configured.
func (s *Service) PrepareAudio(ctx context.Context, source, dest string) error {
	args := buildFFmpegExtractArgs(source, dest)
	if s.commandRunner != nil {
		if err := s.commandRunner(ctx, s.ffmpegBinary, args...); err != nil {
			return fmt.Errorf("ffmpeg extract: %w: %w", ErrCollaboratorUnavailable, err)
		}
		return nil
	}
	cmd := exec.CommandContext(ctx, s.ffmpegBinary, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg extract: %w: %w: %s", ErrCollaboratorUnavailable, err, strings.TrimSpace(string(output)))
	}
	return nil
}

func buildFFmpegExtractArgs(source, dest string) []string {
	return []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", source,
		"-vn",
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "pcm_s16le",
		dest,
	}
}
