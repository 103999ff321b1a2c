package aligner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const engineFixture = `{
  "text": "hello world",
  "segments": [
    {"id": 0, "text": "hello world", "start": 0.0, "end": 0.6,
     "words": [{"word": "hello", "start": 0.0, "end": 0.4},
               {"word": "world", "start": 0.45, "end": 0.6}]},
    {"id": 1, "text": "goodbye now", "start": 5.6, "end": 6.4,
     "words": [{"word": "goodbye", "start": 5.6, "end": 6.0},
               {"word": "now", "start": 6.1, "end": 6.4}]}
  ]
}`

// fixtureRunner records invocations and writes the fixture wherever the
// engine was asked to put its JSON output.
type fixtureRunner struct {
	t     *testing.T
	calls [][]string
}

func (r *fixtureRunner) run(_ context.Context, name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	for i, arg := range args {
		if arg == "--output" && i+1 < len(args) {
			if err := os.WriteFile(args[i+1], []byte(engineFixture), 0o644); err != nil {
				r.t.Fatalf("write fixture: %v", err)
			}
		}
	}
	return nil
}

func newTestService(t *testing.T) (*Service, *fixtureRunner) {
	t.Helper()
	svc := NewService(Config{Command: "uvx", Model: "base"}, "ffmpeg")
	runner := &fixtureRunner{t: t}
	svc.WithCommandRunner(runner.run)
	return svc, runner
}

func argsContain(args []string, flag, value string) bool {
	for i, arg := range args {
		if arg == flag && i+1 < len(args) && args[i+1] == value {
			return true
		}
	}
	return false
}

func TestTranscribeParsesSegments(t *testing.T) {
	svc, runner := newTestService(t)
	dir := t.TempDir()

	result, err := svc.Transcribe(context.Background(), filepath.Join(dir, "song.mp3"), dir, "en", false)
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if len(runner.calls) != 1 {
		t.Fatalf("engine invoked %d times, want 1", len(runner.calls))
	}
	if len(result.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(result.Segments))
	}
	if result.Segments[1].ID != 1 || result.Segments[1].Words[0].Word != "goodbye" {
		t.Errorf("segments = %+v", result.Segments)
	}

	call := runner.calls[0]
	if call[0] != "uvx" || call[1] != EnginePackage {
		t.Errorf("call = %v", call[:2])
	}
	if !argsContain(call, "--model", "base") {
		t.Errorf("missing model flag in %v", call)
	}
	if !argsContain(call, "--language", "en") {
		t.Errorf("missing language flag in %v", call)
	}
}

func TestTranscribeStabilizeRunsEngineTwice(t *testing.T) {
	svc, runner := newTestService(t)
	dir := t.TempDir()

	_, err := svc.Transcribe(context.Background(), filepath.Join(dir, "song.mp3"), dir, "", true)
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if len(runner.calls) != 2 {
		t.Fatalf("engine invoked %d times, want 2 (transcribe + stabilize)", len(runner.calls))
	}

	second := runner.calls[1]
	transcriptPath := filepath.Join(dir, "transcript.txt")
	if !argsContain(second, "--align", transcriptPath) {
		t.Errorf("stabilize pass should align the transcript, got %v", second)
	}
	data, err := os.ReadFile(transcriptPath)
	if err != nil {
		t.Fatalf("read transcript: %v", err)
	}
	if !strings.Contains(string(data), "hello world") {
		t.Errorf("transcript = %q", data)
	}
}

func TestAlignWritesLyricsAndAligns(t *testing.T) {
	svc, runner := newTestService(t)
	dir := t.TempDir()

	lyrics := []string{"hello world", "goodbye now"}
	result, err := svc.Align(context.Background(), filepath.Join(dir, "song.mp3"), lyrics, dir, "korean")
	if err != nil {
		t.Fatalf("align: %v", err)
	}
	if len(result.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(result.Segments))
	}

	call := runner.calls[0]
	lyricsPath := filepath.Join(dir, "lyrics.txt")
	if !argsContain(call, "--align", lyricsPath) {
		t.Errorf("missing align flag in %v", call)
	}
	if !argsContain(call, "--language", "ko") {
		t.Errorf("language hint should normalize to ISO 639-1, got %v", call)
	}
	data, err := os.ReadFile(lyricsPath)
	if err != nil {
		t.Fatalf("read lyrics: %v", err)
	}
	if string(data) != "hello world\ngoodbye now" {
		t.Errorf("lyrics file = %q", data)
	}
}

func TestAlignRequiresLyrics(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Align(context.Background(), "song.mp3", nil, t.TempDir(), ""); err == nil {
		t.Fatal("expected error for empty lyrics")
	}
}

func TestPrepareAudioArgs(t *testing.T) {
	svc, runner := newTestService(t)
	if err := svc.PrepareAudio(context.Background(), "in.mp3", "out.wav"); err != nil {
		t.Fatalf("prepare audio: %v", err)
	}
	call := runner.calls[0]
	if call[0] != "ffmpeg" {
		t.Errorf("binary = %q", call[0])
	}
	for _, want := range []string{"-ac", "1", "-ar", "16000", "out.wav"} {
		found := false
		for _, arg := range call {
			if arg == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing %q in %v", want, call)
		}
	}
}

func TestEngineFailureMarksCollaboratorUnavailable(t *testing.T) {
	svc, _ := newTestService(t)
	svc.WithCommandRunner(func(_ context.Context, _ string, _ ...string) error {
		return errors.New("uvx: command exited 1")
	})

	if _, err := svc.Transcribe(context.Background(), "song.mp3", t.TempDir(), "", false); !errors.Is(err, ErrCollaboratorUnavailable) {
		t.Errorf("transcribe error should wrap ErrCollaboratorUnavailable, got %v", err)
	}
	if err := svc.PrepareAudio(context.Background(), "in.mp3", "out.wav"); !errors.Is(err, ErrCollaboratorUnavailable) {
		t.Errorf("prepare audio error should wrap ErrCollaboratorUnavailable, got %v", err)
	}
}

func TestLoadSegmentsRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadSegments(path); err == nil {
		t.Fatal("expected parse error")
	}
}
