package deps

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lyricsync/internal/aligner"
)

func stubBinary(t *testing.T, name string) {
	t.Helper()
	binDir := t.TempDir()
	target := filepath.Join(binDir, name)
	if err := os.WriteFile(target, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	t.Setenv("PATH", binDir)
}

func TestCheckBinaries(t *testing.T) {
	stubBinary(t, "uvx")

	statuses := CheckBinaries([]Requirement{
		{Name: "aligner runner", Command: "uvx"},
		{Name: "ffmpeg", Command: "ffmpeg"},
		{Name: "unset", Command: ""},
	})
	if !statuses[0].Available {
		t.Errorf("stubbed uvx should be available: %+v", statuses[0])
	}
	if statuses[1].Available {
		t.Errorf("ffmpeg should be missing with PATH stubbed: %+v", statuses[1])
	}
	if statuses[2].Available || statuses[2].Detail != "command not configured" {
		t.Errorf("empty command: %+v", statuses[2])
	}
}

func TestMissing(t *testing.T) {
	statuses := []Status{
		{Name: "ffmpeg", Available: true},
		{Name: "extras", Optional: true, Available: false, Detail: "binary not found"},
	}
	if err := Missing(statuses); err != nil {
		t.Errorf("optional miss should not error: %v", err)
	}

	statuses = append(statuses, Status{Name: "aligner runner", Detail: `binary "uvx" not found`})
	err := Missing(statuses)
	if err == nil {
		t.Fatal("required miss should error")
	}
	if !errors.Is(err, aligner.ErrCollaboratorUnavailable) {
		t.Errorf("missing binary should report the collaborator as unavailable, got %v", err)
	}
}
