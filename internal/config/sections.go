package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// SectionCue maps a lyric line index to a human-readable section label.
// Cue files are caller-supplied because section structure is specific to one
// song; it has no general validity.
type SectionCue struct {
	Line  int    `toml:"line"`
	Label string `toml:"label"`
}

type sectionCueFile struct {
	Sections []SectionCue `toml:"sections"`
}

// LoadSectionCues parses a TOML cue file of the form
//
//	[[sections]]
//	line = 0
//	label = "Verse 1"
//
// into a line-index to label map. Duplicate line indices are rejected since a
// line anchors at most one label.
func LoadSectionCues(path string) (map[int]string, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("read section cues: %w", err)
	}
	var file sectionCueFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse section cues: %w", err)
	}
	cues := make(map[int]string, len(file.Sections))
	for _, cue := range file.Sections {
		if cue.Line < 0 {
			return nil, fmt.Errorf("section cues: line %d must not be negative", cue.Line)
		}
		label := strings.TrimSpace(cue.Label)
		if label == "" {
			return nil, fmt.Errorf("section cues: line %d has an empty label", cue.Line)
		}
		if _, dup := cues[cue.Line]; dup {
			return nil, fmt.Errorf("section cues: line %d is labeled twice", cue.Line)
		}
		cues[cue.Line] = label
	}
	return cues, nil
}
