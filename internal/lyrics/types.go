package lyrics

import "math"

// Observation is a single word hypothesis reported by the alignment engine.
// SegmentID is the engine's coarse grouping and is only meaningful for free
// transcription; forced alignment consumers ignore it.
type Observation struct {
	Word      string
	Start     float64
	End       float64
	SegmentID int
}

// WordRecord is one display word. Time is the playback timestamp in seconds,
// Line indexes the display line the word belongs to. Records always travel as
// an ordered sequence whose Line values are non-decreasing.
type WordRecord struct {
	Word string  `json:"word"`
	Time float64 `json:"time"`
	Line int     `json:"line"`
}

// Section is a human-readable section marker ("Chorus", "Verse 1") anchored
// slightly before its line's first word.
type Section struct {
	Time  float64 `json:"time"`
	Label string  `json:"label"`
}

// Document is the persisted output consumed wholesale by a visualizer.
type Document struct {
	Words      []WordRecord      `json:"words"`
	Lines      map[string]string `json:"lines"`
	Sections   []Section         `json:"sections,omitempty"`
	TotalWords int               `json:"totalWords"`
	TotalLines int               `json:"totalLines"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
