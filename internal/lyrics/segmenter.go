package lyrics

import "strings"

// Segmenter assigns line indices to a free-transcription word stream.
//
// Alignment engines over-segment, so a segment boundary alone is not enough
// to start a new display line. A break requires a segment change together
// with a pause longer than PauseThreshold between the previous word's
// effective end and the next word's start. A gap of exactly PauseThreshold
// does not break.
type Segmenter struct {
	// PauseThreshold is the minimum silence in seconds for a segment
	// boundary to become a line break.
	PauseThreshold float64
	// FallbackWordDuration estimates a word's end when the engine reported
	// none (end <= start).
	FallbackWordDuration float64
}

// Segment converts observations into word records with line indices. Words
// that trim to empty are dropped. Timestamps are taken from the raw
// observation starts, rounded to 2 decimals; no repair pass is applied.
func (s Segmenter) Segment(observations []Observation) []WordRecord {
	records := make([]WordRecord, 0, len(observations))
	line := 0
	prevSegment := 0
	prevEnd := 0.0
	for _, obs := range observations {
		word := strings.TrimSpace(obs.Word)
		if word == "" {
			continue
		}
		start := round2(obs.Start)
		if len(records) > 0 && obs.SegmentID != prevSegment && start-prevEnd > s.PauseThreshold {
			line++
		}
		records = append(records, WordRecord{Word: word, Time: start, Line: line})
		prevSegment = obs.SegmentID
		if obs.End > obs.Start {
			prevEnd = round2(obs.End)
		} else {
			prevEnd = round2(obs.Start + s.FallbackWordDuration)
		}
	}
	return records
}
