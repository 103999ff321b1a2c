package lyrics

import "strings"

// Mapper pairs known lyric text with aligned observations. The ground-truth
// lines drive the output: one record per expected word, consuming one
// observation per word in strict order regardless of text mismatch. The
// expected spelling always wins; the observation contributes only its start
// time.
type Mapper struct {
	// SynthesisGap spaces out expected words left without an observation.
	SynthesisGap float64
}

// Map walks the ground-truth lines (split on whitespace) and assigns each
// expected word the start time of the corresponding observation, rounded to
// 2 decimals. When observations run out, remaining words are synthesized at
// SynthesisGap intervals after the last assigned time; if the very first
// word has no observation its time is 0. The second return value counts the
// synthesized timestamps.
//
// The record count always equals the total expected word count, independent
// of how many observations the engine returned.
func (m Mapper) Map(lines []string, observed []Observation) ([]WordRecord, int) {
	records := make([]WordRecord, 0, len(observed))
	synthesized := 0
	next := 0
	for lineIdx, text := range lines {
		for _, expected := range strings.Fields(text) {
			var t float64
			if next < len(observed) {
				t = round2(observed[next].Start)
			} else {
				if len(records) > 0 {
					t = round2(records[len(records)-1].Time + m.SynthesisGap)
				}
				synthesized++
			}
			records = append(records, WordRecord{Word: expected, Time: t, Line: lineIdx})
			next++
		}
	}
	return records, synthesized
}
