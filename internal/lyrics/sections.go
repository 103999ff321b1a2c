package lyrics

import "sort"

// BuildSections attaches caller-supplied labels to lines. Each section is
// anchored lead seconds before its line's first word so a display can
// pre-announce it. Labels mapped to lines with no word records are silently
// skipped. The result is ordered by line index, ascending.
func BuildSections(words []WordRecord, labels map[int]string, lead float64) []Section {
	if len(labels) == 0 {
		return nil
	}
	firstTime := make(map[int]float64, len(labels))
	for _, w := range words {
		if _, seen := firstTime[w.Line]; !seen {
			firstTime[w.Line] = w.Time
		}
	}
	indices := make([]int, 0, len(labels))
	for line := range labels {
		indices = append(indices, line)
	}
	sort.Ints(indices)
	sections := make([]Section, 0, len(indices))
	for _, line := range indices {
		t, ok := firstTime[line]
		if !ok {
			continue
		}
		sections = append(sections, Section{Time: round2(t - lead), Label: labels[line]})
	}
	return sections
}
