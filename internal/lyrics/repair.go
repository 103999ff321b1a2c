package lyrics

// Repairer corrects local timestamp anomalies that forced alignment
// introduces when acoustic matching is ambiguous (repeated words, melodic
// runs). Gap thresholds are exclusive: a gap of exactly MaxWordGap or
// MaxLineGap is not an anomaly.
type Repairer struct {
	// MaxWordGap bounds the plausible gap between adjacent words on the
	// same line.
	MaxWordGap float64
	// MaxLineGap bounds the plausible gap across a line boundary.
	MaxLineGap float64
	// WordNudge replaces an anomalous within-line gap; approximates average
	// syllable spacing.
	WordNudge float64
	// LineNudge replaces a line start that regressed behind the previous
	// line's last word.
	LineNudge float64
	// LineGapEstimate replaces a runaway cross-line gap.
	LineGapEstimate float64
	// MaxPasses bounds the iteration; outstanding anomalies past the budget
	// are accepted as-is.
	MaxPasses int
}

// RepairResult reports repair diagnostics.
type RepairResult struct {
	// Fixed is the total number of timestamps rewritten across all passes.
	Fixed int
	// Passes is the number of passes run, including the clean final pass.
	Passes int
	// Converged is false only when MaxPasses elapsed with the last pass
	// still rewriting timestamps.
	Converged bool
}

// Repair rewrites anomalous timestamps in place and reports what it did.
// Each pass walks strictly left to right so position i is always evaluated
// against the possibly already-fixed value at i-1. Passes repeat until one
// fixes nothing or MaxPasses elapse; hitting the budget is not an error.
func (r Repairer) Repair(words []WordRecord) RepairResult {
	var res RepairResult
	for pass := 0; pass < r.MaxPasses; pass++ {
		n := r.runPass(words)
		res.Fixed += n
		res.Passes++
		if n == 0 {
			res.Converged = true
			break
		}
	}
	return res
}

func (r Repairer) runPass(words []WordRecord) int {
	fixed := 0
	for i := 1; i < len(words); i++ {
		prev := words[i-1].Time
		cur := words[i].Time
		if words[i].Line == words[i-1].Line {
			if cur < prev || cur-prev > r.MaxWordGap {
				words[i].Time = round2(prev + r.WordNudge)
				fixed++
			}
			continue
		}
		switch {
		case cur < prev:
			words[i].Time = round2(prev + r.LineNudge)
			fixed++
		case cur-prev > r.MaxLineGap:
			words[i].Time = round2(prev + r.LineGapEstimate)
			fixed++
		}
	}
	return fixed
}
