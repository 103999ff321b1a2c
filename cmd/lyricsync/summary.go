package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"lyricsync/internal/pipeline"
)

const (
	previewLineLimit = 8
	timePrecision    = 10 * time.Millisecond
)

func printSummary(cmd *cobra.Command, summary *pipeline.Summary) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Wrote %s\n", summary.OutputPath)
	fmt.Fprintf(out, "%d words across %d lines in %s\n",
		summary.TotalWords, summary.TotalLines, summary.Duration.Round(timePrecision))
	if summary.Fixes > 0 {
		fmt.Fprintf(out, "Repaired %d timestamp anomalies in %d passes\n", summary.Fixes, summary.Passes)
	}
	if summary.Synthesized > 0 {
		fmt.Fprintf(out, "Synthesized timing for %d words the engine could not place\n", summary.Synthesized)
	}
	if !summary.Converged {
		fmt.Fprintln(out, "Warning: timestamp repair hit its pass budget before settling")
	}

	if stdoutIsTerminal() {
		if preview := renderPreview(summary); preview != "" {
			fmt.Fprintln(out, preview)
		}
	}
}

// renderPreview tabulates the first few lines with their start times.
func renderPreview(summary *pipeline.Summary) string {
	doc := summary.Document
	if len(doc.Lines) == 0 {
		return ""
	}

	firstTime := make(map[int]float64)
	for _, word := range doc.Words {
		if _, seen := firstTime[word.Line]; !seen {
			firstTime[word.Line] = word.Time
		}
	}

	indexes := make([]int, 0, len(doc.Lines))
	for key := range doc.Lines {
		idx, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	rows := make([][]string, 0, previewLineLimit)
	for _, idx := range indexes {
		if len(rows) == previewLineLimit {
			rows = append(rows, []string{"...", "", ""})
			break
		}
		start := "-"
		if t, ok := firstTime[idx]; ok {
			start = fmt.Sprintf("%.2f", t)
		}
		rows = append(rows, []string{strconv.Itoa(idx), start, doc.Lines[strconv.Itoa(idx)]})
	}

	return renderTable([]string{"Line", "Start", "Text"}, rows, 0, 1)
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
