package main

import (
	"strings"
	"testing"
)

func TestRenderTableAlignment(t *testing.T) {
	out := renderTable(
		[]string{"Line", "Start", "Text"},
		[][]string{
			{"0", "1.25", "hello world"},
			{"12", "63.4", "goodbye now"},
		},
		0, 1,
	)
	if !strings.Contains(out, "Line") || !strings.Contains(out, "goodbye now") {
		t.Fatalf("unexpected table output:\n%s", out)
	}
	// Right-aligned numeric columns end flush against the separator.
	if !strings.Contains(out, " 0 │") || !strings.Contains(out, " 12 │") {
		t.Errorf("index column should be right-aligned:\n%s", out)
	}
	if !strings.Contains(out, " 1.25 │") || !strings.Contains(out, " 63.4 │") {
		t.Errorf("start column should be right-aligned:\n%s", out)
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"only"}})
	if !strings.Contains(out, "only") {
		t.Fatalf("row content missing:\n%s", out)
	}
}

func TestRenderTableNoHeaders(t *testing.T) {
	if out := renderTable(nil, nil); out != "" {
		t.Errorf("got %q, want empty", out)
	}
}
