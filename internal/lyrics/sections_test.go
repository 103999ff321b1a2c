package lyrics

import "testing"

func TestBuildSectionsAnchoring(t *testing.T) {
	words := []WordRecord{
		{Word: "how'd", Time: 1.25, Line: 0},
		{Word: "it", Time: 1.60, Line: 0},
		{Word: "all", Time: 10.00, Line: 8},
		{Word: "that", Time: 10.30, Line: 8},
	}
	labels := map[int]string{0: "Verse 1", 8: "Pre-Chorus"}
	sections := BuildSections(words, labels, 0.5)
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if sections[0].Time != 0.75 || sections[0].Label != "Verse 1" {
		t.Errorf("sections[0] = %+v, want {0.75 Verse 1}", sections[0])
	}
	if sections[1].Time != 9.5 || sections[1].Label != "Pre-Chorus" {
		t.Errorf("sections[1] = %+v, want {9.5 Pre-Chorus}", sections[1])
	}
}

func TestBuildSectionsSkipsEmptyLines(t *testing.T) {
	words := []WordRecord{{Word: "only", Time: 2.0, Line: 1}}
	sections := BuildSections(words, map[int]string{0: "Intro", 1: "Verse 1", 5: "Outro"}, 0.5)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if sections[0].Label != "Verse 1" {
		t.Errorf("label = %q, want Verse 1", sections[0].Label)
	}
}

func TestBuildSectionsOrderedByLineIndex(t *testing.T) {
	words := []WordRecord{
		{Word: "a", Time: 1.0, Line: 0},
		{Word: "b", Time: 5.0, Line: 3},
		{Word: "c", Time: 9.0, Line: 7},
	}
	labels := map[int]string{7: "Chorus", 0: "Verse 1", 3: "Pre-Chorus"}
	sections := BuildSections(words, labels, 0.5)
	want := []string{"Verse 1", "Pre-Chorus", "Chorus"}
	for i, label := range want {
		if sections[i].Label != label {
			t.Errorf("sections[%d].Label = %q, want %q", i, sections[i].Label, label)
		}
	}
}

func TestBuildSectionsNoLabels(t *testing.T) {
	if sections := BuildSections([]WordRecord{{Word: "a", Time: 1.0}}, nil, 0.5); sections != nil {
		t.Errorf("got %+v, want nil", sections)
	}
}
