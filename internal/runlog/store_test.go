package runlog

import (
	"context"
	"testing"
	"time"
)

func TestRecordAndListRecent(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	runs := []Run{
		{ID: "run-1", Mode: "transcribe", AudioPath: "a.mp3", OutputPath: "a.json", TotalWords: 10, TotalLines: 2, Duration: 4 * time.Second, CreatedAt: base},
		{ID: "run-2", Mode: "align", AudioPath: "b.mp3", OutputPath: "b.json", TotalWords: 148, TotalLines: 41, Fixes: 3, Passes: 2, Synthesized: 1, Duration: 9 * time.Second, CreatedAt: base.Add(time.Minute)},
	}
	for _, run := range runs {
		if err := store.Record(ctx, run); err != nil {
			t.Fatalf("record %s: %v", run.ID, err)
		}
	}

	listed, err := store.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("got %d runs, want 2", len(listed))
	}
	if listed[0].ID != "run-2" {
		t.Errorf("newest first: got %s", listed[0].ID)
	}
	got := listed[0]
	if got.Mode != "align" || got.Fixes != 3 || got.Passes != 2 || got.Synthesized != 1 {
		t.Errorf("run = %+v", got)
	}
	if got.Duration != 9*time.Second {
		t.Errorf("duration = %v", got.Duration)
	}
	if !got.CreatedAt.Equal(base.Add(time.Minute)) {
		t.Errorf("created_at = %v", got.CreatedAt)
	}
}

func TestListRecentLimit(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		run := Run{ID: string(rune('a' + i)), Mode: "align", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := store.Record(ctx, run); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	listed, err := store.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 {
		t.Errorf("got %d runs, want 2", len(listed))
	}
}

func TestReopenExistingDatabase(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Record(context.Background(), Run{ID: "persisted", Mode: "align"}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	listed, err := reopened.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != "persisted" {
		t.Errorf("listed = %+v", listed)
	}
}
