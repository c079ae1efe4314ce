package history_test

import (
	"context"
	"testing"

	"specsort/internal/history"
	"specsort/internal/testsupport"
)

func TestBeginFinishRun(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	run, err := store.BeginRun(context.Background(), "/data/raman")
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	if run.ID == "" {
		t.Fatal("expected generated run id")
	}

	run.Moved = 4
	run.Deleted = 1
	run.Failed = 2
	if err := store.FinishRun(context.Background(), run); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}

	got, err := store.GetRun(context.Background(), run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got.Moved != 4 || got.Deleted != 1 || got.Failed != 2 {
		t.Errorf("counters = %d/%d/%d", got.Moved, got.Deleted, got.Failed)
	}
	if got.FinishedAt.IsZero() {
		t.Error("expected finished_at to be set")
	}
	if got.Root != "/data/raman" {
		t.Errorf("Root = %q", got.Root)
	}
}

func TestFilesForRun(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	run, err := store.BeginRun(context.Background(), "/data/raman")
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}

	records := []history.FileRecord{
		{RunID: run.ID, Name: "s0p0-a1-t1_1.txt", Destination: "s0p0/t1/s0p0-a1-t1.txt", Action: history.ActionMoved},
		{RunID: run.ID, Name: "calibration.SPE", Action: history.ActionDeleted},
		{RunID: run.ID, Name: "broken_name", Action: history.ActionFailed, Error: "no hyphen"},
	}
	for _, rec := range records {
		if err := store.AddFile(context.Background(), rec); err != nil {
			t.Fatalf("AddFile(%q): %v", rec.Name, err)
		}
	}

	got, err := store.FilesForRun(context.Background(), run.ID)
	if err != nil {
		t.Fatalf("FilesForRun: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Destination != "s0p0/t1/s0p0-a1-t1.txt" {
		t.Errorf("destination = %q", got[0].Destination)
	}
	if got[2].Action != history.ActionFailed || got[2].Error == "" {
		t.Errorf("failed record = %+v", got[2])
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	first, err := store.BeginRun(context.Background(), "/a")
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	second, err := store.BeginRun(context.Background(), "/b")
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}

	runs, err := store.ListRuns(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("len = %d, want 2", len(runs))
	}
	if runs[0].ID != second.ID || runs[1].ID != first.ID {
		t.Errorf("order = %s, %s", runs[0].ID, runs[1].ID)
	}
}

func TestOpenTwiceKeepsSchema(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	if _, err := store.BeginRun(context.Background(), "/a"); err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	runs, err := reopened.ListRuns(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListRuns after reopen: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("len = %d, want 1", len(runs))
	}
}
