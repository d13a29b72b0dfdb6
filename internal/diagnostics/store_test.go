package diagnostics

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "diagnostics.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesSchema(t *testing.T) {
	s := openTestStore(t)
	if err := s.BeginRun("run-1", 42, 1); err != nil {
		t.Fatalf("BeginRun() error: %v", err)
	}
}

func TestRecordUnlockAndTimelineOrdering(t *testing.T) {
	s := openTestStore(t)
	if err := s.BeginRun("run-1", 1, 1); err != nil {
		t.Fatalf("BeginRun() error: %v", err)
	}

	if err := s.RecordUnlock("run-1", 10, "collect_wood", 1); err != nil {
		t.Fatalf("RecordUnlock() error: %v", err)
	}
	if err := s.RecordUnlock("run-1", 3, "wake_up", 1); err != nil {
		t.Fatalf("RecordUnlock() error: %v", err)
	}
	if err := s.RecordUnlock("run-1", 50, "defeat_zombie", 1); err != nil {
		t.Fatalf("RecordUnlock() error: %v", err)
	}

	events, err := s.Timeline("run-1")
	if err != nil {
		t.Fatalf("Timeline() error: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(events))
	}
	wantOrder := []string{"wake_up", "collect_wood", "defeat_zombie"}
	for i, name := range wantOrder {
		if events[i].Name != name {
			t.Fatalf("events[%d].Name = %q, want %q", i, events[i].Name, name)
		}
	}
}

func TestTimelineScopesByRunID(t *testing.T) {
	s := openTestStore(t)
	if err := s.BeginRun("run-a", 1, 1); err != nil {
		t.Fatalf("BeginRun() error: %v", err)
	}
	if err := s.BeginRun("run-b", 2, 1); err != nil {
		t.Fatalf("BeginRun() error: %v", err)
	}
	if err := s.RecordUnlock("run-a", 1, "collect_wood", 1); err != nil {
		t.Fatalf("RecordUnlock() error: %v", err)
	}
	if err := s.RecordUnlock("run-b", 1, "collect_stone", 1); err != nil {
		t.Fatalf("RecordUnlock() error: %v", err)
	}

	events, err := s.Timeline("run-a")
	if err != nil {
		t.Fatalf("Timeline() error: %v", err)
	}
	if len(events) != 1 || events[0].Name != "collect_wood" {
		t.Fatalf("Timeline(run-a) = %+v, want a single collect_wood event", events)
	}
}

func TestFinishRunRecordsTerminalStats(t *testing.T) {
	s := openTestStore(t)
	if err := s.BeginRun("run-1", 1, 1); err != nil {
		t.Fatalf("BeginRun() error: %v", err)
	}
	if err := s.FinishRun("run-1", 120, 0, 4.5, 0); err != nil {
		t.Fatalf("FinishRun() error: %v", err)
	}
	// FinishRun is an upsert; calling it twice for the same run must not error.
	if err := s.FinishRun("run-1", 130, 0, 5.0, 0); err != nil {
		t.Fatalf("second FinishRun() error: %v", err)
	}
}

func TestBeginRunUpsertsOnDuplicateRunID(t *testing.T) {
	s := openTestStore(t)
	if err := s.BeginRun("run-1", 1, 1); err != nil {
		t.Fatalf("BeginRun() error: %v", err)
	}
	if err := s.BeginRun("run-1", 1, 2); err != nil {
		t.Fatalf("second BeginRun() for the same run_id should upsert, got error: %v", err)
	}
}
