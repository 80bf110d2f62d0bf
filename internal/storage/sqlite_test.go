package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/boxworld/internal/engine"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestRecordAndRecent(t *testing.T) {
	store := openTest(t)

	events := []engine.Event{
		{Tick: 1, Kind: engine.EventLevel, Subject: "meadow"},
		{Tick: 40, Kind: engine.EventReward, Subject: "Brass key"},
		{Tick: 90, Kind: engine.EventConversation, Subject: "Sage"},
	}
	for _, ev := range events {
		if _, err := store.Record("meadow", "s1", ev); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}
	if _, err := store.Record("other", "s2", events[0]); err != nil {
		t.Fatalf("Record() failed: %v", err)
	}

	got, err := store.Recent("meadow", 10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(got))
	}
	// Newest first
	if got[0].Kind != engine.EventConversation || got[0].Subject != "Sage" || got[0].Tick != 90 {
		t.Errorf("newest entry = %+v", got[0])
	}
	if got[2].Kind != engine.EventLevel {
		t.Errorf("oldest entry = %+v", got[2])
	}
	if got[0].Session != "s1" || got[0].Pack != "meadow" {
		t.Errorf("entry identity = %+v", got[0])
	}

	limited, _ := store.Recent("meadow", 2)
	if len(limited) != 2 {
		t.Errorf("limit ignored: %d entries", len(limited))
	}
}

func TestSessionOrder(t *testing.T) {
	store := openTest(t)

	store.Record("meadow", "a", engine.Event{Tick: 1, Kind: engine.EventLevel, Subject: "meadow"})
	store.Record("meadow", "b", engine.Event{Tick: 1, Kind: engine.EventLevel, Subject: "meadow"})
	store.Record("meadow", "a", engine.Event{Tick: 5, Kind: engine.EventFinish, Subject: "meadow"})

	got, err := store.Session("a")
	if err != nil {
		t.Fatalf("Session() failed: %v", err)
	}
	if len(got) != 2 || got[0].Tick != 1 || got[1].Kind != engine.EventFinish {
		t.Errorf("Session(a) = %+v", got)
	}
}

func TestCountsAndClear(t *testing.T) {
	store := openTest(t)

	store.Record("meadow", "a", engine.Event{Kind: engine.EventReward, Subject: "key"})
	store.Record("meadow", "a", engine.Event{Kind: engine.EventReward, Subject: "lamp"})
	store.Record("meadow", "a", engine.Event{Kind: engine.EventLevel, Subject: "cellar"})

	counts, err := store.Counts("meadow")
	if err != nil {
		t.Fatalf("Counts() failed: %v", err)
	}
	want := []KindCount{{engine.EventLevel, 1}, {engine.EventReward, 2}}
	if len(counts) != len(want) {
		t.Fatalf("Counts() = %+v, want %+v", counts, want)
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("Counts()[%d] = %+v, want %+v", i, counts[i], want[i])
		}
	}

	if err := store.Clear("meadow"); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	got, _ := store.Recent("meadow", 10)
	if len(got) != 0 {
		t.Errorf("Expected empty journal after Clear, got %d", len(got))
	}
}

func TestPersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Record("meadow", "a", engine.Event{Tick: 3, Kind: engine.EventReward, Subject: "key"})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	got, _ := store.Recent("meadow", 10)
	if len(got) != 1 || got[0].Subject != "key" {
		t.Errorf("entries after reopen = %+v", got)
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}
