package journal_test

import (
	"path/filepath"
	"testing"
	"time"

	"bracefix/internal/journal"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	store := journal.NewFileStore(path)

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load() on missing file error = %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("Load() on missing file = %v, want empty", entries)
	}

	first := journal.Entry{
		File:    "shared/chamber-members.ts",
		FixedAt: time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC),
		Inserts: 2,
		Deletes: 1,
		Backup:  "shared/chamber-members.ts.bak",
	}
	if err := store.Append(first); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	second := journal.Entry{
		File:    "other.ts",
		FixedAt: time.Date(2026, 8, 24, 11, 0, 0, 0, time.UTC),
		Inserts: 1,
	}
	if err := store.Append(second); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	entries, err = store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Load() returned %d entries, want 2", len(entries))
	}
	if entries[0].File != first.File || entries[0].Inserts != first.Inserts || entries[0].Backup != first.Backup {
		t.Errorf("first entry = %+v, want %+v", entries[0], first)
	}
	if !entries[0].FixedAt.Equal(first.FixedAt) {
		t.Errorf("first entry FixedAt = %v, want %v", entries[0].FixedAt, first.FixedAt)
	}
}

func TestMemStore(t *testing.T) {
	store := journal.NewMemStore()
	if err := store.Append(journal.Entry{File: "a.ts"}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(entries) != 1 || entries[0].File != "a.ts" {
		t.Errorf("Load() = %v, want one entry for a.ts", entries)
	}

	// Mutating the returned slice must not affect the store.
	entries[0].File = "mutated"
	entries, _ = store.Load()
	if entries[0].File != "a.ts" {
		t.Error("Load() returned a slice aliasing internal state")
	}
}

func TestLastFor(t *testing.T) {
	entries := []journal.Entry{
		{File: "a.ts", Inserts: 1},
		{File: "b.ts", Inserts: 2},
		{File: "a.ts", Inserts: 3},
	}

	e, ok := journal.LastFor(entries, "a.ts")
	if !ok || e.Inserts != 3 {
		t.Errorf("LastFor(a.ts) = %+v, %v; want most recent entry", e, ok)
	}
	if _, ok := journal.LastFor(entries, "c.ts"); ok {
		t.Error("LastFor(c.ts) = ok, want not found")
	}
}
