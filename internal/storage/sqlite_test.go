package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Player: "ann", Score: 3, Year: 2021, Ticks: 960},
		{Player: "bob", Score: 7, Year: 2024, Ticks: 1010, Source: "ssh"},
		{Player: "ann", Score: 7, Year: 2030, Ticks: 1100},
		{Player: "cid", Score: 0, Year: 1975, Ticks: 280},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	// Ties on score are broken by the later year.
	if top[0].Player != "ann" || top[0].Year != 2030 {
		t.Errorf("top[0] = %+v", top[0])
	}
	if top[1].Player != "bob" || top[1].Source != "ssh" {
		t.Errorf("top[1] = %+v", top[1])
	}
	if top[2].Score != 3 {
		t.Errorf("top[2] = %+v", top[2])
	}
	if top[0].Source != "local" {
		t.Errorf("default source = %q, want local", top[0].Source)
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}

	mine, err := store.PlayerRuns("ann", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 2 || mine[0].Score != 7 {
		t.Errorf("PlayerRuns(ann) = %+v", mine)
	}

	recent, err := store.RecentRuns(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 1 || recent[0].Player != "cid" {
		t.Errorf("RecentRuns(1) = %+v", recent)
	}
}

func TestStoreBestAndStats(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil || best != 0 {
		t.Fatalf("BestScore() on empty = %d, %v", best, err)
	}
	stats, err := store.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveRun(Run{Player: "a", Score: 4, Year: 2001, Ticks: 660})
	store.SaveRun(Run{Player: "b", Score: 2, Year: 2019, Ticks: 930})

	if best, _ := store.BestScore(); best != 4 {
		t.Errorf("BestScore() = %d, want 4", best)
	}
	if year, _ := store.BestYear(); year != 2019 {
		t.Errorf("BestYear() = %d, want 2019", year)
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Runs != 2 || stats.BestScore != 4 || stats.BestYear != 2019 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 3 {
		t.Errorf("AvgScore = %v, want 3", stats.AvgScore)
	}
	if stats.TotalTicks != 1590 {
		t.Errorf("TotalTicks = %d, want 1590", stats.TotalTicks)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(Run{Player: "a", Score: 1, Year: 1990, Ticks: 500})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	store.SaveRun(Run{Player: "a", Score: 9, Year: 2022, Ticks: 990})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if best, _ := store.BestScore(); best != 9 {
		t.Errorf("BestScore() after reopen = %d, want 9", best)
	}
}
