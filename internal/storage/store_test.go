package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/exosim/internal/catalog"
	"github.com/san-kum/exosim/internal/system"
)

func buildTestSystem(t *testing.T) *system.System {
	t.Helper()
	sys, err := system.Build("Store-1", []catalog.Planet{
		{Name: "Store-1 b", HostStar: "Store-1", PeriodDays: 10, StarMass: catalog.Float(1)},
		{Name: "Store-1 c", HostStar: "Store-1", PeriodDays: 20, StarMass: catalog.Float(1)},
	})
	if err != nil {
		t.Fatal(err)
	}
	return sys
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	sys := buildTestSystem(t)
	runID, err := store.Save(sys)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Star.Name != "Store-1" || len(loaded.Planets) != 2 {
		t.Errorf("round trip lost data: %+v", loaded)
	}
	if loaded.Planets[0].Elements != sys.Planets[0].Elements {
		t.Error("orbital elements changed through serialization")
	}
}

func TestSaveWritesPositionsCSV(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)
	sys := buildTestSystem(t)

	runID, err := store.Save(sys)
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filepath.Join(dir, runID, "positions.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	// header + samples
	if len(records) != positionSamples+2 {
		t.Errorf("expected %d rows, got %d", positionSamples+2, len(records))
	}
	// time + 3 columns per planet
	if len(records[0]) != 1+3*len(sys.Planets) {
		t.Errorf("unexpected header width %d", len(records[0]))
	}
}

func TestListEmptyDir(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "missing"))
	runs, err := store.List()
	if err != nil {
		t.Fatalf("list on missing dir: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestList(t *testing.T) {
	store := New(t.TempDir())
	sys := buildTestSystem(t)
	if _, err := store.Save(sys); err != nil {
		t.Fatal(err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Host != "Store-1" || runs[0].PlanetCount != 2 || !runs[0].MultiPlanet {
		t.Errorf("unexpected metadata: %+v", runs[0])
	}
	if !runs[0].Resonant {
		t.Error("2:1 pair should be flagged resonant in metadata")
	}
}
