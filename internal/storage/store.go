// Package storage persists built systems under a data directory: one
// subdirectory per saved run holding the full system as JSON plus a CSV of
// planet positions sampled over one outer orbital period. The CLI uses it
// for list/export workflows; the simulator itself never reads back its
// own output.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/exosim/internal/system"
)

// positionSamples is the number of time steps written to positions.csv.
const positionSamples = 200

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Metadata summarizes one saved system for listings.
type Metadata struct {
	ID          string    `json:"id"`
	Host        string    `json:"host"`
	Timestamp   time.Time `json:"timestamp"`
	PlanetCount int       `json:"planetCount"`
	MultiPlanet bool      `json:"multiPlanet"`
	Resonant    bool      `json:"resonant"`
	HasHZPlanet bool      `json:"hasHZPlanet"`
	Binary      bool      `json:"binary"`
}

// Save writes the system and a sampled position table, returning the run
// ID. Positions are sampled over one period of the outermost planet so
// the CSV covers a full cycle of the slowest orbit.
func (s *Store) Save(sys *system.System) (string, error) {
	runID := fmt.Sprintf("%s_%d", slug(sys.Star.Name), time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := Metadata{
		ID:          runID,
		Host:        sys.Star.Name,
		Timestamp:   time.Now(),
		PlanetCount: len(sys.Planets),
		MultiPlanet: sys.MultiPlanet,
		Resonant:    sys.HasResonantPair,
		HasHZPlanet: sys.HasHZPlanet,
		Binary:      sys.Binary.IsBinary,
	}
	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(runDir, "system.json"), sys); err != nil {
		return "", err
	}
	if err := s.writePositions(filepath.Join(runDir, "positions.csv"), sys); err != nil {
		return "", err
	}
	return runID, nil
}

func (s *Store) writePositions(path string, sys *system.System) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"time_days"}
	for _, p := range sys.Planets {
		header = append(header, p.Name+"_x", p.Name+"_y", p.Name+"_v")
	}
	if err := w.Write(header); err != nil {
		return err
	}

	horizon := sys.OuterPeriodDays()
	if horizon <= 0 {
		horizon = 1
	}
	for i := 0; i <= positionSamples; i++ {
		t := horizon * float64(i) / positionSamples
		row := []string{strconv.FormatFloat(t, 'f', 4, 64)}
		positions := sys.PositionsAt(t)
		for _, p := range sys.Planets {
			pos := positions[p.Name]
			row = append(row,
				strconv.FormatFloat(pos.X, 'f', 6, 64),
				strconv.FormatFloat(pos.Y, 'f', 6, 64),
				strconv.FormatFloat(pos.Velocity, 'f', 3, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// List returns metadata for all saved runs, skipping unreadable entries.
func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	runs := make([]Metadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta Metadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

// Load reads back a saved system.
func (s *Store) Load(runID string) (*system.System, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "system.json"))
	if err != nil {
		return nil, err
	}
	var sys system.System
	if err := json.Unmarshal(data, &sys); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &sys, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// slug flattens a host-star name into a filesystem-safe run prefix.
func slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	return s
}
