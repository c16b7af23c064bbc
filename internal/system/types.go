// Package system assembles fully-specified simulated systems from raw
// catalog records: it groups planets by host star, fills missing
// parameters through the estimate package, computes the habitable zone,
// and classifies system-level traits. Built systems are immutable; a new
// build is required if the underlying catalog changes.
package system

import (
	"github.com/san-kum/exosim/internal/catalog"
	"github.com/san-kum/exosim/internal/habzone"
	"github.com/san-kum/exosim/internal/orbit"
)

// Provenance records which of a planet's derived fields were estimated
// rather than measured. The builder is the only writer.
type Provenance struct {
	Radius        bool `json:"radius"`
	Eccentricity  bool `json:"eccentricity"`
	ArgPeriapsis  bool `json:"argPeriapsis"`
	MeanAnomaly   bool `json:"meanAnomaly"`
	Inclination   bool `json:"inclination"`
	SemiMajorAxis bool `json:"semiMajorAxis"`
}

// Planet is a catalog record extended with the full Keplerian element set
// and display parameters. Every numeric element is finite and the
// eccentricity is strictly below one.
type Planet struct {
	catalog.Planet

	Elements orbit.Elements `json:"elements"`

	// Cosmetic angles: carried for display, never used to rotate
	// positions out of plane. Ascending node is always zero in 2D.
	InclinationDeg   float64 `json:"inclination"`
	AscendingNodeDeg float64 `json:"ascendingNode"`

	DisplayRadiusEarth float64 `json:"displayRadius"`
	InHabitableZone    bool    `json:"inHabitableZone"`

	Estimated Provenance `json:"estimated"`
}

// StarProvenance mirrors Provenance for the stellar parameters.
type StarProvenance struct {
	Mass        bool `json:"mass"`
	Radius      bool `json:"radius"`
	Temperature bool `json:"temperature"`
}

// Star holds the host star's parameters in solar units.
type Star struct {
	Name            string  `json:"name"`
	MassSolar       float64 `json:"mass"`
	RadiusSolar     float64 `json:"radius"`
	TemperatureK    float64 `json:"temperature"`
	SpectralType    string  `json:"spectralType,omitempty"`
	DistanceParsecs float64 `json:"distance,omitempty"`

	Estimated StarProvenance `json:"estimated"`
}

// Binary describes the (heuristic) multiplicity of the host. Close/distant
// only drives the rendering choice; true companion orbits are unknown.
type Binary struct {
	IsBinary  bool   `json:"isBinary"`
	Close     bool   `json:"close,omitempty"`
	Companion string `json:"companion,omitempty"`
}

// System is one host star with its fully-specified planets, sorted
// ascending by semi-major axis, plus derived traits for the UI and audio
// layers. Consumers treat it as read-only.
type System struct {
	Star          Star          `json:"star"`
	Binary        Binary        `json:"binary"`
	HabitableZone *habzone.Zone `json:"habitableZone,omitempty"`
	Planets       []Planet      `json:"planets"`

	MultiPlanet       bool `json:"multiPlanet"`
	HasEccentricOrbit bool `json:"hasEccentricOrbit"`
	HasResonantPair   bool `json:"hasResonantPair"`
	HasHZPlanet       bool `json:"hasHZPlanet"`
}

// PositionsAt computes every planet's position at simulation time t
// (days), keyed by planet name. Each entry carries the position engine's
// per-planet sanitization guarantees; the result is a fresh snapshot and
// safe to read concurrently with other ticks.
func (s *System) PositionsAt(timeDays float64) map[string]orbit.Position {
	out := make(map[string]orbit.Position, len(s.Planets))
	for i := range s.Planets {
		p := &s.Planets[i]
		out[p.Name] = orbit.PlanetAt(p.Elements, timeDays, s.Star.MassSolar)
	}
	return out
}

// OuterPeriodDays returns the longest orbital period in the system, a
// convenient animation and sampling horizon.
func (s *System) OuterPeriodDays() float64 {
	max := 0.0
	for _, p := range s.Planets {
		if p.PeriodDays > max {
			max = p.PeriodDays
		}
	}
	return max
}
