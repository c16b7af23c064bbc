// Package estimate fills the physical and orbital parameters a simulated
// planet needs but the catalog lacks. Every function returns the value
// plus a flag saying whether it was estimated, so provenance travels with
// the number. All estimates are deterministic: repeated runs over the same
// catalog produce identical systems.
package estimate

import (
	"math"
	"strings"

	"github.com/san-kum/exosim/internal/catalog"
)

// Solar-unit and estimation constants.
const (
	// SolarTemperature is the effective temperature of the Sun in K.
	SolarTemperature = 5778.0

	// yearPhaseStepDeg spreads epoch phases by discovery year:
	// (year-2000)*47 mod 360. 47 shares no factor with 360, so
	// consecutive years land far apart on the orbit.
	yearPhaseStepDeg = 47.0

	// meanAnomalyJitterDeg is the seeded jitter added on top of the
	// year-derived phase.
	meanAnomalyJitterDeg = 30.0

	// transitInclinationMin is the lower bound for transit-detected
	// planets; transits require a near edge-on geometry.
	transitInclinationMin = 85.0
	defaultInclinationDeg = 90.0
)

// Mass-radius power laws per coarse planet type (radius in Earth radii
// from mass in Earth masses): R = scale * M^exponent.
var massRadiusLaws = map[string]struct{ scale, exponent float64 }{
	catalog.TypeRocky:       {1.0, 0.27},
	catalog.TypeSuperEarth:  {1.0, 0.27},
	catalog.TypeUltraShort:  {1.0, 0.27},
	catalog.TypeSubNeptune:  {1.2, 0.55},
	catalog.TypeNeptuneLike: {1.0, 0.55},
	catalog.TypeHotNeptune:  {1.0, 0.55},
	// Degenerate-pressure regime: giants sit near one Jupiter radius
	// regardless of mass.
	catalog.TypeHotJupiter:  {11.2, 0},
	catalog.TypeColdJupiter: {11.2, 0},
}

// Fallback radii (Earth radii) when neither mass nor radius is known.
var defaultRadii = map[string]float64{
	catalog.TypeHotJupiter:  11.2,
	catalog.TypeColdJupiter: 11.2,
	catalog.TypeNeptuneLike: 4.0,
	catalog.TypeHotNeptune:  4.0,
	catalog.TypeSubNeptune:  2.5,
}

const defaultRadius = 1.5

// Spectral-letter effective temperatures (K), main-sequence midpoints.
var spectralTemperatures = map[byte]float64{
	'O': 35000,
	'B': 20000,
	'A': 8750,
	'F': 6750,
	'G': 5600,
	'K': 4450,
	'M': 3200,
	'L': 1900,
	'T': 1200,
}

// Radius returns the planet radius in Earth radii. A positive measured
// radius passes through unestimated; otherwise it is derived from mass by
// the per-type power law, or falls back to a per-type default.
func Radius(p catalog.Planet) (float64, bool) {
	if p.RadiusEarth != nil && *p.RadiusEarth > 0 {
		return *p.RadiusEarth, false
	}
	ptype := planetType(p)
	if p.MassEarth != nil && *p.MassEarth > 0 {
		law, ok := massRadiusLaws[ptype]
		if !ok {
			law = massRadiusLaws[catalog.TypeRocky]
		}
		if law.exponent == 0 {
			return law.scale, true
		}
		return law.scale * math.Pow(*p.MassEarth, law.exponent), true
	}
	if r, ok := defaultRadii[ptype]; ok {
		return r, true
	}
	return defaultRadius, true
}

// Eccentricity returns the orbital eccentricity. Measured values pass
// through; otherwise a seeded draw from a period-dependent range: tight
// orbits circularize by tides, wide ones keep more of their primordial
// eccentricity.
func Eccentricity(p catalog.Planet) (float64, bool) {
	if p.Eccentricity != nil && *p.Eccentricity >= 0 {
		return *p.Eccentricity, false
	}
	var lo, hi float64
	switch {
	case p.PeriodDays < 10:
		lo, hi = 0.01, 0.05
	case p.PeriodDays < 100:
		lo, hi = 0.05, 0.2
	default:
		lo, hi = 0.1, 0.4
	}
	return rangeHash(p.Name, offsetEccentricity, lo, hi), true
}

// ArgPeriapsis returns the argument of periapsis in degrees. The catalog
// carries no authoritative value for a 2D visualization, so it is always a
// seeded uniform draw over [0, 360).
func ArgPeriapsis(p catalog.Planet) (float64, bool) {
	return rangeHash(p.Name, offsetArgPeriapsis, 0, 360), true
}

// MeanAnomaly returns the mean anomaly at epoch in degrees. With a known
// discovery year the phase is spread deterministically by year plus seeded
// jitter; otherwise it is a pure seeded draw over [0, 360).
func MeanAnomaly(p catalog.Planet) (float64, bool) {
	if p.DiscoveryYear != nil {
		base := math.Mod(float64(*p.DiscoveryYear-2000)*yearPhaseStepDeg, 360)
		if base < 0 {
			base += 360
		}
		jitter := rangeHash(p.Name, offsetMeanAnomaly, 0, meanAnomalyJitterDeg)
		return math.Mod(base+jitter, 360), true
	}
	return rangeHash(p.Name, offsetMeanAnomaly, 0, 360), true
}

// Inclination returns the orbital inclination in degrees. Transit-detected
// planets draw from [85, 90): the geometry that made the transit visible.
// Everything else sits at 90 for the flat display. Always flagged
// estimated; the 2D renderer never uses it geometrically.
func Inclination(p catalog.Planet) (float64, bool) {
	if strings.HasPrefix(p.DetectionMethod, "transit") {
		return rangeHash(p.Name, offsetInclination, transitInclinationMin, defaultInclinationDeg), true
	}
	return defaultInclinationDeg, true
}

// StellarTemperature returns the host-star effective temperature in K.
// Measured values pass through; otherwise the spectral-letter table, and
// as a last resort T = 5778 * sqrt(M) from the mass-luminosity trend.
func StellarTemperature(p catalog.Planet) (float64, bool) {
	if p.StarTemperature != nil && *p.StarTemperature > 0 {
		return *p.StarTemperature, false
	}
	if t, ok := spectralTemperature(p.StarSpectralType); ok {
		return t, true
	}
	return SolarTemperature * math.Sqrt(starMass(p)), true
}

// StellarRadius returns the host-star radius in solar radii; absent a
// measurement it follows R = M^0.8.
func StellarRadius(p catalog.Planet) (float64, bool) {
	if p.StarRadius != nil && *p.StarRadius > 0 {
		return *p.StarRadius, false
	}
	return math.Pow(starMass(p), 0.8), true
}

// StellarMass returns the host-star mass in solar masses, defaulting to
// one solar mass.
func StellarMass(p catalog.Planet) (float64, bool) {
	if p.StarMass != nil && *p.StarMass > 0 {
		return *p.StarMass, false
	}
	return 1.0, true
}

// SemiMajorAxis returns the orbit size in AU: the catalog separation when
// present, else Kepler's third law a = (P_yr^2 * M_star)^(1/3).
func SemiMajorAxis(p catalog.Planet, starMassSolar float64) (float64, bool) {
	if p.SeparationAU != nil && *p.SeparationAU > 0 {
		return *p.SeparationAU, false
	}
	if starMassSolar <= 0 {
		starMassSolar = 1
	}
	years := p.PeriodDays / 365.25
	return math.Cbrt(years * years * starMassSolar), true
}

func spectralTemperature(spectral string) (float64, bool) {
	s := strings.TrimSpace(spectral)
	if s == "" {
		return 0, false
	}
	t, ok := spectralTemperatures[s[0]]
	return t, ok
}

func starMass(p catalog.Planet) float64 {
	if p.StarMass != nil && *p.StarMass > 0 {
		return *p.StarMass
	}
	return 1.0
}

func planetType(p catalog.Planet) string {
	if p.PlanetType != "" {
		return p.PlanetType
	}
	return catalog.Classify(p.MassEarth, p.RadiusEarth, p.PeriodDays)
}
