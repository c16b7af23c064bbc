package system

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/exosim/internal/catalog"
	"github.com/san-kum/exosim/internal/estimate"
	"github.com/san-kum/exosim/internal/habzone"
	"github.com/san-kum/exosim/internal/orbit"
)

// ErrEmptySystem is returned when a build is requested for a host star
// with no planets. Unlike numeric edge cases, which are recovered inline,
// this is a caller bug and propagates immediately.
var ErrEmptySystem = errors.New("system: host star has no planets")

// maxEccentricity clamps measured eccentricities below the parabolic
// limit; open orbits are out of scope for the animation.
const maxEccentricity = 0.99

// eccentricTraitThreshold marks a system as visibly eccentric.
const eccentricTraitThreshold = 0.1

// GroupByHost buckets catalog planets by host-star name. Solar-system
// entries come from a separate fixed dataset and are excluded, as are
// records without a host name.
func GroupByHost(planets []catalog.Planet) map[string][]catalog.Planet {
	groups := make(map[string][]catalog.Planet)
	for _, p := range planets {
		if p.SolarSystem || p.HostStar == "" {
			continue
		}
		groups[p.HostStar] = append(groups[p.HostStar], p)
	}
	return groups
}

// Build assembles the simulated system for one host star from its raw
// catalog planets.
func Build(host string, planets []catalog.Planet) (*System, error) {
	if len(planets) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySystem, host)
	}

	star := buildStar(host, planets[0])

	sys := &System{
		Star:    star,
		Planets: make([]Planet, 0, len(planets)),
	}

	for _, raw := range planets {
		sys.Planets = append(sys.Planets, buildPlanet(raw, star.MassSolar))
	}

	sort.Slice(sys.Planets, func(i, j int) bool {
		return sys.Planets[i].Elements.SemiMajorAxis < sys.Planets[j].Elements.SemiMajorAxis
	})

	if isBinary, companion := detectBinary(host); isBinary {
		outermost := sys.Planets[len(sys.Planets)-1].Elements.SemiMajorAxis
		sys.Binary = Binary{
			IsBinary:  isBinary,
			Close:     outermost < closeBinaryThresholdAU,
			Companion: companion,
		}
	}

	measured := !star.Estimated.Temperature && !star.Estimated.Radius
	zone := habzone.Conservative(star.RadiusSolar, star.TemperatureK, measured)
	sys.HabitableZone = &zone

	for i := range sys.Planets {
		p := &sys.Planets[i]
		p.InHabitableZone = zone.Contains(p.Elements.SemiMajorAxis)
		if p.InHabitableZone {
			sys.HasHZPlanet = true
		}
		if p.Elements.Eccentricity > eccentricTraitThreshold {
			sys.HasEccentricOrbit = true
		}
	}

	sys.MultiPlanet = len(sys.Planets) > 1
	sys.HasResonantPair = hasResonantPair(sys.Planets)

	return sys, nil
}

// BuildAll groups a catalog and builds every system, sorted by host name
// for stable ordering.
func BuildAll(planets []catalog.Planet) ([]*System, error) {
	groups := GroupByHost(planets)

	hosts := make([]string, 0, len(groups))
	for host := range groups {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)

	systems := make([]*System, 0, len(hosts))
	for _, host := range hosts {
		sys, err := Build(host, groups[host])
		if err != nil {
			return nil, err
		}
		systems = append(systems, sys)
	}
	return systems, nil
}

func buildStar(host string, p catalog.Planet) Star {
	mass, massEst := estimate.StellarMass(p)
	radius, radiusEst := estimate.StellarRadius(p)
	temp, tempEst := estimate.StellarTemperature(p)

	star := Star{
		Name:         host,
		MassSolar:    mass,
		RadiusSolar:  radius,
		TemperatureK: temp,
		SpectralType: p.StarSpectralType,
		Estimated: StarProvenance{
			Mass:        massEst,
			Radius:      radiusEst,
			Temperature: tempEst,
		},
	}
	if p.DistanceParsecs != nil {
		star.DistanceParsecs = *p.DistanceParsecs
	}
	return star
}

func buildPlanet(raw catalog.Planet, starMass float64) Planet {
	if raw.PlanetType == "" {
		raw.PlanetType = catalog.Classify(raw.MassEarth, raw.RadiusEarth, raw.PeriodDays)
	}

	a, aEst := estimate.SemiMajorAxis(raw, starMass)
	ecc, eccEst := estimate.Eccentricity(raw)
	if ecc > maxEccentricity {
		ecc = maxEccentricity
	}
	omega, omegaEst := estimate.ArgPeriapsis(raw)
	m0, m0Est := estimate.MeanAnomaly(raw)
	inc, incEst := estimate.Inclination(raw)
	radius, radiusEst := estimate.Radius(raw)

	return Planet{
		Planet: raw,
		Elements: orbit.Elements{
			SemiMajorAxis:    a,
			Eccentricity:     ecc,
			ArgPeriapsisDeg:  omega,
			MeanAnomalyDeg:   m0,
			MeanMotionRadDay: orbit.MeanMotion(raw.PeriodDays),
		},
		InclinationDeg:     inc,
		AscendingNodeDeg:   0,
		DisplayRadiusEarth: radius,
		Estimated: Provenance{
			Radius:        radiusEst,
			Eccentricity:  eccEst,
			ArgPeriapsis:  omegaEst,
			MeanAnomaly:   m0Est,
			Inclination:   incEst,
			SemiMajorAxis: aEst,
		},
	}
}

// hasResonantPair scans all period pairs. Quadratic, but systems hold at
// most tens of planets.
func hasResonantPair(planets []Planet) bool {
	for i := 0; i < len(planets); i++ {
		for j := i + 1; j < len(planets); j++ {
			if orbit.Resonant(planets[i].PeriodDays, planets[j].PeriodDays, 0) {
				return true
			}
		}
	}
	return false
}
