// Package habzone derives thermal-zone boundaries from stellar luminosity.
// Boundaries are insolation thresholds: S = L/d^2 falls off with distance,
// so the higher-flux threshold sits at the smaller radius.
package habzone

import "math"

// SolarTemperature is the Sun's effective temperature in K, the anchor of
// the luminosity relation L = R^2 * (T/Tsun)^4.
const SolarTemperature = 5778.0

// Insolation thresholds in Earth units.
const (
	conservativeInner = 1.10
	conservativeOuter = 0.36
	optimisticInner   = 1.8
	optimisticOuter   = 0.25
)

// Thermal classification of a planet by received insolation.
type ThermalClass string

const (
	TooHot         ThermalClass = "too_hot"
	OptimisticHot  ThermalClass = "optimistic_hot"
	Habitable      ThermalClass = "habitable"
	OptimisticCold ThermalClass = "optimistic_cold"
	TooCold        ThermalClass = "too_cold"
)

// Zone is a habitable-zone annulus in AU. DataAvailable is true only when
// both stellar inputs were measured: a zone computed from any estimated
// stellar parameter is itself an estimate.
type Zone struct {
	InnerAU       float64 `json:"innerEdge"`
	OuterAU       float64 `json:"outerEdge"`
	DataAvailable bool    `json:"dataAvailable"`
}

// Luminosity returns the stellar luminosity in solar units from radius
// (solar radii) and effective temperature (K).
func Luminosity(starRadiusSolar, starTempK float64) float64 {
	t := starTempK / SolarTemperature
	return starRadiusSolar * starRadiusSolar * t * t * t * t
}

// Conservative computes the conservative habitable zone. measured reports
// whether both stellar temperature and radius came from the catalog rather
// than estimation.
func Conservative(starRadiusSolar, starTempK float64, measured bool) Zone {
	return zoneFor(Luminosity(starRadiusSolar, starTempK), conservativeInner, conservativeOuter, measured)
}

// Optimistic computes the wider optimistic zone with relaxed thresholds.
func Optimistic(starRadiusSolar, starTempK float64, measured bool) Zone {
	return zoneFor(Luminosity(starRadiusSolar, starTempK), optimisticInner, optimisticOuter, measured)
}

func zoneFor(lum, innerFlux, outerFlux float64, measured bool) Zone {
	return Zone{
		InnerAU:       math.Sqrt(lum / innerFlux),
		OuterAU:       math.Sqrt(lum / outerFlux),
		DataAvailable: measured,
	}
}

// Contains reports whether a semi-major axis lies inside the zone,
// edges inclusive.
func (z Zone) Contains(semiMajorAxisAU float64) bool {
	return semiMajorAxisAU >= z.InnerAU && semiMajorAxisAU <= z.OuterAU
}

// Insolation returns the stellar flux in Earth units at the given orbital
// distance.
func Insolation(lum, distanceAU float64) float64 {
	if distanceAU <= 0 {
		return math.Inf(1)
	}
	return lum / (distanceAU * distanceAU)
}

// Classify places an insolation value on the thermal ladder.
func Classify(insolation float64) ThermalClass {
	switch {
	case insolation > optimisticInner:
		return TooHot
	case insolation > conservativeInner:
		return OptimisticHot
	case insolation >= conservativeOuter:
		return Habitable
	case insolation >= optimisticOuter:
		return OptimisticCold
	default:
		return TooCold
	}
}
