package orbit

import "math"

// Point is a 2D orbital-plane coordinate in AU.
type Point struct {
	X float64
	Y float64
}

// Path samples the orbit ellipse as a closed polyline. True anomaly is the
// independent variable, so the polar conic r = a(1-e^2)/(1+e*cos nu) gives
// the exact shape with no Kepler solve. The curve is rotated by the
// argument of periapsis and closed: len = numPoints+1 with the first and
// last points coinciding.
func Path(semiMajorAxis, ecc, argPeriapsisDeg float64, numPoints int) []Point {
	if numPoints <= 0 {
		numPoints = DefaultPathPoints
	}
	omega := argPeriapsisDeg * math.Pi / 180
	semiLatus := semiMajorAxis * (1 - ecc*ecc)

	pts := make([]Point, numPoints+1)
	for i := 0; i <= numPoints; i++ {
		nu := 2 * math.Pi * float64(i) / float64(numPoints)
		r := semiLatus / (1 + ecc*math.Cos(nu))
		angle := nu + omega
		pts[i] = Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
	}
	return pts
}

// Apsides returns the periapsis and apoapsis distances a(1-e) and a(1+e).
func Apsides(semiMajorAxis, ecc float64) (periapsis, apoapsis float64) {
	return semiMajorAxis * (1 - ecc), semiMajorAxis * (1 + ecc)
}

// Resonant reports whether two orbital periods sit within tolerance of a
// known mean-motion resonance. Periods are ordered internally so the test
// is symmetric in its arguments. A non-positive tolerance falls back to
// ResonanceTolerance.
func Resonant(period1, period2, tolerance float64) bool {
	if tolerance <= 0 {
		tolerance = ResonanceTolerance
	}
	if period1 <= 0 || period2 <= 0 {
		return false
	}
	ratio := period1 / period2
	if ratio < 1 {
		ratio = 1 / ratio
	}
	for _, res := range resonanceRatios {
		if math.Abs(ratio-res)/res < tolerance {
			return true
		}
	}
	return false
}

// TimeToPeriapsis returns the days remaining until the mean anomaly wraps
// back to zero, given the current mean anomaly in radians.
func TimeToPeriapsis(meanAnomaly, periodDays float64) float64 {
	m := normalizeAngle(meanAnomaly)
	remaining := 2*math.Pi - m
	if remaining >= 2*math.Pi {
		remaining = 2 * math.Pi
	}
	return remaining / (2 * math.Pi) * periodDays
}

// Progress maps a mean anomaly to normalized orbital phase in [0, 1):
// 0 at periapsis, 0.5 at apoapsis. Values beyond 2pi wrap.
func Progress(meanAnomaly float64) float64 {
	return normalizeAngle(meanAnomaly) / (2 * math.Pi)
}

// MeanMotion converts an orbital period in days to mean motion in rad/day.
// Non-positive or non-finite periods yield SlowMeanMotion instead of a
// division blow-up.
func MeanMotion(periodDays float64) float64 {
	if periodDays <= 0 || math.IsNaN(periodDays) || math.IsInf(periodDays, 0) {
		return SlowMeanMotion
	}
	return 2 * math.Pi / periodDays
}
