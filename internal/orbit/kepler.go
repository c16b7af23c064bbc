package orbit

import "math"

// SolveKepler inverts Kepler's equation M = E - e*sin(E) for the eccentric
// anomaly E using Newton-Raphson with the default tolerance and iteration
// cap. The mean anomaly is normalized into [0, 2pi) first. Eccentricity
// must be in [0, 1); callers clamp before calling.
//
// Non-convergence is not an error: after SolveMaxIter iterations the last
// iterate is returned. The residual stays visually imperceptible for
// realistic eccentricities and the per-frame cost stays bounded.
func SolveKepler(meanAnomaly, ecc float64) float64 {
	return solveKepler(meanAnomaly, ecc, SolveTolerance, SolveMaxIter)
}

func solveKepler(meanAnomaly, ecc, tol float64, maxIter int) float64 {
	m := normalizeAngle(meanAnomaly)

	// Circular shortcut: E == M, and it keeps the Newton denominator
	// well away from zero downstream.
	if ecc < circularLimit {
		return m
	}

	e := m
	if ecc >= highEccThreshold {
		e = math.Pi
	}

	for i := 0; i < maxIter; i++ {
		f := e - ecc*math.Sin(e) - m
		if math.Abs(f) < tol {
			break
		}
		fp := 1 - ecc*math.Cos(e)
		if math.Abs(fp) < derivFloor {
			fp = derivFloor
		}
		e -= f / fp
	}

	return e
}

// TrueAnomaly converts an eccentric anomaly to the true anomaly using the
// quadrant-correct half-angle form.
func TrueAnomaly(eccAnomaly, ecc float64) float64 {
	return 2 * math.Atan2(
		math.Sqrt(1+ecc)*math.Sin(eccAnomaly/2),
		math.Sqrt(1-ecc)*math.Cos(eccAnomaly/2),
	)
}

// Distance returns the orbital radius a*(1 - e*cos(E)) for an eccentric
// anomaly E, in the units of the semi-major axis.
func Distance(semiMajorAxis, ecc, eccAnomaly float64) float64 {
	return semiMajorAxis * (1 - ecc*math.Cos(eccAnomaly))
}
