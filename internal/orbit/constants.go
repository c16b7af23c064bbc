package orbit

import "math"

// Physical constants
const (
	// GMSun is the heliocentric gravitational parameter G*M_sun in
	// AU^3/day^2. Scales linearly with stellar mass in solar units.
	GMSun = 2.959122e-4

	// AUKilometers is one astronomical unit in km.
	AUKilometers = 1.495978707e8

	// SecondsPerDay converts day-based rates to per-second.
	SecondsPerDay = 86400.0
)

// Solver constants
const (
	// SolveTolerance is the residual bound for the Kepler solve.
	SolveTolerance = 1e-8

	// SolveMaxIter caps Newton-Raphson iterations per solve. The last
	// iterate is returned even without convergence.
	SolveMaxIter = 15

	// circularLimit is the eccentricity below which an orbit is treated
	// as circular and E = M exactly.
	circularLimit = 1e-10

	// highEccThreshold switches the initial guess from M to pi; a linear
	// seed diverges for near-unity eccentricities.
	highEccThreshold = 0.8

	// derivFloor bounds 1 - e*cos(E) away from zero in the Newton step.
	derivFloor = 1e-12
)

// Defaults substituted for invalid or missing inputs.
const (
	// SlowMeanMotion is the fallback mean motion (rad/day) when a period
	// is non-positive or non-finite.
	SlowMeanMotion = 0.01

	// FallbackVelocity is the stand-in speed (km/s) for a position that
	// could not be computed; roughly Earth's orbital speed.
	FallbackVelocity = 30.0

	// DefaultPathPoints is the sample count for generated orbit paths.
	DefaultPathPoints = 100

	// ResonanceTolerance is the default relative deviation accepted when
	// matching a period ratio against the resonance table.
	ResonanceTolerance = 0.05
)

// resonanceRatios are the mean-motion resonances tested by Resonant,
// expressed as period ratios >= 1.
var resonanceRatios = []float64{
	2.0 / 1.0,
	3.0 / 2.0,
	4.0 / 3.0,
	5.0 / 4.0,
	5.0 / 3.0,
	3.0 / 1.0,
	4.0 / 1.0,
	5.0 / 2.0,
}

// normalizeAngle wraps an angle into [0, 2pi).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
