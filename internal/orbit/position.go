package orbit

import "math"

// Elements is the minimal Keplerian element set the position engine needs.
// Angles follow the catalog convention: degrees for the epoch elements,
// rad/day for the mean motion. Inclination and ascending node are carried
// by the system layer but never rotate positions out of plane; the model
// is intentionally flat.
type Elements struct {
	SemiMajorAxis    float64 // a, AU
	Eccentricity     float64 // e, [0, 1)
	ArgPeriapsisDeg  float64 // omega, degrees
	MeanAnomalyDeg   float64 // M0 at epoch, degrees
	MeanMotionRadDay float64 // n, rad/day
}

// Position is a transient snapshot of a planet at one simulation instant,
// in orbital-plane coordinates with the star at the origin. Recomputed
// every tick and never mutated.
type Position struct {
	X           float64 // AU
	Y           float64 // AU
	R           float64 // AU, distance from star
	TrueAnomaly float64 // rad
	Velocity    float64 // km/s
}

// PlanetAt computes the position and speed of a planet at simulation time
// t (days since epoch) around a star of the given mass in solar units.
//
// Every input is sanitized before use: non-finite or out-of-domain values
// are replaced with safe defaults so a single bad catalog entry can never
// push NaN into the render path. Numeric edge cases recover locally and
// are not reported.
func PlanetAt(el Elements, timeDays, starMassSolar float64) Position {
	a := sanitize(el.SemiMajorAxis, 1.0, true)
	ecc := el.Eccentricity
	if math.IsNaN(ecc) || math.IsInf(ecc, 0) || ecc < 0 || ecc >= 1 {
		ecc = 0
	}
	omega := sanitize(el.ArgPeriapsisDeg, 0, false) * math.Pi / 180
	m0 := sanitize(el.MeanAnomalyDeg, 0, false) * math.Pi / 180
	n := sanitize(el.MeanMotionRadDay, SlowMeanMotion, true)
	starMass := sanitize(starMassSolar, 1.0, true)
	if !isFinite(timeDays) {
		timeDays = 0
	}

	m := m0 + n*timeDays
	e := SolveKepler(m, ecc)
	nu := TrueAnomaly(e, ecc)
	r := Distance(a, ecc, e)

	angle := nu + omega
	x := r * math.Cos(angle)
	y := r * math.Sin(angle)

	v := visViva(r, a, starMass)

	if !isFinite(x) || !isFinite(y) || !isFinite(r) {
		// Park the planet at periapsis-side of the x axis rather than
		// propagating invalid coordinates to the renderer.
		return Position{X: a, Y: 0, R: a, TrueAnomaly: 0, Velocity: FallbackVelocity}
	}

	return Position{X: x, Y: y, R: r, TrueAnomaly: nu, Velocity: v}
}

// visViva returns the orbital speed in km/s at radius r on an orbit of
// semi-major axis a around starMass solar masses: v^2 = GM(2/r - 1/a).
func visViva(r, a, starMass float64) float64 {
	gm := GMSun * starMass
	v2 := gm * (2/r - 1/a)
	if v2 < 0 || !isFinite(v2) {
		v2 = 0
	}
	// AU/day -> km/s
	return math.Sqrt(v2) * AUKilometers / SecondsPerDay
}

func sanitize(v, def float64, positive bool) float64 {
	if !isFinite(v) || (positive && v <= 0) {
		return def
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
