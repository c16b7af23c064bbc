package catalog

import "math"

// Classification thresholds, Earth units.
const (
	jupiterMassFloor   = 100.0 // M > 100 Mearth: jovian
	hotJupiterPeriod   = 10.0  // days
	ultraShortPeriod   = 1.0   // days
	neptuneMassFloor   = 10.0
	neptuneMassCeil    = 50.0
	subNeptuneRadFloor = 2.0
	subNeptuneRadCeil  = 4.0
	superEarthMass     = 2.0
)

// Classify assigns a coarse planet-type label from mass, radius and period.
// The ladder mirrors the archive cleaning pipeline: jovian by mass and
// period, then neptune-like by mass, sub-neptune by radius, super-earth
// and rocky by mass. With neither mass nor radius the type is unknown.
func Classify(mass, radius *float64, periodDays float64) string {
	if mass == nil && radius == nil {
		return TypeUnknown
	}

	m, r := massRadius(mass, radius)
	if m == 0 {
		return TypeUnknown
	}

	switch {
	case periodDays > 0 && periodDays < ultraShortPeriod && m < neptuneMassFloor:
		return TypeUltraShort
	case m > jupiterMassFloor && periodDays > 0 && periodDays < hotJupiterPeriod:
		return TypeHotJupiter
	case m > jupiterMassFloor:
		return TypeColdJupiter
	case m >= neptuneMassFloor && m < neptuneMassCeil:
		return TypeNeptuneLike
	case r >= subNeptuneRadFloor && r < subNeptuneRadCeil:
		return TypeSubNeptune
	case m >= superEarthMass && m < neptuneMassFloor:
		return TypeSuperEarth
	case m < superEarthMass:
		return TypeRocky
	}
	return TypeSubNeptune
}

// massRadius fills whichever of mass/radius is missing with a rough
// power-law counterpart so the ladder above always has both to work with.
func massRadius(mass, radius *float64) (m, r float64) {
	if mass != nil {
		m = *mass
	}
	if radius != nil {
		r = *radius
	}
	if r == 0 && m > 0 && m < 10 {
		r = math.Pow(m, 0.28)
	}
	if m == 0 && r > 0 {
		if r < 1.5 {
			m = math.Pow(r, 3.3)
		} else {
			m = math.Pow(r, 2.1) * 2
		}
	}
	return m, r
}
