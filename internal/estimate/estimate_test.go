package estimate

import (
	"math"
	"testing"

	"github.com/san-kum/exosim/internal/catalog"
)

func TestUnitHashDeterministic(t *testing.T) {
	for _, id := range []string{"Kepler-90 b", "TRAPPIST-1 e", "51 Peg b", ""} {
		for offset := uint64(0); offset < 8; offset++ {
			a := unitHash(id, offset)
			b := unitHash(id, offset)
			if a != b {
				t.Fatalf("hash not deterministic for (%q, %d)", id, offset)
			}
			if a < 0 || a >= 1 {
				t.Fatalf("hash out of [0,1): %v", a)
			}
		}
	}
}

func TestUnitHashStreamsIndependent(t *testing.T) {
	// Different offsets for one identifier should not collide, and
	// different identifiers should not share values at one offset.
	if unitHash("Kepler-90 b", offsetEccentricity) == unitHash("Kepler-90 b", offsetArgPeriapsis) {
		t.Error("offset streams collide")
	}
	if unitHash("Kepler-90 b", offsetEccentricity) == unitHash("Kepler-90 c", offsetEccentricity) {
		t.Error("identifier streams collide")
	}
}

func TestRadiusMeasuredPassesThrough(t *testing.T) {
	p := catalog.Planet{Name: "x", PeriodDays: 10, RadiusEarth: catalog.Float(1.7)}
	r, est := Radius(p)
	if r != 1.7 || est {
		t.Errorf("measured radius altered: %v estimated=%v", r, est)
	}
}

func TestRadiusFromMass(t *testing.T) {
	tests := []struct {
		name  string
		ptype string
		mass  float64
		want  float64
	}{
		{"rocky power law", catalog.TypeRocky, 1.0, 1.0},
		{"super-earth power law", catalog.TypeSuperEarth, 5.0, math.Pow(5, 0.27)},
		{"sub-neptune scaled", catalog.TypeSubNeptune, 8.0, 1.2 * math.Pow(8, 0.55)},
		{"neptune-like", catalog.TypeNeptuneLike, 17.0, math.Pow(17, 0.55)},
		{"hot jupiter flat", catalog.TypeHotJupiter, 318, 11.2},
		{"cold jupiter flat", catalog.TypeColdJupiter, 636, 11.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := catalog.Planet{Name: "x", PeriodDays: 10, PlanetType: tt.ptype, MassEarth: catalog.Float(tt.mass)}
			r, est := Radius(p)
			if !est {
				t.Error("derived radius must be flagged estimated")
			}
			if math.Abs(r-tt.want) > 1e-9 {
				t.Errorf("radius = %v, want %v", r, tt.want)
			}
		})
	}
}

func TestRadiusDefaults(t *testing.T) {
	tests := []struct {
		ptype string
		want  float64
	}{
		{catalog.TypeHotJupiter, 11.2},
		{catalog.TypeNeptuneLike, 4.0},
		{catalog.TypeHotNeptune, 4.0},
		{catalog.TypeSubNeptune, 2.5},
		{catalog.TypeRocky, 1.5},
		{catalog.TypeUnknown, 1.5},
	}
	for _, tt := range tests {
		p := catalog.Planet{Name: "x", PeriodDays: 10, PlanetType: tt.ptype}
		r, est := Radius(p)
		if r != tt.want || !est {
			t.Errorf("%s: radius = %v estimated=%v, want %v true", tt.ptype, r, est, tt.want)
		}
	}
}

func TestEccentricityRegimes(t *testing.T) {
	tests := []struct {
		period float64
		lo, hi float64
	}{
		{3, 0.01, 0.05},
		{50, 0.05, 0.2},
		{500, 0.1, 0.4},
	}
	for _, tt := range tests {
		p := catalog.Planet{Name: "e-test", PeriodDays: tt.period}
		e, est := Eccentricity(p)
		if !est {
			t.Error("drawn eccentricity must be flagged estimated")
		}
		if e < tt.lo || e >= tt.hi {
			t.Errorf("P=%v: eccentricity %v outside [%v, %v)", tt.period, e, tt.lo, tt.hi)
		}
		// Repeatable.
		if e2, _ := Eccentricity(p); e2 != e {
			t.Error("eccentricity draw not reproducible")
		}
	}

	p := catalog.Planet{Name: "m", PeriodDays: 3, Eccentricity: catalog.Float(0.31)}
	if e, est := Eccentricity(p); e != 0.31 || est {
		t.Errorf("measured eccentricity altered: %v %v", e, est)
	}
}

func TestArgPeriapsisAlwaysEstimated(t *testing.T) {
	p := catalog.Planet{Name: "w-test", PeriodDays: 10}
	w, est := ArgPeriapsis(p)
	if !est {
		t.Error("argument of periapsis must always be estimated")
	}
	if w < 0 || w >= 360 {
		t.Errorf("omega %v outside [0, 360)", w)
	}
}

func TestMeanAnomalyFromDiscoveryYear(t *testing.T) {
	p := catalog.Planet{Name: "m-test", PeriodDays: 10, DiscoveryYear: catalog.Int(2016)}
	m1, est := MeanAnomaly(p)
	m2, _ := MeanAnomaly(p)
	if !est || m1 != m2 {
		t.Errorf("year-derived phase must be estimated and stable: %v %v", m1, m2)
	}
	if m1 < 0 || m1 >= 360 {
		t.Errorf("mean anomaly %v outside [0, 360)", m1)
	}

	// (2016-2000)*47 mod 360 = 32; jitter adds [0, 30).
	if m1 < 32 || m1 >= 62 {
		t.Errorf("mean anomaly %v outside year-phase window [32, 62)", m1)
	}

	noYear := catalog.Planet{Name: "m-test", PeriodDays: 10}
	m3, est := MeanAnomaly(noYear)
	if !est || m3 < 0 || m3 >= 360 {
		t.Errorf("yearless mean anomaly invalid: %v %v", m3, est)
	}
}

func TestInclination(t *testing.T) {
	transit := catalog.Planet{Name: "i-test", PeriodDays: 10, DetectionMethod: "transit-kepler"}
	inc, est := Inclination(transit)
	if !est || inc < 85 || inc >= 90 {
		t.Errorf("transit inclination %v outside [85, 90)", inc)
	}

	rv := catalog.Planet{Name: "i-test", PeriodDays: 10, DetectionMethod: "radial-velocity"}
	inc, est = Inclination(rv)
	if !est || inc != 90 {
		t.Errorf("non-transit inclination = %v estimated=%v, want 90 true", inc, est)
	}
}

func TestStellarTemperature(t *testing.T) {
	measured := catalog.Planet{Name: "s", PeriodDays: 10, StarTemperature: catalog.Float(5000)}
	if temp, est := StellarTemperature(measured); temp != 5000 || est {
		t.Errorf("measured temperature altered: %v %v", temp, est)
	}

	spectral := catalog.Planet{Name: "s", PeriodDays: 10, StarSpectralType: "M4V"}
	if temp, est := StellarTemperature(spectral); temp != 3200 || !est {
		t.Errorf("spectral temperature = %v estimated=%v, want 3200 true", temp, est)
	}

	fromMass := catalog.Planet{Name: "s", PeriodDays: 10, StarMass: catalog.Float(4.0)}
	want := SolarTemperature * 2
	if temp, _ := StellarTemperature(fromMass); math.Abs(temp-want) > 1e-9 {
		t.Errorf("mass-derived temperature = %v, want %v", temp, want)
	}
}

func TestStellarRadius(t *testing.T) {
	measured := catalog.Planet{Name: "s", PeriodDays: 10, StarRadius: catalog.Float(0.8)}
	if r, est := StellarRadius(measured); r != 0.8 || est {
		t.Errorf("measured radius altered: %v %v", r, est)
	}

	fromMass := catalog.Planet{Name: "s", PeriodDays: 10, StarMass: catalog.Float(2.0)}
	want := math.Pow(2.0, 0.8)
	if r, est := StellarRadius(fromMass); math.Abs(r-want) > 1e-9 || !est {
		t.Errorf("mass-derived radius = %v, want %v", r, want)
	}
}

func TestSemiMajorAxis(t *testing.T) {
	measured := catalog.Planet{Name: "a", PeriodDays: 365.25, SeparationAU: catalog.Float(1.1)}
	if a, est := SemiMajorAxis(measured, 1); a != 1.1 || est {
		t.Errorf("measured separation altered: %v %v", a, est)
	}

	// Earth: one-year period around one solar mass gives 1 AU.
	earth := catalog.Planet{Name: "a", PeriodDays: 365.25}
	a, est := SemiMajorAxis(earth, 1)
	if !est || math.Abs(a-1.0) > 1e-9 {
		t.Errorf("Kepler-III semi-major axis = %v, want 1", a)
	}

	// Heavier star at fixed period sits wider.
	a2, _ := SemiMajorAxis(earth, 2)
	if a2 <= a {
		t.Errorf("semi-major axis should grow with star mass: %v <= %v", a2, a)
	}
}
