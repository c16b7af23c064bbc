package orbit

import (
	"math"
	"testing"

	"github.com/onsi/gomega"
)

func TestSolveKeplerCircular(t *testing.T) {
	for _, m := range []float64{0, 0.5, math.Pi, 5.0, 2*math.Pi - 1e-3} {
		e := SolveKepler(m, 0)
		if math.Abs(e-m) > 1e-12 {
			t.Errorf("M=%v: expected E==M for circular orbit, got %v", m, e)
		}
	}
}

func TestSolveKeplerNormalizesMeanAnomaly(t *testing.T) {
	got := SolveKepler(2*math.Pi+1.0, 0)
	if math.Abs(got-1.0) > 1e-12 {
		t.Errorf("expected wrapped M 1.0, got %v", got)
	}

	got = SolveKepler(-1.0, 0)
	want := 2*math.Pi - 1.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("expected wrapped M %v, got %v", want, got)
	}
}

// Reconstructing M from the solved E must reproduce the input to within
// the solver tolerance across the eccentricity range.
func TestSolveKeplerResidual(t *testing.T) {
	g := gomega.NewWithT(t)

	eccs := []float64{0, 0.01, 0.1, 0.3, 0.5, 0.7, 0.79, 0.8, 0.9, 0.95, 0.99}
	for _, ecc := range eccs {
		for i := 0; i < 24; i++ {
			m := float64(i) * 2 * math.Pi / 24
			e := SolveKepler(m, ecc)
			back := e - ecc*math.Sin(e)
			g.Expect(normalizeAngle(back)).To(gomega.BeNumerically("~", normalizeAngle(m), 1e-6),
				"e=%v M=%v", ecc, m)
		}
	}
}

func TestSolveKeplerHighEccentricityFinite(t *testing.T) {
	// Near-parabolic inputs may not converge in the iteration budget but
	// must still return a finite iterate.
	for _, m := range []float64{0.01, 0.1, math.Pi, 6.0} {
		e := SolveKepler(m, 0.999)
		if math.IsNaN(e) || math.IsInf(e, 0) {
			t.Fatalf("M=%v e=0.999: non-finite eccentric anomaly %v", m, e)
		}
	}
}

func TestTrueAnomaly(t *testing.T) {
	g := gomega.NewWithT(t)

	for _, ecc := range []float64{0, 0.2, 0.5, 0.9} {
		g.Expect(TrueAnomaly(0, ecc)).To(gomega.BeNumerically("~", 0, 1e-12))
		g.Expect(TrueAnomaly(math.Pi, ecc)).To(gomega.BeNumerically("~", math.Pi, 1e-9))
	}

	// Circular orbit: true anomaly equals eccentric anomaly.
	for _, e := range []float64{0.3, 1.0, 2.0, 3.0} {
		g.Expect(TrueAnomaly(e, 0)).To(gomega.BeNumerically("~", e, 1e-12))
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, e float64
		ea   float64
		want float64
	}{
		{"periapsis", 1.0, 0.3, 0, 0.7},
		{"apoapsis", 1.0, 0.3, math.Pi, 1.3},
		{"circular", 2.5, 0, 1.234, 2.5},
		{"circular periapsis", 5.2, 0, 0, 5.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.e, tt.ea)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Distance(%v,%v,%v) = %v, want %v", tt.a, tt.e, tt.ea, got, tt.want)
			}
		})
	}
}
