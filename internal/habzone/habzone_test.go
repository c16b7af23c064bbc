package habzone

import (
	"math"
	"testing"
)

func TestLuminositySolar(t *testing.T) {
	if l := Luminosity(1, SolarTemperature); math.Abs(l-1) > 1e-12 {
		t.Errorf("solar luminosity = %v, want 1", l)
	}

	// L scales as R^2 and T^4.
	if l := Luminosity(2, SolarTemperature); math.Abs(l-4) > 1e-12 {
		t.Errorf("R=2 luminosity = %v, want 4", l)
	}
	if l := Luminosity(1, 2*SolarTemperature); math.Abs(l-16) > 1e-9 {
		t.Errorf("T=2Tsun luminosity = %v, want 16", l)
	}
}

func TestConservativeSolarZone(t *testing.T) {
	z := Conservative(1, SolarTemperature, true)

	wantInner := math.Sqrt(1 / 1.10)
	wantOuter := math.Sqrt(1 / 0.36)
	if math.Abs(z.InnerAU-wantInner) > 1e-9 {
		t.Errorf("inner edge = %v, want %v", z.InnerAU, wantInner)
	}
	if math.Abs(z.OuterAU-wantOuter) > 1e-9 {
		t.Errorf("outer edge = %v, want %v", z.OuterAU, wantOuter)
	}
	if z.InnerAU >= z.OuterAU {
		t.Error("inner edge must sit inside outer edge")
	}

	// Earth sits in the Sun's conservative zone.
	if !z.Contains(1.0) {
		t.Error("1 AU should be inside the solar conservative zone")
	}
	if z.Contains(0.3) || z.Contains(5.0) {
		t.Error("Venus-interior and Jupiter distances should be outside")
	}
}

func TestZoneEdgesInclusive(t *testing.T) {
	z := Conservative(1, SolarTemperature, true)
	if !z.Contains(z.InnerAU) || !z.Contains(z.OuterAU) {
		t.Error("zone test must include both edges")
	}
}

func TestOptimisticWiderThanConservative(t *testing.T) {
	c := Conservative(0.9, 5200, true)
	o := Optimistic(0.9, 5200, true)
	if o.InnerAU >= c.InnerAU || o.OuterAU <= c.OuterAU {
		t.Errorf("optimistic zone [%v, %v] should enclose conservative [%v, %v]",
			o.InnerAU, o.OuterAU, c.InnerAU, c.OuterAU)
	}
}

func TestDataAvailableStrictAnd(t *testing.T) {
	// The flag is wired through from the caller's strict both-measured
	// conjunction; an estimated input means an estimated zone.
	if z := Conservative(1, SolarTemperature, false); z.DataAvailable {
		t.Error("zone from estimated stellar input must not claim real data")
	}
	if z := Conservative(1, SolarTemperature, true); !z.DataAvailable {
		t.Error("zone from measured inputs should carry the flag")
	}
}

func TestInsolation(t *testing.T) {
	if s := Insolation(1, 1); math.Abs(s-1) > 1e-12 {
		t.Errorf("insolation at 1 AU of 1 Lsun = %v, want 1", s)
	}
	if s := Insolation(1, 2); math.Abs(s-0.25) > 1e-12 {
		t.Errorf("insolation at 2 AU = %v, want 0.25", s)
	}
	if s := Insolation(1, 0); !math.IsInf(s, 1) {
		t.Errorf("zero distance should give +Inf, got %v", s)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		insolation float64
		want       ThermalClass
	}{
		{5.0, TooHot},
		{1.81, TooHot},
		{1.5, OptimisticHot},
		{1.0, Habitable},
		{0.36, Habitable},
		{0.3, OptimisticCold},
		{0.25, OptimisticCold},
		{0.1, TooCold},
	}
	for _, tt := range tests {
		if got := Classify(tt.insolation); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.insolation, got, tt.want)
		}
	}
}
