package audio

import (
	"math"
	"testing"
)

func TestPeriodToFreqOrdering(t *testing.T) {
	// Shorter periods must not map below longer ones.
	periods := []float64{1, 5, 30, 200, 1000}
	prev := math.Inf(1)
	for _, p := range periods {
		f := periodToFreq(p)
		if f > prev {
			t.Errorf("period %v maps to %v Hz, above shorter-period voice %v Hz", p, f, prev)
		}
		prev = f
	}
}

func TestPeriodToFreqOnScale(t *testing.T) {
	for _, p := range []float64{0.5, 1, 12, 365, 5000, -3, 0} {
		f := periodToFreq(p)
		found := false
		for _, note := range pentatonic {
			if f == note {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("period %v maps to %v Hz, not on the scale", p, f)
		}
	}
}

func TestRadiusToGainBounds(t *testing.T) {
	for _, r := range []float64{0.1, 1, 4, 11.2, 25, 0, -1} {
		g := radiusToGain(r)
		if g < 0.15 || g > 0.8 {
			t.Errorf("radius %v gives gain %v outside [0.15, 0.8]", r, g)
		}
	}
	if radiusToGain(11.2) <= radiusToGain(1) {
		t.Error("giants should play louder than earths")
	}
}

func TestSetVoicesCapsCount(t *testing.T) {
	s := NewSonifier()
	periods := make([]float64, 12)
	radii := make([]float64, 12)
	anomalies := make([]float64, 12)
	for i := range periods {
		periods[i] = float64(i + 1)
		radii[i] = 1
	}
	s.SetVoices(periods, radii, anomalies)
	if len(s.voices) != maxVoices {
		t.Errorf("expected %d voices, got %d", maxVoices, len(s.voices))
	}
}

func TestAdvancePlucksAtPeriapsis(t *testing.T) {
	s := NewSonifier()
	// 10-day orbit starting 10 degrees before periapsis.
	s.SetVoices([]float64{10}, []float64{1}, []float64{350})

	s.Advance(0)
	if s.voices[0].env != 0 {
		t.Fatal("arming call should not pluck")
	}

	// A quarter period later the phase has wrapped through zero.
	s.Advance(2.5)
	if s.voices[0].env != 1 {
		t.Errorf("periapsis passage should pluck, env = %v", s.voices[0].env)
	}

	// No second pluck until the next wrap.
	s.Advance(5)
	if s.voices[0].env != 1 {
		t.Error("mid-orbit advance should not retrigger")
	}
}

func TestPluckEnvelopeDecays(t *testing.T) {
	s := NewSonifier()
	s.SetVoices([]float64{10}, []float64{1}, []float64{350})
	s.Advance(0)
	s.Advance(2.5)

	out := [][]float32{make([]float32, BufferSize), make([]float32, BufferSize)}
	s.process(out)
	if env := s.voices[0].env; env >= 1 || env <= 0 {
		t.Errorf("envelope should decay toward zero, got %v", env)
	}
}

func TestProcessSilentWithoutVoices(t *testing.T) {
	s := NewSonifier()
	out := [][]float32{make([]float32, 64), make([]float32, 64)}
	s.process(out)
	for _, v := range out[0] {
		if v != 0 {
			t.Fatal("expected silence with no voices")
		}
	}
}

func TestTriangleRange(t *testing.T) {
	for p := 0.0; p < 2.0; p += 0.01 {
		v := triangle(p)
		if v < -1 || v > 1 {
			t.Fatalf("triangle(%v) = %v out of range", p, v)
		}
	}
	if triangle(0.25) != 0 {
		t.Errorf("triangle(0.25) = %v, want 0", triangle(0.25))
	}
}
