// Package audio sonifies an orbiting system: each planet contributes one
// voice whose pitch follows its orbital period (shorter period, higher
// note, snapped to a pentatonic scale) and whose level follows its size.
// Periapsis passages trigger a short octave-up pluck on the voice.
// Output-only synthesis; nothing is read from the microphone.
package audio

import (
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"
)

const (
	SampleRate = 44100
	BufferSize = 1024

	maxVoices = 8

	// pluckDecay is the per-sample envelope multiplier, about a quarter
	// second tail at 44.1 kHz.
	pluckDecay = 0.99991
)

// pentatonic holds an A-minor pentatonic spread across two octaves.
// Voices snap to the nearest entry so arbitrary periods stay consonant.
var pentatonic = []float64{110.00, 130.81, 146.83, 164.81, 196.00, 220.00, 261.63, 293.66, 329.63, 392.00}

type voice struct {
	freq float64
	gain float64

	// Orbital phase tracking for the periapsis pluck.
	m0Rad     float64
	nRadDay   float64
	lastPhase float64 // -1 until the first Advance
	env       float64
}

type Sonifier struct {
	stream *portaudio.Stream

	mu     sync.Mutex
	voices []voice

	time        float64
	filterState [2]float64
	delayLine   [2][]float64
	delayHead   int

	Active bool
}

func NewSonifier() *Sonifier {
	delayLen := int(float64(SampleRate) * 0.45)
	return &Sonifier{
		delayLine: [2][]float64{make([]float64, delayLen), make([]float64, delayLen)},
	}
}

func (s *Sonifier) Start() error {
	portaudio.Initialize()

	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, s.process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}

	s.stream = stream
	s.Active = true
	return nil
}

func (s *Sonifier) Stop() {
	if s.stream != nil {
		s.stream.Stop()
		s.stream.Close()
		s.stream = nil
	}
	portaudio.Terminate()
	s.Active = false
}

// SetVoices maps planets onto synthesis voices. Periods are log-scaled:
// a 1-day orbit lands near the top of the scale, a 1000-day orbit near
// the bottom. Radii control per-voice gain so giants hum louder. The mean
// anomaly at epoch seeds the phase tracking behind the periapsis pluck.
func (s *Sonifier) SetVoices(periodsDays, radiiEarth, meanAnomaliesDeg []float64) {
	n := len(periodsDays)
	if n > maxVoices {
		n = maxVoices
	}

	voices := make([]voice, 0, n)
	for i := 0; i < n; i++ {
		period := periodsDays[i]
		if period <= 0 {
			period = 365
		}
		m0 := 0.0
		if i < len(meanAnomaliesDeg) {
			m0 = meanAnomaliesDeg[i] * math.Pi / 180
		}
		voices = append(voices, voice{
			freq:      periodToFreq(periodsDays[i]),
			gain:      radiusToGain(radiiEarth[i]),
			m0Rad:     m0,
			nRadDay:   2 * math.Pi / period,
			lastPhase: -1,
		})
	}

	s.mu.Lock()
	s.voices = voices
	s.mu.Unlock()
}

// Advance tracks each voice's orbital phase at simulation time t (days)
// and fires the pluck envelope when the phase wraps through periapsis.
// The animation loop calls it once per frame.
func (s *Sonifier) Advance(timeDays float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.voices {
		v := &s.voices[i]
		phase := math.Mod(v.m0Rad+v.nRadDay*timeDays, 2*math.Pi)
		if phase < 0 {
			phase += 2 * math.Pi
		}
		if v.lastPhase >= 0 && phase < v.lastPhase {
			v.env = 1
		}
		v.lastPhase = phase
	}
}

func periodToFreq(periodDays float64) float64 {
	if periodDays <= 0 {
		periodDays = 365
	}
	// log10 period in [0, 3] -> scale index, inverted so short periods
	// are high notes.
	lp := math.Log10(periodDays)
	if lp < 0 {
		lp = 0
	}
	if lp > 3 {
		lp = 3
	}
	idx := int(math.Round((1 - lp/3) * float64(len(pentatonic)-1)))
	return pentatonic[idx]
}

func radiusToGain(radiusEarth float64) float64 {
	if radiusEarth <= 0 {
		radiusEarth = 1
	}
	g := 0.3 + 0.1*math.Log2(radiusEarth)
	if g < 0.15 {
		g = 0.15
	}
	if g > 0.8 {
		g = 0.8
	}
	return g
}

// Triangle wave keeps the pad mellow; the LPF below rounds it further.
func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

func (s *Sonifier) process(out [][]float32) {
	s.mu.Lock()
	voices := make([]voice, len(s.voices))
	copy(voices, s.voices)
	s.mu.Unlock()

	startEnv := make([]float64, len(voices))
	for j := range voices {
		startEnv[j] = voices[j].env
	}

	dt := 1.0 / float64(SampleRate)
	cutoff := 900.0
	vol := 0.22

	for i := 0; i < len(out[0]); i++ {
		sampleL, sampleR := 0.0, 0.0

		if len(voices) > 0 {
			norm := 1.0 / float64(len(voices))
			for j := range voices {
				v := &voices[j]
				// Slight detune between channels widens the image.
				oscL := triangle(s.time * v.freq * 0.999)
				oscR := triangle(s.time * v.freq * 1.001)

				// Periapsis pluck: an octave up, decaying fast against
				// the sustained pad.
				pluck := triangle(s.time*v.freq*2) * v.env * 0.8
				v.env *= pluckDecay

				lfo := 0.7 + 0.3*math.Sin(s.time*0.15+float64(j))
				sampleL += (oscL*lfo + pluck) * v.gain * norm
				sampleR += (oscR*lfo + pluck) * v.gain * norm
			}
		}

		var outL, outR float64
		outL, s.filterState[0] = lpf(sampleL, cutoff, dt, s.filterState[0])
		outR, s.filterState[1] = lpf(sampleR, cutoff, dt, s.filterState[1])

		delayL := s.delayLine[0][s.delayHead]
		delayR := s.delayLine[1][s.delayHead]

		mixL := outL + delayL*0.3 + delayR*0.1
		mixR := outR + delayR*0.3 + delayL*0.1

		s.delayLine[0][s.delayHead] = mixL * 0.65
		s.delayLine[1][s.delayHead] = mixR * 0.65
		s.delayHead = (s.delayHead + 1) % len(s.delayLine[0])

		out[0][i] = float32(mixL * vol)
		out[1][i] = float32(mixR * vol)

		s.time += dt
	}

	// Persist the decayed envelopes. A voice whose stored envelope moved
	// while this buffer rendered was re-plucked by Advance; leave it.
	s.mu.Lock()
	if len(s.voices) == len(voices) {
		for j := range voices {
			if s.voices[j].env == startEnv[j] {
				s.voices[j].env = voices[j].env
			}
		}
	}
	s.mu.Unlock()
}
