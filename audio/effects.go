package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// sweep is a sine whose frequency glides exponentially from start to end over
// glide, with an exponential amplitude decay from amp to ~0 over decay
type sweep struct {
	rate       beep.SampleRate
	start, end float64
	glide      int
	amp        float64
	decay      int
	total      int
	phase      float64
	position   int
}

// NewSweep creates a decaying frequency-gliding sine
func NewSweep(start, end float64, glide, decay, duration time.Duration, amp float64, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		rate:  rate,
		start: start,
		end:   end,
		glide: max(rate.N(glide), 1),
		amp:   amp,
		decay: max(rate.N(decay), 1),
		total: rate.N(duration),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		g := math.Min(float64(s.position)/float64(s.glide), 1)
		freq := s.start * math.Pow(s.end/s.start, g)

		// Exponential ramp to 0.001 of the initial gain, matching a -60dB tail
		gain := s.amp * math.Pow(0.001/s.amp, math.Min(float64(s.position)/float64(s.decay), 1))
		val := math.Sin(2*math.Pi*s.phase) * gain

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noiseBurst is white noise with an exponential decay envelope
type noiseBurst struct {
	rng      *rand.Rand
	total    int
	position int
}

// NewNoiseBurst creates a decaying noise hit of the given length
func NewNoiseBurst(duration time.Duration, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &noiseBurst{rng: rng, total: rate.N(duration)}
}

func (b *noiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.position >= b.total {
			return i, i > 0
		}
		val := (b.rng.Float64()*2 - 1) * math.Exp(-float64(b.position)/(float64(b.total)*0.3))
		samples[i][0] = val
		samples[i][1] = val
		b.position++
	}
	return len(samples), true
}

func (b *noiseBurst) Err() error { return nil }

// crackle is endless sparse vinyl pops over a faint hiss
type crackle struct {
	rng     *rand.Rand
	density float64
	pop     float64
	hiss    float64
}

// NewCrackle creates an infinite crackle source
func NewCrackle(density, pop, hiss float64, rng *rand.Rand) beep.Streamer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &crackle{rng: rng, density: density, pop: pop, hiss: hiss}
}

func (c *crackle) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		level := c.hiss
		if c.rng.Float64() < c.density {
			level = c.pop
		}
		val := (c.rng.Float64()*2 - 1) * level
		samples[i][0] = val
		samples[i][1] = val
	}
	return len(samples), true
}

func (c *crackle) Err() error { return nil }

// onePole is a first-order filter; highPass subtracts the low band from the input
type onePole struct {
	streamer beep.Streamer
	alpha    float64
	highPass bool
	state    [2]float64
}

// NewLowPass filters s above cutoff Hz
func NewLowPass(s beep.Streamer, cutoff float64, rate beep.SampleRate) beep.Streamer {
	return &onePole{streamer: s, alpha: poleAlpha(cutoff, rate)}
}

// NewHighPass filters s below cutoff Hz
func NewHighPass(s beep.Streamer, cutoff float64, rate beep.SampleRate) beep.Streamer {
	return &onePole{streamer: s, alpha: poleAlpha(cutoff, rate), highPass: true}
}

// NewBandPass keeps roughly one octave either side of center
func NewBandPass(s beep.Streamer, center float64, rate beep.SampleRate) beep.Streamer {
	return NewLowPass(NewHighPass(s, center/2, rate), center*2, rate)
}

func poleAlpha(cutoff float64, rate beep.SampleRate) float64 {
	if cutoff <= 0 {
		return 1
	}
	return 1 - math.Exp(-2*math.Pi*cutoff/float64(rate))
}

func (f *onePole) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		for ch := 0; ch < 2; ch++ {
			x := samples[i][ch]
			f.state[ch] += f.alpha * (x - f.state[ch])
			if f.highPass {
				samples[i][ch] = x - f.state[ch]
			} else {
				samples[i][ch] = f.state[ch]
			}
		}
	}
	return n, ok
}

func (f *onePole) Err() error { return f.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
