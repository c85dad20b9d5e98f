package audio

import (
	"math/rand"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/turntable/constants"
)

// CreateThumpSound generates the needle-drop: a low sine sweep layered with a
// lowpassed noise burst
func CreateThumpSound(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	tone := NewSweep(
		constants.ThumpStartFreq,
		constants.ThumpEndFreq,
		constants.ThumpSweepTime,
		constants.ThumpDecayTime,
		constants.ThumpDuration,
		constants.ThumpToneVolume,
		rate,
	)

	noise := newVolume(
		NewLowPass(NewNoiseBurst(constants.ThumpNoiseLength, rate, rng), constants.ThumpNoiseCutoff, rate),
		constants.ThumpNoiseVolume,
	)

	return beep.Mix(tone, noise)
}

// CreateScratchSound generates a short band-limited noise scrape
func CreateScratchSound(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	return newVolume(
		NewBandPass(NewNoiseBurst(constants.ScratchDuration, rate, rng), constants.ScratchCutoff, rate),
		constants.ScratchVolume,
	)
}

// CreateCrackleSound generates the endless highpassed surface noise
func CreateCrackleSound(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	return newVolume(
		NewHighPass(
			NewCrackle(constants.CrackleDensity, constants.CracklePopLevel, constants.CrackleHissLevel, rng),
			constants.CrackleHighPass,
			rate,
		),
		constants.CrackleVolume,
	)
}
