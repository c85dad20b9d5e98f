package constants

import "time"

// Needle Thump Timing
const (
	ThumpDuration    = 250 * time.Millisecond
	ThumpSweepTime   = 150 * time.Millisecond
	ThumpDecayTime   = 200 * time.Millisecond
	ThumpStartFreq   = 55.0
	ThumpEndFreq     = 30.0
	ThumpNoiseLength = 150 * time.Millisecond
	ThumpNoiseCutoff = 200.0
	ThumpNoiseVolume = 0.08
	ThumpToneVolume  = 0.3
)

// Scratch Timing
const (
	ScratchDuration = 100 * time.Millisecond
	ScratchCutoff   = 800.0
	ScratchVolume   = 0.1
)

// Crackle
const (
	// CrackleDensity is the probability of a pop per sample
	CrackleDensity   = 0.02
	CracklePopLevel  = 0.5
	CrackleHissLevel = 0.01
	CrackleHighPass  = 1000.0
	CrackleVolume    = 0.04
)

// Speaker
const (
	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)
